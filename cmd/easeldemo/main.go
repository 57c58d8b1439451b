// Command easeldemo shows the easel drawing library: bouncing shapes,
// drag with the mouse, steer with the arrow keys.
//
// With the default soft backend it runs headless for a fixed number of
// frames and can write the last one to a PNG:
//
//	easeldemo -frames 60 -out demo.png
//	easeldemo -backend window
//	easeldemo -backend fb -config easel.toml
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/canvas/ebitencanvas"
	_ "github.com/gogpu/easel/canvas/fbcanvas"
	"github.com/gogpu/easel/canvas/soft"
)

func main() {
	var (
		config  = flag.String("config", "", "TOML or YAML config file")
		backend = flag.String("backend", "soft", "canvas backend: soft, window or fb")
		frames  = flag.Int("frames", 120, "frames to run, 0 runs until quit")
		output  = flag.String("out", "", "write the last frame to this PNG (soft backend)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	cfg := easel.Config{Title: "easel demo", Backend: *backend}
	if *config != "" {
		loaded, err := easel.LoadConfig(*config)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
		if cfg.Backend == "" {
			cfg.Backend = *backend
		}
	}

	level, err := cfg.Level()
	if err != nil {
		log.Fatalf("Bad config: %v", err)
	}
	if *verbose {
		level = slog.LevelDebug
	}
	easel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	run := func() error { return runDemo(cfg, *frames, *output) }
	if cfg.Backend == "window" {
		err = ebitencanvas.Run(run)
	} else {
		err = run()
	}
	if err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}

func runDemo(cfg easel.Config, frames int, output string) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	scr, err := easel.NewScreen(opts...)
	if err != nil {
		return err
	}
	defer scr.Exit()

	err = scr.Scene(&demo{frames: frames})
	if err != nil && !errors.Is(err, easel.ErrClosed) {
		return err
	}

	if output != "" {
		sc, ok := scr.Canvas().(*soft.Canvas)
		if !ok {
			return fmt.Errorf("-out needs the soft backend, have %q", cfg.Backend)
		}
		if err := sc.SavePNG(output); err != nil {
			return err
		}
		log.Printf("Last frame saved to %s", output)
	}
	return nil
}
