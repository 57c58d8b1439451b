package easel

import (
	"errors"
	"testing"

	"github.com/gogpu/easel/canvas/recording"
	"github.com/gogpu/easel/canvas/soft"
)

func TestNewScreenDefaults(t *testing.T) {
	scr, err := NewScreen()
	if err != nil {
		t.Fatalf("NewScreen() error = %v", err)
	}
	defer scr.Exit()

	if scr.Width() != 800 || scr.Height() != 600 {
		t.Errorf("size = %dx%d, want 800x600", scr.Width(), scr.Height())
	}
	if scr.Title() != "easel" {
		t.Errorf("Title() = %q, want %q", scr.Title(), "easel")
	}
	if !scr.Background().Equal(White) {
		t.Errorf("Background() = %v, want white", scr.Background())
	}
	if _, ok := scr.Canvas().(*soft.Canvas); !ok {
		t.Errorf("default canvas is %T, want *soft.Canvas", scr.Canvas())
	}
}

func TestNewScreenOptions(t *testing.T) {
	rec := recording.New()
	scr, err := NewScreen(
		WithCanvas(rec),
		WithSize(320, 240),
		WithTitle("pong"),
		WithBackground(Black),
		WithGrid(20),
	)
	if err != nil {
		t.Fatalf("NewScreen() error = %v", err)
	}
	open := rec.CommandsOf(recording.CmdOpen)
	if len(open) != 1 {
		t.Fatalf("Open calls = %d, want 1", len(open))
	}
	got := open[0].(recording.OpenCommand)
	if got.Width != 320 || got.Height != 240 || got.Title != "pong" {
		t.Errorf("Open(%d, %d, %q), want (320, 240, \"pong\")", got.Width, got.Height, got.Title)
	}
	if !scr.GridEnabled() {
		t.Error("GridEnabled() = false after WithGrid(20)")
	}
}

func TestNewScreenBackendByName(t *testing.T) {
	scr, err := NewScreen(WithBackend("recording"))
	if err != nil {
		t.Fatalf("NewScreen(WithBackend(recording)) error = %v", err)
	}
	if _, ok := scr.Canvas().(*recording.Recorder); !ok {
		t.Errorf("canvas is %T, want *recording.Recorder", scr.Canvas())
	}
	if _, err := NewScreen(WithBackend("no-such-backend")); err == nil {
		t.Error("NewScreen with unknown backend succeeded")
	}
}

func TestNewScreenInvalid(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"zero width", []Option{WithSize(0, 10)}},
		{"negative height", []Option{WithSize(10, -1)}},
		{"negative grid", []Option{WithGrid(-5)}},
		{"nil store", []Option{WithImageStore(nil)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScreen(append(tt.opts, WithCanvas(recording.New()))...)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("NewScreen() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestBuildShapeOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    []ShapeOption
		wantErr bool
	}{
		{"defaults", nil, false},
		{"all valid", []ShapeOption{WithColor(Red), WithBorderWidth(3), WithRotation(45), WithFontSize(20), WithWedges(30)}, false},
		{"negative border", []ShapeOption{WithBorderWidth(-1)}, true},
		{"zero font", []ShapeOption{WithFontSize(0)}, true},
		{"zero thickness", []ShapeOption{WithThickness(0)}, true},
		{"few wedges", []ShapeOption{WithWedges(5)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildShapeOptions("test", tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("buildShapeOptions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error %v does not wrap ErrInvalidArgument", err)
			}
		})
	}
}

func TestDefaultShapeStyle(t *testing.T) {
	o := defaultShapeOptions()
	if !o.color.Equal(Black) || !o.border.IsNone() || o.borderWidth != 1 || !o.fill || !o.visible {
		t.Errorf("unexpected defaults: %+v", o)
	}
}
