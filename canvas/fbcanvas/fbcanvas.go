// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build linux

// Package fbcanvas implements canvas.Canvas on the Linux framebuffer.
//
// Frames are rasterized by the soft canvas and copied to the device on
// Flush, scaled to the device resolution with nearest-neighbour sampling.
// Keyboard and mouse input is read from evdev devices; reading them
// usually requires membership of the input group.
//
// The package registers itself as the "fb" backend using /dev/fb0 and
// every /dev/input/event* device.
package fbcanvas

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/sys/unix"

	"github.com/gogpu/easel/canvas"
	"github.com/gogpu/easel/canvas/soft"
)

// device is the framebuffer as the canvas uses it.
type device interface {
	xdraw.Image
	Close() error
}

// fbDevice adapts fb.Device, whose Close reports nothing, to device.
type fbDevice struct{ *fb.Device }

func (d fbDevice) Close() error {
	d.Device.Close()
	return nil
}

func openFramebuffer(path string) (device, error) {
	d, err := fb.Open(path)
	if err != nil {
		return nil, err
	}
	return fbDevice{d}, nil
}

func init() {
	canvas.Register("fb", func() canvas.Canvas { return New() })
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithDevice sets the framebuffer device path. The default is /dev/fb0.
func WithDevice(path string) Option {
	return func(c *Canvas) { c.device = path }
}

// WithInputs sets the glob matching evdev devices. An empty pattern
// disables input.
func WithInputs(pattern string) Option {
	return func(c *Canvas) { c.inputs = pattern }
}

// Canvas draws to a framebuffer device.
type Canvas struct {
	*soft.Canvas

	device string
	inputs string

	open   func(path string) (device, error)
	dev    device
	trans  *translator
	raw    chan inputEvent
	cancel context.CancelFunc
	wg     sync.WaitGroup
	closed bool

	log *slog.Logger
}

// New returns an unopened canvas.
func New(opts ...Option) *Canvas {
	c := &Canvas{
		Canvas: soft.New(),
		device: "/dev/fb0",
		inputs: "/dev/input/event*",
		open:   openFramebuffer,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetLogger sets the logger used for diagnostics.
func (c *Canvas) SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	c.log = l
	c.Canvas.SetLogger(l)
}

// Open implements canvas.Canvas. The drawing surface has the requested
// size whatever the device resolution. On failure nothing stays open.
func (c *Canvas) Open(width, height int, title string) error {
	if err := c.Canvas.Open(width, height, title); err != nil {
		return err
	}
	dev, err := c.open(c.device)
	if err != nil {
		return errors.Join(fmt.Errorf("fbcanvas: open %s: %w", c.device, err), c.Canvas.Close())
	}
	c.dev = dev
	b := dev.Bounds()
	c.log.Info("fbcanvas: framebuffer open", "device", c.device, "width", b.Dx(), "height", b.Dy())

	c.trans = newTranslator(width, height)
	c.raw = make(chan inputEvent, 256)
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.watchInputs(ctx)
	return nil
}

func (c *Canvas) watchInputs(ctx context.Context) {
	if c.inputs == "" {
		return
	}
	paths, err := filepath.Glob(c.inputs)
	if err != nil || len(paths) == 0 {
		c.log.Info("fbcanvas: no input devices", "pattern", c.inputs)
		return
	}
	for _, path := range paths {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			c.log.Debug("fbcanvas: input skipped", "path", path, "err", err)
			continue
		}
		c.wg.Add(1)
		go c.readInput(ctx, fd, path)
	}
}

// readInput forwards records from one evdev device until ctx is done or
// the device goes away.
func (c *Canvas) readInput(ctx context.Context, fd int, path string) {
	defer c.wg.Done()
	f := os.NewFile(uintptr(fd), path)
	defer f.Close()

	tvSize := binary.Size(unix.Timeval{})
	buf := make([]byte, 64*(tvSize+8))
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(fds, 100); err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			c.log.Debug("fbcanvas: input lost", "path", path, "err", err)
			return
		}
		if fds[0].Revents&unix.POLLIN == 0 {
			continue
		}
		n, err := unix.Read(fd, buf)
		if err != nil {
			if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
				continue
			}
			c.log.Debug("fbcanvas: input lost", "path", path, "err", err)
			return
		}
		for _, ev := range decodeEvents(buf[:n], tvSize) {
			select {
			case c.raw <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Flush implements canvas.Canvas.
func (c *Canvas) Flush() error {
	if c.closed {
		return fmt.Errorf("fbcanvas: flush after close")
	}
	if err := c.Canvas.Flush(); err != nil {
		return err
	}
	if c.dev == nil {
		return nil
	}
	frame := c.Frame()
	xdraw.NearestNeighbor.Scale(c.dev, c.dev.Bounds(), frame, frame.Bounds(), xdraw.Src, nil)
	return nil
}

// PollEvents implements canvas.Canvas, returning injected events followed
// by device input.
func (c *Canvas) PollEvents() []canvas.Event {
	out := c.Canvas.PollEvents()
	if c.raw == nil {
		return out
	}
	for {
		select {
		case ev := <-c.raw:
			out = append(out, c.trans.feed(ev)...)
		default:
			return out
		}
	}
}

// Resize implements canvas.Resizer.
func (c *Canvas) Resize(width, height int) error {
	if err := c.Canvas.Resize(width, height); err != nil {
		return err
	}
	if c.trans != nil {
		c.trans.width, c.trans.height = float64(width), float64(height)
		c.trans.at = c.trans.clamp(c.trans.at)
	}
	return nil
}

// Close implements canvas.Canvas. It stops the input readers, clears the
// device and releases it. Errors from the soft canvas and the device are
// joined.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.wg.Wait()
	}
	err := c.Canvas.Close()
	if c.dev != nil {
		xdraw.Draw(c.dev, c.dev.Bounds(), image.Black, image.Point{}, xdraw.Src)
		if derr := c.dev.Close(); derr != nil {
			err = errors.Join(err, fmt.Errorf("fbcanvas: close %s: %w", c.device, derr))
		}
		c.dev = nil
	}
	return err
}
