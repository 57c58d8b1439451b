package recording

import (
	"image"
	"image/color"
	"slices"

	"github.com/gogpu/easel/canvas"
)

// Recorder is a canvas.Canvas that records calls. It also implements every
// optional capability in package canvas.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
	shapes   map[canvas.Handle]canvas.Primitive
	order    []canvas.Handle
	next     canvas.Handle
	pending  []canvas.Event
	fail     map[CommandType]error
	open     bool
	closes   int
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{
		commands: make([]Command, 0, 64),
		shapes:   make(map[canvas.Handle]canvas.Primitive),
	}
}

func init() {
	canvas.Register("recording", func() canvas.Canvas { return New() })
}

// FailOn makes every later call of type t return err without being
// recorded. A nil err clears the failure.
func (r *Recorder) FailOn(t CommandType, err error) {
	if r.fail == nil {
		r.fail = make(map[CommandType]error)
	}
	if err == nil {
		delete(r.fail, t)
		return
	}
	r.fail[t] = err
}

func (r *Recorder) record(c Command) error {
	if err := r.fail[c.Type()]; err != nil {
		return err
	}
	r.commands = append(r.commands, c)
	return nil
}

// Open implements canvas.Canvas.
func (r *Recorder) Open(width, height int, title string) error {
	if err := r.record(OpenCommand{Width: width, Height: height, Title: title}); err != nil {
		return err
	}
	r.open = true
	return nil
}

// CreateShape implements canvas.Canvas.
func (r *Recorder) CreateShape(p canvas.Primitive) (canvas.Handle, error) {
	if err := r.fail[CmdCreate]; err != nil {
		return 0, err
	}
	r.next++
	h := r.next
	r.commands = append(r.commands, CreateCommand{Handle: h, Primitive: p})
	r.shapes[h] = p
	r.order = append(r.order, h)
	return h, nil
}

// UpdateShape implements canvas.Canvas.
func (r *Recorder) UpdateShape(h canvas.Handle, p canvas.Primitive) error {
	if err := r.record(UpdateCommand{Handle: h, Primitive: p}); err != nil {
		return err
	}
	if _, ok := r.shapes[h]; ok {
		r.shapes[h] = p
	}
	return nil
}

// DeleteShape implements canvas.Canvas.
func (r *Recorder) DeleteShape(h canvas.Handle) error {
	if err := r.record(DeleteCommand{Handle: h}); err != nil {
		return err
	}
	delete(r.shapes, h)
	r.order = slices.DeleteFunc(r.order, func(x canvas.Handle) bool { return x == h })
	return nil
}

// Restack implements canvas.Canvas.
func (r *Recorder) Restack(order []canvas.Handle) error {
	if err := r.record(RestackCommand{Order: slices.Clone(order)}); err != nil {
		return err
	}
	r.order = slices.DeleteFunc(slices.Clone(order), func(h canvas.Handle) bool {
		_, ok := r.shapes[h]
		return !ok
	})
	return nil
}

// Flush implements canvas.Canvas.
func (r *Recorder) Flush() error { return r.record(FlushCommand{}) }

// PollEvents implements canvas.Canvas. It returns and clears the events
// queued with Push.
func (r *Recorder) PollEvents() []canvas.Event {
	ev := r.pending
	r.pending = nil
	return ev
}

// Close implements canvas.Canvas.
func (r *Recorder) Close() error {
	r.closes++
	r.open = false
	return r.record(CloseCommand{})
}

// SetBackground implements canvas.BackgroundSetter.
func (r *Recorder) SetBackground(c color.Color) error {
	return r.record(BackgroundCommand{Color: c})
}

// SetPicture implements canvas.PictureSetter.
func (r *Recorder) SetPicture(img image.Image) error {
	return r.record(PictureCommand{Image: img})
}

// SetGrid implements canvas.GridSetter.
func (r *Recorder) SetGrid(g canvas.Grid) error { return r.record(GridCommand{Grid: g}) }

// SetTitle implements canvas.TitleSetter.
func (r *Recorder) SetTitle(title string) error { return r.record(TitleCommand{Title: title}) }

// Resize implements canvas.Resizer.
func (r *Recorder) Resize(width, height int) error {
	return r.record(ResizeCommand{Width: width, Height: height})
}

// Push queues input events for the next PollEvents.
func (r *Recorder) Push(events ...canvas.Event) {
	r.pending = append(r.pending, events...)
}

// Commands returns the recorded commands in call order.
func (r *Recorder) Commands() []Command { return slices.Clone(r.commands) }

// CommandsOf returns the recorded commands of type t.
func (r *Recorder) CommandsOf(t CommandType) []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Type() == t {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets the recorded commands but keeps shapes and order.
func (r *Recorder) Reset() { r.commands = r.commands[:0] }

// Shape returns the live description of h.
func (r *Recorder) Shape(h canvas.Handle) (canvas.Primitive, bool) {
	p, ok := r.shapes[h]
	return p, ok
}

// Order returns the live handles back to front.
func (r *Recorder) Order() []canvas.Handle { return slices.Clone(r.order) }

// IsOpen reports whether Open was called and Close was not.
func (r *Recorder) IsOpen() bool { return r.open }

// Closes returns how many times Close was called.
func (r *Recorder) Closes() int { return r.closes }
