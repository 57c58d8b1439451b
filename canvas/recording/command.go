// Package recording provides a canvas that records every call as a typed
// command instead of drawing.
//
// It keeps the live shape table and stacking order as well, so tests can
// inspect both what a Screen sent and what the canvas would show. Input is
// scripted with Push.
//
//	rec := recording.New()
//	scr, _ := easel.NewScreen(easel.WithCanvas(rec))
//	scr.NewRectangle(0, 0, 10, 10)
//	_ = scr.Update()
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd.Type())
//	}
package recording

import (
	"image"
	"image/color"

	"github.com/gogpu/easel/canvas"
)

// CommandType identifies the canvas call a command records.
type CommandType uint8

const (
	CmdOpen CommandType = iota
	CmdCreate
	CmdUpdate
	CmdDelete
	CmdRestack
	CmdFlush
	CmdClose
	CmdBackground
	CmdGrid
	CmdTitle
	CmdResize
	CmdPicture
)

var commandTypeNames = [...]string{
	CmdOpen:       "Open",
	CmdCreate:     "Create",
	CmdUpdate:     "Update",
	CmdDelete:     "Delete",
	CmdRestack:    "Restack",
	CmdFlush:      "Flush",
	CmdClose:      "Close",
	CmdBackground: "Background",
	CmdGrid:       "Grid",
	CmdTitle:      "Title",
	CmdResize:     "Resize",
	CmdPicture:    "Picture",
}

// String returns the name of the command type.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by every recorded command.
type Command interface {
	Type() CommandType
}

// OpenCommand records Open.
type OpenCommand struct {
	Width, Height int
	Title         string
}

// Type implements Command.
func (OpenCommand) Type() CommandType { return CmdOpen }

// CreateCommand records CreateShape and the handle it returned.
type CreateCommand struct {
	Handle    canvas.Handle
	Primitive canvas.Primitive
}

// Type implements Command.
func (CreateCommand) Type() CommandType { return CmdCreate }

// UpdateCommand records UpdateShape.
type UpdateCommand struct {
	Handle    canvas.Handle
	Primitive canvas.Primitive
}

// Type implements Command.
func (UpdateCommand) Type() CommandType { return CmdUpdate }

// DeleteCommand records DeleteShape.
type DeleteCommand struct {
	Handle canvas.Handle
}

// Type implements Command.
func (DeleteCommand) Type() CommandType { return CmdDelete }

// RestackCommand records Restack.
type RestackCommand struct {
	Order []canvas.Handle
}

// Type implements Command.
func (RestackCommand) Type() CommandType { return CmdRestack }

// FlushCommand records Flush.
type FlushCommand struct{}

// Type implements Command.
func (FlushCommand) Type() CommandType { return CmdFlush }

// CloseCommand records Close.
type CloseCommand struct{}

// Type implements Command.
func (CloseCommand) Type() CommandType { return CmdClose }

// BackgroundCommand records SetBackground.
type BackgroundCommand struct {
	Color color.Color
}

// Type implements Command.
func (BackgroundCommand) Type() CommandType { return CmdBackground }

// GridCommand records SetGrid.
type GridCommand struct {
	Grid canvas.Grid
}

// Type implements Command.
func (GridCommand) Type() CommandType { return CmdGrid }

// TitleCommand records SetTitle.
type TitleCommand struct {
	Title string
}

// Type implements Command.
func (TitleCommand) Type() CommandType { return CmdTitle }

// ResizeCommand records Resize.
type ResizeCommand struct {
	Width, Height int
}

// Type implements Command.
func (ResizeCommand) Type() CommandType { return CmdResize }

// PictureCommand records SetPicture.
type PictureCommand struct {
	Image image.Image
}

// Type implements Command.
func (PictureCommand) Type() CommandType { return CmdPicture }
