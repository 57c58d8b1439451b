// Package easel provides a retained-mode 2D drawing screen for Go.
//
// # Overview
//
// easel keeps a list of shapes (rectangles, ovals, polygons, lines, text,
// images and user-defined outlines) on a Screen. Each shape owns its
// geometry: moving, rotating, resizing, hit-testing and overlap checks are
// answered from its vertices without asking the display. The Screen pushes
// changes to a canvas and delivers keyboard and mouse input on Update.
//
// # Quick Start
//
//	import "github.com/gogpu/easel"
//
//	scr, err := easel.NewScreen(easel.WithSize(640, 480), easel.WithTitle("demo"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer scr.Exit()
//
//	box, _ := scr.NewRectangle(50, 50, 100, 60, easel.WithColor(easel.Red))
//	_ = scr.OnKeyDown(func(k easel.Key) error {
//	    if k.Is("right") {
//	        return box.Move(10, 0)
//	    }
//	    return nil
//	})
//	for scr.Update() == nil {
//	    box.Rotate(1)
//	    scr.Sleep(16 * time.Millisecond)
//	}
//
// # Canvases
//
// A Screen draws on a canvas.Canvas. The default is the in-memory software
// canvas in package canvas/soft. canvas/ebitencanvas opens a desktop
// window and canvas/fbcanvas draws on a Linux framebuffer. Canvases
// register themselves by name; select one with WithBackend after a blank
// import.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees; positive rotation is clockwise on screen
//   - A heading of 0 points up (12 o'clock)
//
// # Errors
//
// Every error wraps ErrLibrary. Invalid arguments wrap ErrInvalidArgument
// and operations that do not apply wrap ErrUnsupportedOperation. A failed
// mutation leaves the shape unchanged.
package easel

// Version is the library version.
const Version = "0.1.0"
