package easel

// Scene is one state of an application, such as a menu or a level.
// Screen.Scene activates it: Start builds the renderables and Run drives
// the frame loop.
//
// A scene may also implement any of KeyDownHandler, KeyUpHandler,
// KeyPressHandler, MouseDownHandler, MouseUpHandler, MouseClickHandler,
// MouseDragHandler and MouseMoveHandler.
// Those methods become the screen's listeners while the scene is active.
type Scene interface {
	Start(scr *Screen) error
	Run(scr *Screen) error
}

// KeyDownHandler receives key presses.
type KeyDownHandler interface {
	KeyDown(k Key) error
}

// KeyUpHandler receives key releases.
type KeyUpHandler interface {
	KeyUp(k Key) error
}

// KeyPressHandler receives completed key presses.
type KeyPressHandler interface {
	KeyPress(k Key) error
}

// MouseDownHandler receives button presses.
type MouseDownHandler interface {
	MouseDown(b Button, at Location) error
}

// MouseUpHandler receives button releases.
type MouseUpHandler interface {
	MouseUp(b Button, at Location) error
}

// MouseClickHandler receives clicks.
type MouseClickHandler interface {
	MouseClick(b Button, at Location) error
}

// MouseDragHandler receives motion while a button is held.
type MouseDragHandler interface {
	MouseDrag(b Button, at Location) error
}

// MouseMoveHandler receives motion without a button held.
type MouseMoveHandler interface {
	MouseMove(at Location) error
}

// Scene makes sc the active scene. Existing listeners are dropped and
// replaced by the handler methods sc implements; renderables are left
// alone. Scene returns when Run does.
func (scr *Screen) Scene(sc Scene) error {
	if err := scr.usable(); err != nil {
		return err
	}
	if sc == nil {
		return argError("Scene", "scene", nil, "must not be nil")
	}
	scr.ClearListeners()

	var errs []error
	if h, ok := sc.(KeyDownHandler); ok {
		errs = append(errs, scr.OnKeyDown(h.KeyDown))
	}
	if h, ok := sc.(KeyUpHandler); ok {
		errs = append(errs, scr.OnKeyUp(h.KeyUp))
	}
	if h, ok := sc.(KeyPressHandler); ok {
		errs = append(errs, scr.OnKeyPress(h.KeyPress))
	}
	if h, ok := sc.(MouseDownHandler); ok {
		errs = append(errs, scr.OnMouseDown(h.MouseDown))
	}
	if h, ok := sc.(MouseUpHandler); ok {
		errs = append(errs, scr.OnMouseUp(h.MouseUp))
	}
	if h, ok := sc.(MouseClickHandler); ok {
		errs = append(errs, scr.OnMouseClick(h.MouseClick))
	}
	if h, ok := sc.(MouseDragHandler); ok {
		errs = append(errs, scr.OnMouseDrag(h.MouseDrag))
	}
	if h, ok := sc.(MouseMoveHandler); ok {
		errs = append(errs, scr.OnMouseMove(h.MouseMove))
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	scr.log.Debug("easel: scene activated", "scene", sceneName(sc))
	if err := sc.Start(scr); err != nil {
		return err
	}
	return sc.Run(scr)
}

func sceneName(sc Scene) string {
	if n, ok := sc.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "anonymous"
}
