// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fbcanvas

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/gogpu/easel/canvas"
	"github.com/gogpu/easel/geom"
)

// Linux input-event-codes.h
const (
	evSyn = 0x00
	evKey = 0x01
	evRel = 0x02
	evAbs = 0x03

	synReport = 0x00

	relX = 0x00
	relY = 0x01
	absX = 0x00
	absY = 0x01

	btnLeft   = 0x110
	btnRight  = 0x111
	btnMiddle = 0x112
	btnTouch  = 0x14a
)

// inputEvent is the part of struct input_event after the timestamp.
type inputEvent struct {
	Type  uint16
	Code  uint16
	Value int32
}

// decodeEvents parses consecutive input_event records. tvSize is the size
// of struct timeval on the running architecture. A trailing partial record
// is ignored.
func decodeEvents(buf []byte, tvSize int) []inputEvent {
	size := tvSize + 8
	var out []inputEvent
	for off := 0; off+size <= len(buf); off += size {
		rec := buf[off+tvSize : off+size]
		out = append(out, inputEvent{
			Type:  binary.LittleEndian.Uint16(rec[0:2]),
			Code:  binary.LittleEndian.Uint16(rec[2:4]),
			Value: int32(binary.LittleEndian.Uint32(rec[4:8])),
		})
	}
	return out
}

var buttonCodes = map[uint16]int{
	btnLeft:   canvas.ButtonLeft,
	btnRight:  canvas.ButtonRight,
	btnMiddle: canvas.ButtonMiddle,
	btnTouch:  canvas.ButtonLeft,
}

// keyNames maps evdev key codes to names understood by
// canvas.NormalizeKey.
var keyNames = map[uint16]string{
	1: "esc", 14: "backspace", 15: "tab", 28: "enter", 57: "space",
	29: "leftctrl", 97: "rightctrl", 42: "leftshift", 54: "rightshift",
	56: "leftalt", 100: "rightalt", 58: "capslock",
	12: "minus", 13: "equal", 26: "[", 27: "]", 39: ";", 40: "'", 41: "`",
	43: "\\", 51: ",", 52: ".", 53: "/", 55: "*",
	102: "home", 103: "up", 104: "pageup", 105: "left", 106: "right",
	107: "end", 108: "down", 109: "pagedown", 110: "insert", 111: "delete",
	87: "f11", 88: "f12",
}

func init() {
	for i, r := range "1234567890" {
		keyNames[uint16(2+i)] = string(r)
	}
	for _, row := range []struct {
		first uint16
		keys  string
	}{
		{16, "qwertyuiop"},
		{30, "asdfghjkl"},
		{44, "zxcvbnm"},
	} {
		for i, r := range row.keys {
			keyNames[row.first+uint16(i)] = string(r)
		}
	}
	for i := range 10 {
		keyNames[uint16(59+i)] = "f" + strconv.Itoa(i+1)
	}
}

// translator turns evdev records into canvas events. Relative and absolute
// motion is accumulated until the next SYN_REPORT so one report yields at
// most one move.
type translator struct {
	width, height float64
	pointer       canvas.Pointer
	at            geom.Point
	moved         bool
}

func newTranslator(width, height int) *translator {
	t := &translator{width: float64(width), height: float64(height)}
	t.at = geom.Pt(t.width/2, t.height/2)
	return t
}

func (t *translator) clamp(p geom.Point) geom.Point {
	return geom.Pt(
		math.Max(0, math.Min(t.width-1, p.X)),
		math.Max(0, math.Min(t.height-1, p.Y)),
	)
}

func (t *translator) feed(ev inputEvent) []canvas.Event {
	switch ev.Type {
	case evSyn:
		if ev.Code == synReport && t.moved {
			t.moved = false
			return t.pointer.Move(t.at)
		}
	case evRel:
		switch ev.Code {
		case relX:
			t.at = t.clamp(t.at.Add(geom.Pt(float64(ev.Value), 0)))
			t.moved = true
		case relY:
			t.at = t.clamp(t.at.Add(geom.Pt(0, float64(ev.Value))))
			t.moved = true
		}
	case evAbs:
		switch ev.Code {
		case absX:
			t.at = t.clamp(geom.Pt(float64(ev.Value), t.at.Y))
			t.moved = true
		case absY:
			t.at = t.clamp(geom.Pt(t.at.X, float64(ev.Value)))
			t.moved = true
		}
	case evKey:
		if b, ok := buttonCodes[ev.Code]; ok {
			var out []canvas.Event
			if t.moved {
				t.moved = false
				out = t.pointer.Move(t.at)
			}
			switch ev.Value {
			case 1:
				return append(out, t.pointer.Press(b)...)
			case 0:
				return append(out, t.pointer.Release(b)...)
			}
			return out
		}
		name, ok := keyNames[ev.Code]
		if !ok {
			return nil
		}
		// Value 2 is autorepeat.
		switch ev.Value {
		case 1:
			return []canvas.Event{{Kind: canvas.KeyDown, Key: name}}
		case 0:
			return []canvas.Event{{Kind: canvas.KeyUp, Key: name}}
		}
	}
	return nil
}
