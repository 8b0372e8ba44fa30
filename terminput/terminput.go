// This file is part of Joybind.
//
// Joybind is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Joybind is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Joybind.  If not, see <https://www.gnu.org/licenses/>.

// Package terminput connects a tcell terminal screen to the input package.
// Like the userinput package it is glue: tcell events in, ingestion calls
// out.
//
// Terminals never report key releases so a key event is treated as a tap:
// ServiceEvent() applies the press edge and EndFrame(), which the host must
// call once per frame after the application has read its controls and
// before input.Reset(), applies the matching release. A held key therefore
// appears as a train of press/release pairs at the terminal's repeat rate
// rather than a continuous Down level. Mouse buttons do report both
// transitions and behave normally.
package terminput

import (
	"strings"

	"github.com/jetsetilly/joybind/input"

	"github.com/gdamore/tcell/v2"
)

// Term translates tcell events into ingestion calls on the shared
// input.Input.
type Term struct {
	inp *input.Input

	// keys pressed this frame, waiting for their synthetic release at
	// EndFrame()
	taps [][2]string

	// previous mouse button mask. tcell reports the current mask rather
	// than transitions
	buttons tcell.ButtonMask
}

// NewTerm is the preferred method of initialisation for the Term type.
func NewTerm(inp *input.Input) *Term {
	return &Term{
		inp: inp,
	}
}

// ServiceEvent forwards a single tcell event to the input system. Events of
// a type the input system has no interest in are ignored silently.
func (tm *Term) ServiceEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return tm.serviceKey(ev)
	case *tcell.EventMouse:
		return tm.serviceMouse(ev)
	}
	return nil
}

// EndFrame applies the release edge for every key pressed this frame. To be
// called once per frame, after control states have been read and before
// input.Reset().
func (tm *Term) EndFrame() error {
	for _, tap := range tm.taps {
		if err := tm.inp.KeyReleased(tap[0], tap[1]); err != nil {
			return err
		}
	}
	tm.taps = tm.taps[:0]
	return nil
}

func (tm *Term) serviceKey(ev *tcell.EventKey) error {
	var name string
	if ev.Key() == tcell.KeyRune {
		name = strings.ToLower(string(ev.Rune()))
	} else {
		name = strings.ToLower(ev.Name())
	}

	// terminals don't distinguish layout keys from physical keys so the
	// same name serves as both key and scancode
	if err := tm.inp.KeyPressed(name, name); err != nil {
		return err
	}
	tm.taps = append(tm.taps, [2]string{name, name})
	return nil
}

func (tm *Term) serviceMouse(ev *tcell.EventMouse) error {
	x, y := ev.Position()
	if err := tm.inp.MouseMoved(float32(x), float32(y)); err != nil {
		return err
	}

	// wheel bits are momentary, not part of the held mask
	var dx, dy float32
	if ev.Buttons()&tcell.WheelUp != 0 {
		dy++
	}
	if ev.Buttons()&tcell.WheelDown != 0 {
		dy--
	}
	if ev.Buttons()&tcell.WheelLeft != 0 {
		dx--
	}
	if ev.Buttons()&tcell.WheelRight != 0 {
		dx++
	}
	if dx != 0 || dy != 0 {
		if err := tm.inp.WheelMoved(dx, dy); err != nil {
			return err
		}
	}

	// compare the current button mask with the previous one to recover
	// press and release transitions
	curr := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	for i, b := range []tcell.ButtonMask{tcell.Button1, tcell.Button2, tcell.Button3} {
		if curr&b != 0 && tm.buttons&b == 0 {
			if err := tm.inp.MousePressed(float32(x), float32(y), i+1); err != nil {
				return err
			}
		} else if curr&b == 0 && tm.buttons&b != 0 {
			if err := tm.inp.MouseReleased(float32(x), float32(y), i+1); err != nil {
				return err
			}
		}
	}
	tm.buttons = curr

	return nil
}
