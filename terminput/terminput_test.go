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

package terminput_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/jetsetilly/joybind/input"
	"github.com/jetsetilly/joybind/terminput"
	"github.com/jetsetilly/joybind/test"
)

func TestKeyTap(t *testing.T) {
	inp := input.NewInput()
	tm := terminput.NewTerm(inp)

	test.DemandSuccess(t, tm.ServiceEvent(tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone)))

	// rune keys are lowercased
	l := inp.Leaf(input.Key, "a", input.KeyboardDevice)
	test.ExpectEquality(t, l.Pressed, true)
	test.ExpectEquality(t, l.Down, true)
	test.ExpectEquality(t, l.Released, false)

	// the release edge arrives at the end of the frame, not before
	test.DemandSuccess(t, tm.EndFrame())
	test.ExpectEquality(t, l.Down, false)
	test.ExpectEquality(t, l.Released, true)

	inp.Reset()

	// a second frame with no events leaves the key idle
	test.DemandSuccess(t, tm.EndFrame())
	test.ExpectEquality(t, l.Pressed, false)
	test.ExpectEquality(t, l.Down, false)
	test.ExpectEquality(t, l.Released, false)
}

func TestMouseButtons(t *testing.T) {
	inp := input.NewInput()
	tm := terminput.NewTerm(inp)

	// tcell reports the held mask, not transitions. the press must be
	// recovered from the mask diff
	test.DemandSuccess(t, tm.ServiceEvent(tcell.NewEventMouse(4, 5, tcell.Button1, tcell.ModNone)))

	l := inp.Leaf(input.MouseButton, "1", input.KeyboardDevice)
	test.ExpectEquality(t, l.Pressed, true)
	test.ExpectEquality(t, l.Down, true)

	x, y := inp.MousePos()
	test.ExpectEquality(t, x, 4)
	test.ExpectEquality(t, y, 5)

	// repeating the same mask is not a second press
	inp.Reset()
	test.DemandSuccess(t, tm.ServiceEvent(tcell.NewEventMouse(4, 5, tcell.Button1, tcell.ModNone)))
	test.ExpectEquality(t, l.Pressed, false)
	test.ExpectEquality(t, l.Down, true)

	// empty mask releases
	test.DemandSuccess(t, tm.ServiceEvent(tcell.NewEventMouse(4, 5, tcell.ButtonNone, tcell.ModNone)))
	test.ExpectEquality(t, l.Down, false)
	test.ExpectEquality(t, l.Released, true)
}

func TestWheel(t *testing.T) {
	inp := input.NewInput()
	tm := terminput.NewTerm(inp)

	test.DemandSuccess(t, tm.ServiceEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone)))

	l := inp.Leaf(input.MouseButton, input.WheelUp, input.KeyboardDevice)
	test.ExpectEquality(t, l.Pressed, true)

	_, dy := inp.WheelDelta()
	test.ExpectEquality(t, dy, 1)
}
