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

package controls_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/joybind/controls"
	"github.com/jetsetilly/joybind/curated"
	"github.com/jetsetilly/joybind/input"
	"github.com/jetsetilly/joybind/test"
)

func TestListControl(t *testing.T) {
	inp := input.NewInput()
	ins, err := controls.NewInstance(inp, controls.Setup{
		Controls: map[string]any{
			"fire": []string{"key:z", "key:x"},
		},
	})
	test.DemandSuccess(t, err)

	st, err := ins.State("fire")
	test.DemandSuccess(t, err)

	// pressing z alone activates the control
	test.DemandSuccess(t, inp.KeyPressed("z", "z"))
	ins.Update()
	test.ExpectEquality(t, st.Pressed, true)
	test.ExpectEquality(t, st.Down, true)
	inp.Reset()

	// while held, also pressing x keeps the control down with no new
	// pressed edge
	test.DemandSuccess(t, inp.KeyPressed("x", "x"))
	ins.Update()
	test.ExpectEquality(t, st.Pressed, false)
	test.ExpectEquality(t, st.Down, true)
	inp.Reset()

	// releasing z while x is still held keeps the control down with no
	// released edge
	test.DemandSuccess(t, inp.KeyReleased("z", "z"))
	ins.Update()
	test.ExpectEquality(t, st.Down, true)
	test.ExpectEquality(t, st.Released, false)
	inp.Reset()

	// releasing the last source deactivates the control, exactly once
	test.DemandSuccess(t, inp.KeyReleased("x", "x"))
	ins.Update()
	test.ExpectEquality(t, st.Down, false)
	test.ExpectEquality(t, st.Released, true)
	inp.Reset()

	ins.Update()
	test.ExpectEquality(t, st.Released, false)
}

func TestListControlSimultaneous(t *testing.T) {
	// both sources pressed in the same frame raise a single pressed edge
	inp := input.NewInput()
	ins, err := controls.NewInstance(inp, controls.Setup{
		Controls: map[string]any{
			"fire": []string{"key:z", "key:x"},
		},
	})
	test.DemandSuccess(t, err)

	st, err := ins.State("fire")
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, inp.KeyPressed("z", "z"))
	test.DemandSuccess(t, inp.KeyPressed("x", "x"))
	ins.Update()
	test.ExpectEquality(t, st.Pressed, true)
	test.ExpectEquality(t, st.Down, true)
	inp.Reset()

	// and both released in the same frame raise a single released edge
	test.DemandSuccess(t, inp.KeyReleased("z", "z"))
	test.DemandSuccess(t, inp.KeyReleased("x", "x"))
	ins.Update()
	test.ExpectEquality(t, st.Down, false)
	test.ExpectEquality(t, st.Released, true)
}

func TestSingleStringControl(t *testing.T) {
	inp := input.NewInput()
	ins, err := controls.NewInstance(inp, controls.Setup{
		Controls: map[string]any{
			// no category prefix defaults to key:
			"jump": "space",
		},
	})
	test.DemandSuccess(t, err)

	st, err := ins.State("jump")
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, inp.KeyPressed("space", "space"))
	ins.Update()
	test.ExpectEquality(t, st.Pressed, true)
}

func TestPredicateControl(t *testing.T) {
	inp := input.NewInput()

	active := false
	ins, err := controls.NewInstance(inp, controls.Setup{
		Controls: map[string]any{
			"special": controls.Predicate(func() (bool, float32, float32) {
				return active, 0.7, 0
			}),
		},
	})
	test.DemandSuccess(t, err)

	st, err := ins.State("special")
	test.DemandSuccess(t, err)

	// false -> false: nothing
	ins.Update()
	test.ExpectEquality(t, st.Pressed, false)
	test.ExpectEquality(t, st.Down, false)
	test.ExpectEquality(t, st.Released, false)

	// false -> true: pressed and down
	active = true
	ins.Update()
	test.ExpectEquality(t, st.Pressed, true)
	test.ExpectEquality(t, st.Down, true)
	test.ExpectEquality(t, st.Released, false)
	test.ExpectEquality(t, st.X, float32(0.7))

	// true -> true: down only
	ins.Update()
	test.ExpectEquality(t, st.Pressed, false)
	test.ExpectEquality(t, st.Down, true)
	test.ExpectEquality(t, st.Released, false)
	test.ExpectEquality(t, st.X, float32(0.7))

	// true -> false: released
	active = false
	ins.Update()
	test.ExpectEquality(t, st.Pressed, false)
	test.ExpectEquality(t, st.Down, false)
	test.ExpectEquality(t, st.Released, true)
}

func TestBareFunctionSpecs(t *testing.T) {
	inp := input.NewInput()

	// both bare function shapes compile
	_, err := controls.NewInstance(inp, controls.Setup{
		Controls: map[string]any{
			"a": func() (bool, float32, float32) { return false, 0, 0 },
			"b": func() bool { return false },
		},
	})
	test.ExpectSuccess(t, err)
}

func TestAnalogMagnitude(t *testing.T) {
	inp := input.NewInput()
	ins, err := controls.NewInstance(inp, controls.Setup{
		Controls: map[string]any{
			"steer": []string{"axis:leftx-", "axis:rightx-"},
		},
		Joystick: 1,
	})
	test.DemandSuccess(t, err)

	st, err := ins.State("steer")
	test.DemandSuccess(t, err)

	// the x value comes from the entry with the greatest squared
	// magnitude, sign preserved
	test.DemandSuccess(t, inp.GamepadAxis(1, input.AxisLeftX, -0.3))
	test.DemandSuccess(t, inp.GamepadAxis(1, input.AxisRightX, -0.8))
	ins.Update()
	test.ExpectEquality(t, st.X, float32(-0.8))

	test.DemandSuccess(t, inp.GamepadAxis(1, input.AxisLeftX, -0.9))
	ins.Update()
	test.ExpectEquality(t, st.X, float32(-0.9))

	// equal magnitudes keep the earliest listed entry
	test.DemandSuccess(t, inp.GamepadAxis(1, input.AxisLeftX, -0.8))
	ins.Update()
	test.ExpectEquality(t, st.X, float32(-0.8))
}

func TestUnknownControl(t *testing.T) {
	inp := input.NewInput()
	ins, err := controls.NewInstance(inp, controls.Setup{})
	test.DemandSuccess(t, err)

	_, err = ins.State("nope")
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, controls.UnknownControl), true)
}

func TestBadSpecs(t *testing.T) {
	inp := input.NewInput()

	// an unrecognised specification shape fails compilation
	_, err := controls.NewInstance(inp, controls.Setup{
		Controls: map[string]any{
			"bad": 42,
		},
	})
	test.ExpectFailure(t, err)

	// unknown category
	_, err = controls.NewInstance(inp, controls.Setup{
		Controls: map[string]any{
			"bad": "pedal:1",
		},
	})
	test.ExpectFailure(t, err)

	// axis sources must carry a direction
	_, err = controls.NewInstance(inp, controls.Setup{
		Controls: map[string]any{
			"bad": "axis:leftx",
		},
	})
	test.ExpectFailure(t, err)

	// unknown mode string
	_, err = controls.NewInstance(inp, controls.Setup{Mode: "telepathy"})
	test.ExpectFailure(t, err)

	// a failed SetControls leaves the previous controls in place
	ins, err := controls.NewInstance(inp, controls.Setup{
		Controls: map[string]any{"fire": "key:z"},
	})
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, ins.SetControls(map[string]any{"fire": 42}))
	_, err = ins.State("fire")
	test.ExpectSuccess(t, err)
}

func TestRebindJoystick(t *testing.T) {
	inp := input.NewInput()

	pred := false
	ins, err := controls.NewInstance(inp, controls.Setup{
		Controls: map[string]any{
			"fire":    "button:a",
			"special": controls.Predicate(func() (bool, float32, float32) { return pred, 0, 0 }),
		},
		Joystick: 1,
	})
	test.DemandSuccess(t, err)

	fire, err := ins.State("fire")
	test.DemandSuccess(t, err)

	// button press on device 1 is seen
	test.DemandSuccess(t, inp.GamepadPressed(1, "a"))
	ins.Update()
	test.ExpectEquality(t, fire.Down, true)
	test.DemandSuccess(t, inp.GamepadReleased(1, "a"))
	ins.Update()
	inp.Reset()

	// prime the predicate's history before the rebind
	pred = true
	ins.Update()
	inp.Reset()

	// rebind to device 2
	test.DemandSuccess(t, ins.SetJoystick(2))
	test.ExpectEquality(t, ins.Joystick(), 2)

	// device 1 activity no longer reaches the control
	test.DemandSuccess(t, inp.GamepadPressed(1, "a"))
	ins.Update()
	test.ExpectEquality(t, fire.Down, false)
	inp.Reset()

	// device 2 activity does
	test.DemandSuccess(t, inp.GamepadPressed(2, "a"))
	ins.Update()
	test.ExpectEquality(t, fire.Down, true)
	inp.Reset()

	// the predicate control kept its history across the rebind: still
	// true, so no new pressed edge
	special, err := ins.State("special")
	test.DemandSuccess(t, err)
	ins.Update()
	test.ExpectEquality(t, special.Pressed, false)
	test.ExpectEquality(t, special.Down, true)

	// the state allocation survives rebinding too
	fire2, err := ins.State("fire")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fire == fire2, true)
}

func TestDeviceHandle(t *testing.T) {
	inp := input.NewInput()
	ins, err := controls.NewInstance(inp, controls.Setup{})
	test.DemandSuccess(t, err)

	// default binding
	test.ExpectEquality(t, ins.Joystick(), controls.DefaultDevice)

	// a bare identifier
	test.ExpectSuccess(t, ins.SetJoystick(4))
	test.ExpectEquality(t, ins.Joystick(), 4)

	// a capability handle
	test.ExpectSuccess(t, ins.SetJoystick(stubDevice{id: 7}))
	test.ExpectEquality(t, ins.Joystick(), 7)

	// anything else is rejected at the boundary
	err = ins.SetJoystick("pad")
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, controls.BadDeviceHandle), true)
	test.ExpectEquality(t, ins.Joystick(), 7)
}

type stubDevice struct {
	id int
}

func (d stubDevice) DeviceID() int {
	return d.id
}

type stubRumbler struct {
	device      int
	left, right float32
	calls       int
}

func (r *stubRumbler) Rumble(device int, left float32, right float32, duration time.Duration) error {
	r.device = device
	r.left = left
	r.right = right
	r.calls++
	return nil
}

func TestVibrate(t *testing.T) {
	inp := input.NewInput()
	r := &stubRumbler{}
	inp.AttachRumbler(r)

	ins, err := controls.NewInstance(inp, controls.Setup{Joystick: 2})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, ins.Vibrate(0.5, 1.0, 200*time.Millisecond))
	test.ExpectEquality(t, r.calls, 1)
	test.ExpectEquality(t, r.device, 2)
	test.ExpectEquality(t, r.left, float32(0.5))

	// out of range strengths fail fast
	err = ins.Vibrate(1.5, 0, 0)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, input.RumbleOutOfRange), true)
	test.ExpectEquality(t, r.calls, 1)

	// in keyboard mode requests are dropped silently, not errored
	test.DemandSuccess(t, ins.SetMode(controls.ModeKeyboard))
	test.ExpectSuccess(t, ins.Vibrate(1.0, 1.0, 0))
	test.ExpectEquality(t, r.calls, 1)
}
