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

package controls

import (
	"time"

	"github.com/jetsetilly/joybind/curated"
	"github.com/jetsetilly/joybind/input"
	"github.com/jetsetilly/joybind/logger"
)

// Transform converts a coordinate pair from the host's window space to
// whatever space the application works in. The function is opaque to
// joybind; it is applied to the result of the Mouse() getter and nothing
// else.
type Transform func(x float32, y float32) (float32, float32)

// Setup is the one-shot configuration for a new Instance.
type Setup struct {
	// mapping of control name to specification. see the compile() function
	// for accepted specification shapes
	Controls map[string]any

	// one of "both", "keyboard" or "joystick". the empty string means
	// "both"
	Mode string

	AutoSwitch bool
	Transform  Transform

	// the gamepad the instance is bound to. a bare int identifier or a
	// Device handle. nil binds to DefaultDevice
	Joystick any
}

// Instance is one independent consumer of the shared device state store.
// Create one per player with NewInstance().
type Instance struct {
	inp *input.Input

	mode       Mode
	autoSwitch bool
	device     int
	transform  Transform

	// specifications are kept as supplied so that list based controls can
	// be recompiled when the instance is rebound to another device
	specs    map[string]any
	controls map[string]*control

	// states are allocated once per control name and survive recompilation
	states map[string]*State
}

// NewInstance is the preferred method of initialisation for the Instance
// type. The supplied input.Input must be the program's one shared instance.
func NewInstance(inp *input.Input, setup Setup) (*Instance, error) {
	ins := &Instance{
		inp:    inp,
		states: make(map[string]*State),
	}

	mode := ModeBoth
	if setup.Mode != "" {
		var err error
		mode, err = ParseMode(setup.Mode)
		if err != nil {
			return nil, err
		}
	}
	ins.mode = mode
	ins.autoSwitch = setup.AutoSwitch
	ins.transform = setup.Transform

	device, err := resolveDevice(setup.Joystick)
	if err != nil {
		return nil, err
	}
	ins.device = device

	if err := ins.SetControls(setup.Controls); err != nil {
		return nil, err
	}

	return ins, nil
}

// SetControls replaces the instance's named controls. Specifications are
// compiled immediately; on any compile error the instance's previous
// controls are left untouched.
//
// A control name that existed before keeps its State allocation.
func (ins *Instance) SetControls(specs map[string]any) error {
	compiled := make(map[string]*control, len(specs))

	for name, spec := range specs {
		state, ok := ins.states[name]
		if !ok {
			state = &State{}
		}

		co, err := ins.compile(name, spec, state)
		if err != nil {
			return curated.Errorf("controls: %s: %v", name, err)
		}
		compiled[name] = co
	}

	// commit. states map is only added to, never cleared - State values
	// must survive for as long as the application holds a reference
	for name, co := range compiled {
		ins.states[name] = co.state
	}
	ins.specs = make(map[string]any, len(specs))
	for name, spec := range specs {
		ins.specs[name] = spec
	}
	ins.controls = compiled

	return nil
}

// Update runs the evaluator over every control of the instance. To be
// called exactly once per frame, after event ingestion and before the
// application reads any control state.
func (ins *Instance) Update() {
	if ins.autoSwitch {
		ins.autoSwitchMode()
	}

	for _, co := range ins.controls {
		co.evaluate()
	}
}

// State returns the derived state for a named control. The returned value is
// mutated in place by Update() and must be treated as read-only.
func (ins *Instance) State(name string) (*State, error) {
	co, ok := ins.controls[name]
	if !ok {
		return nil, curated.Errorf(UnknownControl, name)
	}
	return co.state, nil
}

// SetJoystick rebinds the instance to another gamepad. Accepts a bare int
// identifier or a Device handle.
//
// Rebinding recompiles every list based control - their leaves were resolved
// against the previous device at compile time. Predicate based controls are
// unaffected and keep their edge detection history.
func (ins *Instance) SetJoystick(device any) error {
	d, err := resolveDevice(device)
	if err != nil {
		return err
	}
	ins.device = d

	for name, co := range ins.controls {
		if co.predicate != nil {
			continue
		}

		rc, err := ins.compile(name, ins.specs[name], co.state)
		if err != nil {
			return curated.Errorf("controls: %s: %v", name, err)
		}
		co.leaves = rc.leaves
	}

	return nil
}

// Joystick returns the device identifier the instance is bound to.
func (ins *Instance) Joystick() int {
	return ins.device
}

// SetTransform replaces the instance's coordinate transform. A nil value
// means no transform.
func (ins *Instance) SetTransform(transform Transform) {
	ins.transform = transform
}

// Transform returns the instance's coordinate transform.
func (ins *Instance) Transform() Transform {
	return ins.transform
}

// Vibrate requests force-feedback on the instance's gamepad. Strength values
// are valid in the range 0.0 to 1.0. Requests are dropped, not errored, in
// ModeKeyboard.
func (ins *Instance) Vibrate(left float32, right float32, duration time.Duration) error {
	if left < 0.0 || left > 1.0 {
		return curated.Errorf(input.RumbleOutOfRange, left)
	}
	if right < 0.0 || right > 1.0 {
		return curated.Errorf(input.RumbleOutOfRange, right)
	}

	if ins.mode == ModeKeyboard {
		logger.Log("controls", "vibration dropped (keyboard mode)")
		return nil
	}

	return ins.inp.Rumble(ins.device, left, right, duration)
}
