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
	"github.com/jetsetilly/joybind/curated"
	"github.com/jetsetilly/joybind/input"
)

// Mode decides which device class is allowed to affect an instance.
type Mode int

// List of valid Mode values.
//
// In ModeKeyboard the analog stick and trigger getters return neutral zero
// values regardless of the underlying samples and vibration requests are
// silently dropped. This prevents stale controller state and haptics from
// leaking into a keyboard driven session.
const (
	ModeBoth Mode = iota
	ModeKeyboard
	ModeJoystick
)

func (m Mode) String() string {
	switch m {
	case ModeBoth:
		return "both"
	case ModeKeyboard:
		return "keyboard"
	case ModeJoystick:
		return "joystick"
	}
	return "unknown"
}

// UnknownMode is the sentinel error returned when a mode name or value is
// not recognised.
const UnknownMode = "controls: unknown mode: %v"

// ParseMode converts the string form of a mode, as accepted in the Setup
// type, to a Mode value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "both":
		return ModeBoth, nil
	case "keyboard":
		return ModeKeyboard, nil
	case "joystick":
		return ModeJoystick, nil
	}
	return ModeBoth, curated.Errorf(UnknownMode, s)
}

// SetMode sets the device class mode explicitly. An explicit mode choice
// also disables auto-switching.
func (ins *Instance) SetMode(mode Mode) error {
	switch mode {
	case ModeBoth, ModeKeyboard, ModeJoystick:
	default:
		return curated.Errorf(UnknownMode, int(mode))
	}
	ins.mode = mode
	ins.autoSwitch = false
	return nil
}

// Mode returns the device class mode currently in effect.
func (ins *Instance) Mode() Mode {
	return ins.mode
}

// SetAutoSwitch enables or disables mode auto-switching.
func (ins *Instance) SetAutoSwitch(auto bool) {
	ins.autoSwitch = auto
}

// AutoSwitch returns whether mode auto-switching is enabled.
func (ins *Instance) AutoSwitch() bool {
	return ins.autoSwitch
}

// autoSwitchMode derives the mode from the most recently active device. Run
// once per frame at the top of Update(), only when auto-switching is
// enabled.
//
// Note the asymmetry: activity only ever switches into ModeKeyboard or
// ModeJoystick, there is no path back to ModeBoth. And activity on a gamepad
// other than the instance's own never triggers a switch.
func (ins *Instance) autoSwitchMode() {
	switch d := ins.inp.LastActive(); d {
	case input.KeyboardDevice:
		ins.mode = ModeKeyboard
	case ins.device:
		ins.mode = ModeJoystick
	}
}
