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

package input

import (
	"strconv"

	"github.com/jetsetilly/joybind/curated"
)

// Names of the four virtual one-shot leaves raised by wheel movement. They
// only ever use the Pressed flag; a wheel click has no "held" concept so
// Down and Released stay false forever.
const (
	WheelUp    = "wheelup"
	WheelDown  = "wheeldown"
	WheelLeft  = "wheelleft"
	WheelRight = "wheelright"
)

// KeyPressed records the activation of a key. The same edge is applied to
// the key-named leaf and the matching scancode-named leaf.
func (inp *Input) KeyPressed(key string, scancode string) error {
	if key == "" || scancode == "" {
		return curated.Errorf(BadSource)
	}
	inp.Leaf(Key, key, KeyboardDevice).press()
	inp.Leaf(Scancode, scancode, KeyboardDevice).press()
	inp.lastActive = KeyboardDevice
	return nil
}

// KeyReleased records the deactivation of a key.
func (inp *Input) KeyReleased(key string, scancode string) error {
	if key == "" || scancode == "" {
		return curated.Errorf(BadSource)
	}
	inp.Leaf(Key, key, KeyboardDevice).release()
	inp.Leaf(Scancode, scancode, KeyboardDevice).release()
	inp.lastActive = KeyboardDevice
	return nil
}

// MousePressed records the activation of a mouse button. The leaf is keyed
// by the stringified button number. The mouse counts as keyboard-class
// activity for mode arbitration purposes.
func (inp *Input) MousePressed(x float32, y float32, button int) error {
	if button < 1 {
		return curated.Errorf(BadSource)
	}
	inp.mouseX = x
	inp.mouseY = y
	inp.Leaf(MouseButton, strconv.Itoa(button), KeyboardDevice).press()
	inp.lastActive = KeyboardDevice
	return nil
}

// MouseReleased records the deactivation of a mouse button.
func (inp *Input) MouseReleased(x float32, y float32, button int) error {
	if button < 1 {
		return curated.Errorf(BadSource)
	}
	inp.mouseX = x
	inp.mouseY = y
	inp.Leaf(MouseButton, strconv.Itoa(button), KeyboardDevice).release()
	inp.lastActive = KeyboardDevice
	return nil
}

// MouseMoved records the absolute mouse position. No edge state is involved.
func (inp *Input) MouseMoved(x float32, y float32) error {
	inp.mouseX = x
	inp.mouseY = y
	inp.lastActive = KeyboardDevice
	return nil
}

// WheelMoved records wheel movement. Each axis with a nonzero delta raises
// the Pressed flag on the corresponding virtual one-shot leaf and overwrites
// that axis of the wheel accumulator. A zero delta leaves the accumulator
// alone, so momentum within a frame carries over; only Reset() zeroes it.
func (inp *Input) WheelMoved(dx float32, dy float32) error {
	if dx > 0 {
		inp.Leaf(MouseButton, WheelRight, KeyboardDevice).Pressed = true
	} else if dx < 0 {
		inp.Leaf(MouseButton, WheelLeft, KeyboardDevice).Pressed = true
	}
	if dy > 0 {
		inp.Leaf(MouseButton, WheelUp, KeyboardDevice).Pressed = true
	} else if dy < 0 {
		inp.Leaf(MouseButton, WheelDown, KeyboardDevice).Pressed = true
	}

	if dx != 0 {
		inp.wheelX = dx
	}
	if dy != 0 {
		inp.wheelY = dy
	}

	inp.lastActive = KeyboardDevice
	return nil
}

// GamepadPressed records the activation of a gamepad button on the specified
// device.
func (inp *Input) GamepadPressed(device int, button string) error {
	if device < 0 {
		return curated.Errorf(BadDevice, device)
	}
	if button == "" {
		return curated.Errorf(BadSource)
	}
	inp.Leaf(GamepadButton, button, device).press()
	inp.lastActive = device
	return nil
}

// GamepadReleased records the deactivation of a gamepad button on the
// specified device.
func (inp *Input) GamepadReleased(device int, button string) error {
	if device < 0 {
		return curated.Errorf(BadDevice, device)
	}
	if button == "" {
		return curated.Errorf(BadSource)
	}
	inp.Leaf(GamepadButton, button, device).release()
	inp.lastActive = device
	return nil
}

// GamepadAxis records a continuous axis sample on the specified device. The
// value must be in the range -1.0 to 1.0.
//
// The raw sample is stored in the device's Analog cache and is then fed to
// the hysteresis decoder for the positive directional leaf of the axis and,
// unless the axis is one of the unsigned trigger axes, the negative
// directional leaf too.
func (inp *Input) GamepadAxis(device int, axis string, value float32) error {
	if device < 0 {
		return curated.Errorf(BadDevice, device)
	}
	if value < -1.0 || value > 1.0 {
		return curated.Errorf(AxisValueOutOfRange, value)
	}

	c, ok := splitAxis(axis)
	if !ok {
		return curated.Errorf(UnknownAxis, axis)
	}

	updateAnalog(inp.Analog(device), axis, value)

	inp.decodeDirection(inp.Leaf(AxisDirection, axis+PositiveDir, device), c, value, true)
	if axis != AxisTriggerLeft && axis != AxisTriggerRight {
		inp.decodeDirection(inp.Leaf(AxisDirection, axis+NegativeDir, device), c, value, false)
	}

	inp.lastActive = device
	return nil
}
