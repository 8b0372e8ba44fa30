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

// DefaultDevice is the gamepad an instance is bound to when the Setup type
// does not say otherwise.
const DefaultDevice = 1

// Device is the capability required of a gamepad handle. Host glue packages
// may hand an implementation of this interface to SetJoystick() instead of a
// bare numeric identifier.
type Device interface {
	DeviceID() int
}

// Sentinel error for device resolution.
const BadDeviceHandle = "controls: not a device identifier or device handle (%T)"

// resolveDevice normalises a gamepad reference to a bare device identifier.
// Accepts an int, an implementation of the Device interface, or nil for the
// default device. Anything else is rejected.
func resolveDevice(v any) (int, error) {
	switch v := v.(type) {
	case nil:
		return DefaultDevice, nil
	case int:
		if v < 0 {
			return 0, curated.Errorf(input.BadDevice, v)
		}
		return v, nil
	case Device:
		id := v.DeviceID()
		if id < 0 {
			return 0, curated.Errorf(input.BadDevice, id)
		}
		return id, nil
	}
	return 0, curated.Errorf(BadDeviceHandle, v)
}
