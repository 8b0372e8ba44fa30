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

// List of recognised gamepad axis names. The trigger axes are unsigned and
// have no negative direction.
const (
	AxisLeftX        = "leftx"
	AxisLeftY        = "lefty"
	AxisRightX       = "rightx"
	AxisRightY       = "righty"
	AxisTriggerLeft  = "triggerleft"
	AxisTriggerRight = "triggerright"
)

// PositiveDir and NegativeDir are the suffixes that turn an axis name into
// the name of a directional leaf (eg. "leftx+", "lefty-").
const (
	PositiveDir = "+"
	NegativeDir = "-"
)

// Analog is the per-device cache of raw continuous axis values. The values
// are entirely decoupled from the boolean edges on the directional leaves;
// they are what the analog getters in the controls package return.
type Analog struct {
	LeftX        float32
	LeftY        float32
	RightX       float32
	RightY       float32
	TriggerLeft  float32
	TriggerRight float32
}

// Analog returns the continuous axis cache for the device, creating it if it
// has not been seen before. Never returns nil.
func (inp *Input) Analog(device int) *Analog {
	if a, ok := inp.analog[device]; ok {
		return a
	}
	a := &Analog{}
	inp.analog[device] = a
	return a
}

// coord selects which of a leaf's X/Y fields an axis sample is stored in.
type coord int

const (
	coordX coord = iota
	coordY
)

// splitAxis validates an axis name and returns the coordinate the axis
// reports on. Axis names without an x/y suffix (the trigger axes) default to
// the x coordinate.
func splitAxis(axis string) (coord, bool) {
	switch axis {
	case AxisLeftX, AxisRightX, AxisTriggerLeft, AxisTriggerRight:
		return coordX, true
	case AxisLeftY, AxisRightY:
		return coordY, true
	}
	return coordX, false
}

// updateAnalog stores a raw axis sample in the device's continuous cache.
func updateAnalog(a *Analog, axis string, value float32) {
	switch axis {
	case AxisLeftX:
		a.LeftX = value
	case AxisLeftY:
		a.LeftY = value
	case AxisRightX:
		a.RightX = value
	case AxisRightY:
		a.RightY = value
	case AxisTriggerLeft:
		a.TriggerLeft = value
	case AxisTriggerRight:
		a.TriggerRight = value
	}
}

// decodeDirection applies the hysteresis rule for one direction of an axis.
//
// The previous sample is read from the leaf before the new sample is stored.
// The order matters: the edge test must see the old value.
//
// Comparisons are strict. A sample sitting exactly on the threshold does not
// count as crossed for entry and counts as crossed for exit.
func (inp *Input) decodeDirection(l *Leaf, c coord, value float32, positive bool) {
	t := inp.threshold

	var prev float32
	if c == coordX {
		prev = l.X
	} else {
		prev = l.Y
	}

	if positive {
		if prev <= t && value > t {
			l.press()
		} else if prev > t && value <= t {
			l.release()
		}
	} else {
		if prev >= -t && value < -t {
			l.press()
		} else if prev < -t && value >= -t {
			l.release()
		}
	}

	if c == coordX {
		l.X = value
	} else {
		l.Y = value
	}
}
