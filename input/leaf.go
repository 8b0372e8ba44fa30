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

// Category differentiates the types of leaf state kept in the device state
// store.
type Category string

// List of valid Category values. The string form is the prefix used in
// control source strings (eg. "key:space", "axis:leftx+").
const (
	Key           Category = "key"
	Scancode      Category = "sc"
	MouseButton   Category = "mouse"
	GamepadButton Category = "button"
	AxisDirection Category = "axis"
)

// Leaf is the atomic tracked state for one physical source: a key, a button
// or one direction of a gamepad axis.
//
// Pressed and Released are edge flags, valid only for the current frame and
// cleared by Reset(). Down is a level flag and persists until the opposing
// event arrives. X and Y hold the most recent continuous sample for axis
// type leaves and are zero for button type leaves.
type Leaf struct {
	Pressed  bool
	Down     bool
	Released bool
	X        float32
	Y        float32
}

// press applies the activation edge to the leaf.
func (l *Leaf) press() {
	l.Pressed = true
	l.Down = true
}

// release applies the deactivation edge to the leaf.
func (l *Leaf) release() {
	l.Down = false
	l.Released = true
}

// Leaf returns the leaf state for the category/source/device triplet,
// creating it if it has not been seen before. It never returns nil and
// entries are never removed. The device argument is ignored for categories
// that are not gamepad scoped (use KeyboardDevice for clarity).
func (inp *Input) Leaf(cat Category, source string, device int) *Leaf {
	switch cat {
	case Key:
		return getOrCreate(inp.keys, source)
	case Scancode:
		return getOrCreate(inp.scancodes, source)
	case MouseButton:
		return getOrCreate(inp.mouseButtons, source)
	case GamepadButton:
		return getOrCreate(inp.deviceLeaves(inp.gamepadButtons, device), source)
	case AxisDirection:
		return getOrCreate(inp.deviceLeaves(inp.axisDirections, device), source)
	}

	// unknown categories cannot happen through the public API. returning a
	// detached leaf keeps the never-nil contract
	return &Leaf{}
}

// getOrCreate is the explicit get-or-insert operation for a leaf map.
func getOrCreate(m map[string]*Leaf, source string) *Leaf {
	if l, ok := m[source]; ok {
		return l
	}
	l := &Leaf{}
	m[source] = l
	return l
}

// deviceLeaves returns the leaf map for the device, creating it if required.
func (inp *Input) deviceLeaves(m map[int]map[string]*Leaf, device int) map[string]*Leaf {
	if d, ok := m[device]; ok {
		return d
	}
	d := make(map[string]*Leaf)
	m[device] = d
	return d
}
