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

// Reset clears the edge flags on every leaf currently known to the device
// state store and zeroes the wheel accumulator. To be called once per frame,
// after the application has read its controls.
//
// Down flags, leaf axis samples and the per-device analog caches are left
// alone. They persist until superseded by a new sample or an explicit
// release event.
func (inp *Input) Reset() {
	resetLeaves(inp.keys)
	resetLeaves(inp.scancodes)
	resetLeaves(inp.mouseButtons)
	for _, d := range inp.gamepadButtons {
		resetLeaves(d)
	}
	for _, d := range inp.axisDirections {
		resetLeaves(d)
	}

	inp.wheelX = 0
	inp.wheelY = 0
}

func resetLeaves(m map[string]*Leaf) {
	for _, l := range m {
		l.Pressed = false
		l.Released = false
	}
}
