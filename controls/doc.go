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

// Package controls maps the raw leaf states kept by the input package onto
// named, application defined controls.
//
// An Instance is an independent consumer of the shared input.Input. A game
// would typically create one instance per player. Each instance owns a set
// of named controls, a device class mode and a gamepad binding.
//
// A control is specified by a source string, by a list of source strings, or
// by a predicate function. Source strings take the form "category:source"
// with a missing category defaulting to "key:":
//
//	"left"           the left cursor key
//	"sc:space"       a key by scancode
//	"mouse:1"        the first mouse button
//	"button:a"       a gamepad button on the instance's device
//	"axis:leftx-"    the negative direction of a gamepad axis
//
// An alias table expands convenience names ("lt", "rb", "wheelup", ...)
// before resolution. A control backed by a list of sources is active when
// any of its sources is active. A control backed by a predicate performs its
// own edge detection over the boolean the predicate returns.
//
// Update() must be called exactly once per frame for every live instance,
// after event ingestion and before the application reads any control state.
// The state returned by State() is allocated once per control name and
// mutated in place on every update; applications must treat it as read-only.
package controls
