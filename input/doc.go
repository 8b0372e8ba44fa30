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

// Package input is the hub of the joybind system. It maintains the device
// state store: the table of leaf input states for every key, mouse button,
// gamepad button and gamepad axis direction that the host application has
// reported an event for.
//
// The Input type is the single source of truth for device state. There is
// one physical keyboard and mouse so there should only ever be one Input
// value in a program, created once and shared by reference with every
// controls.Instance and with the glue package that feeds it events. It is
// deliberately not a package level singleton - unit tests want to create a
// fresh Input for every test.
//
// Events are ingested through the KeyPressed(), KeyReleased(),
// MousePressed(), MouseReleased(), MouseMoved(), WheelMoved(),
// GamepadPressed(), GamepadReleased() and GamepadAxis() functions. The host
// is expected to call these from its own event callbacks at any time during
// the frame, before any controls.Instance is updated.
//
// Each leaf records two kinds of state. The edge flags, Pressed and
// Released, are true for exactly one frame; they are cleared by the Reset()
// function which the host must call once per frame after the application has
// read its controls. The level flag, Down, persists across frames until the
// opposing event arrives and is never touched by Reset().
//
// Gamepad axis samples pass through a hysteresis decoder which compares each
// sample against the threshold (see SetThreshold()) and raises edge events
// on the positive and negative directional leaves of the axis. The raw
// continuous sample is also cached per device and is available through the
// Analog() function, entirely decoupled from the directional edges.
//
// The expected call order within a frame is strict:
//
//  1. ingest events (any time before step 2)
//  2. update every controls.Instance exactly once
//  3. application reads control states
//  4. Reset()
//
// Violating the order does not corrupt state but will yield stale or
// duplicated edges. There is no locking; all calls must come from the one
// goroutine that owns the frame loop.
package input
