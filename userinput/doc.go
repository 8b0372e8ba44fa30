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

// Package userinput connects an SDL event loop to the input package. It is
// glue: SDL events in, ingestion calls out. Nothing in here carries any
// state that the core engine depends on.
//
// Hosts that run their own SDL event loop can forward events one at a time
// with ServiceEvent(). Hosts that don't can call Service() once per frame to
// drain the SDL event queue.
//
// The package also implements the input.Rumbler interface over SDL game
// controllers. Attach with:
//
//	sdlglue := userinput.NewSDL(inp)
//	inp.AttachRumbler(sdlglue)
//
// Gamepads are numbered from 1 in order of attachment, matching the default
// device binding of a controls.Instance.
package userinput
