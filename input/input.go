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
	"time"

	"github.com/jetsetilly/joybind/curated"
	"github.com/jetsetilly/joybind/logger"
)

// KeyboardDevice is the device identity reported by LastActive() when the
// most recent event came from the keyboard or mouse rather than a gamepad.
// Real gamepad identifiers are host assigned and must not be negative.
const KeyboardDevice = -1

// DefaultThreshold is the axis hysteresis threshold in effect for a newly
// created Input.
const DefaultThreshold = 0.5

// Sentinel errors for the input package.
const (
	ThresholdOutOfRange = "input: threshold out of range: %0.2f"
	AxisValueOutOfRange = "input: axis value out of range: %0.2f"
	UnknownAxis         = "input: unknown axis: %s"
	BadDevice           = "input: bad device identifier: %d"
	BadSource           = "input: bad source name"
	RumbleOutOfRange    = "input: rumble strength out of range: %0.2f"
)

// Rumbler implementations drive force-feedback on a gamepad. Implemented by
// the host glue (the userinput package provides one over SDL game
// controllers). The core never talks to hardware itself.
type Rumbler interface {
	Rumble(device int, left float32, right float32, duration time.Duration) error
}

// Input is the device state store and the ingestion point for all device
// events. Create one with NewInput() and share it, by reference, with every
// consumer. See the package documentation for the frame contract.
type Input struct {
	threshold  float32
	lastActive int

	keys           map[string]*Leaf
	scancodes      map[string]*Leaf
	mouseButtons   map[string]*Leaf
	gamepadButtons map[int]map[string]*Leaf
	axisDirections map[int]map[string]*Leaf

	// shared mouse position cache. absolute coordinates as reported by the
	// host, no edge state
	mouseX float32
	mouseY float32

	// per-frame wheel delta accumulator. only a nonzero sample overwrites
	// the previous value, Reset() is the only thing that zeroes it
	wheelX float32
	wheelY float32

	// per-device continuous axis caches
	analog map[int]*Analog

	rumbler Rumbler
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput() *Input {
	return &Input{
		threshold:      DefaultThreshold,
		lastActive:     KeyboardDevice,
		keys:           make(map[string]*Leaf),
		scancodes:      make(map[string]*Leaf),
		mouseButtons:   make(map[string]*Leaf),
		gamepadButtons: make(map[int]map[string]*Leaf),
		axisDirections: make(map[int]map[string]*Leaf),
		analog:         make(map[int]*Analog),
	}
}

// SetThreshold sets the axis hysteresis threshold. An axis sample must
// exceed the threshold (strictly) before the directional leaf registers a
// press. Valid range is 0.0 to 1.0.
func (inp *Input) SetThreshold(t float32) error {
	if t < 0.0 || t > 1.0 {
		return curated.Errorf(ThresholdOutOfRange, t)
	}
	inp.threshold = t
	return nil
}

// Threshold returns the axis hysteresis threshold currently in effect.
func (inp *Input) Threshold() float32 {
	return inp.threshold
}

// LastActive identifies the device that produced the most recent event.
// Keyboard, mouse and wheel events all report KeyboardDevice.
func (inp *Input) LastActive() int {
	return inp.lastActive
}

// MousePos returns the shared mouse position cache.
func (inp *Input) MousePos() (float32, float32) {
	return inp.mouseX, inp.mouseY
}

// WheelDelta returns the per-frame wheel accumulator. The value persists
// until the next nonzero wheel sample or until Reset().
func (inp *Input) WheelDelta() (float32, float32) {
	return inp.wheelX, inp.wheelY
}

// AttachRumbler gives the Input a path to gamepad force-feedback hardware. A
// nil value detaches.
func (inp *Input) AttachRumbler(r Rumbler) {
	inp.rumbler = r
}

// Rumble forwards a vibration request to the attached Rumbler. Requests are
// logged and discarded when no Rumbler is attached. Strength values are
// valid in the range 0.0 to 1.0.
func (inp *Input) Rumble(device int, left float32, right float32, duration time.Duration) error {
	if left < 0.0 || left > 1.0 {
		return curated.Errorf(RumbleOutOfRange, left)
	}
	if right < 0.0 || right > 1.0 {
		return curated.Errorf(RumbleOutOfRange, right)
	}
	if inp.rumbler == nil {
		logger.Log("input", "rumble request dropped (no rumbler attached)")
		return nil
	}
	return inp.rumbler.Rumble(device, left, right, duration)
}
