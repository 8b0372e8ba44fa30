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

package userinput

import (
	"strings"
	"time"

	"github.com/jetsetilly/joybind/curated"
	"github.com/jetsetilly/joybind/input"
	"github.com/jetsetilly/joybind/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// Sentinel errors for the userinput package.
const (
	NoSuchPad = "userinput: no opened gamepad with device number: %d"
)

// SDL translates events from an SDL event loop into ingestion calls on the
// shared input.Input. It also implements the input.Rumbler interface.
type SDL struct {
	inp *input.Input

	// opened game controllers and their assigned device numbers, keyed by
	// SDL joystick instance id
	pads    map[sdl.JoystickID]*sdl.GameController
	devices map[sdl.JoystickID]int

	// next device number to assign. gamepads are numbered from 1 in order
	// of attachment
	nextDevice int
}

// NewSDL is the preferred method of initialisation for the SDL type. The
// caller is responsible for SDL subsystem initialisation (sdl.INIT_EVENTS
// and sdl.INIT_GAMECONTROLLER).
func NewSDL(inp *input.Input) *SDL {
	return &SDL{
		inp:        inp,
		pads:       make(map[sdl.JoystickID]*sdl.GameController),
		devices:    make(map[sdl.JoystickID]int),
		nextDevice: 1,
	}
}

// Close releases every opened game controller.
func (h *SDL) Close() {
	for _, pad := range h.pads {
		pad.Close()
	}
	h.pads = make(map[sdl.JoystickID]*sdl.GameController)
	h.devices = make(map[sdl.JoystickID]int)
}

// Service drains the SDL event queue, forwarding every recognised event to
// the input system. To be called once per frame by hosts that do not run
// their own event loop.
func (h *SDL) Service() error {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if err := h.ServiceEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

// ServiceEvent forwards a single SDL event to the input system. Events of a
// type the input system has no interest in are ignored silently.
func (h *SDL) ServiceEvent(ev sdl.Event) error {
	switch ev := ev.(type) {
	case *sdl.KeyboardEvent:
		return h.serviceKeyboard(ev)

	case *sdl.MouseButtonEvent:
		if ev.Type == sdl.MOUSEBUTTONDOWN {
			return h.inp.MousePressed(float32(ev.X), float32(ev.Y), int(ev.Button))
		}
		return h.inp.MouseReleased(float32(ev.X), float32(ev.Y), int(ev.Button))

	case *sdl.MouseMotionEvent:
		return h.inp.MouseMoved(float32(ev.X), float32(ev.Y))

	case *sdl.MouseWheelEvent:
		return h.inp.WheelMoved(float32(ev.X), float32(ev.Y))

	case *sdl.ControllerButtonEvent:
		return h.serviceControllerButton(ev)

	case *sdl.ControllerAxisEvent:
		return h.serviceControllerAxis(ev)

	case *sdl.ControllerDeviceEvent:
		h.serviceControllerDevice(ev)
	}

	return nil
}

func (h *SDL) serviceKeyboard(ev *sdl.KeyboardEvent) error {
	// key repeats have no edge meaning for us
	if ev.Repeat != 0 {
		return nil
	}

	key := strings.ToLower(sdl.GetKeyName(ev.Keysym.Sym))
	scancode := strings.ToLower(sdl.GetScancodeName(ev.Keysym.Scancode))

	if ev.Type == sdl.KEYDOWN {
		return h.inp.KeyPressed(key, scancode)
	}
	return h.inp.KeyReleased(key, scancode)
}

func (h *SDL) serviceControllerButton(ev *sdl.ControllerButtonEvent) error {
	device, ok := h.devices[ev.Which]
	if !ok {
		logger.Log("userinput", "dropped button event from unopened gamepad")
		return nil
	}

	button := sdl.GameControllerGetStringForButton(sdl.GameControllerButton(ev.Button))
	if button == "" {
		logger.Logf("userinput", "dropped event for unnamed gamepad button: %d", ev.Button)
		return nil
	}

	if ev.State == sdl.PRESSED {
		return h.inp.GamepadPressed(device, button)
	}
	return h.inp.GamepadReleased(device, button)
}

func (h *SDL) serviceControllerAxis(ev *sdl.ControllerAxisEvent) error {
	device, ok := h.devices[ev.Which]
	if !ok {
		logger.Log("userinput", "dropped axis event from unopened gamepad")
		return nil
	}

	var axis string
	switch sdl.GameControllerAxis(ev.Axis) {
	case sdl.CONTROLLER_AXIS_LEFTX:
		axis = input.AxisLeftX
	case sdl.CONTROLLER_AXIS_LEFTY:
		axis = input.AxisLeftY
	case sdl.CONTROLLER_AXIS_RIGHTX:
		axis = input.AxisRightX
	case sdl.CONTROLLER_AXIS_RIGHTY:
		axis = input.AxisRightY
	case sdl.CONTROLLER_AXIS_TRIGGERLEFT:
		axis = input.AxisTriggerLeft
	case sdl.CONTROLLER_AXIS_TRIGGERRIGHT:
		axis = input.AxisTriggerRight
	default:
		logger.Logf("userinput", "dropped event for unknown gamepad axis: %d", ev.Axis)
		return nil
	}

	// normalise from SDL's int16. the asymmetric int16 range means a full
	// negative deflection lands just below -1.0 without the clamp
	value := float32(ev.Value) / 32767.0
	if value < -1.0 {
		value = -1.0
	}

	return h.inp.GamepadAxis(device, axis, value)
}

func (h *SDL) serviceControllerDevice(ev *sdl.ControllerDeviceEvent) {
	switch ev.Type {
	case sdl.CONTROLLERDEVICEADDED:
		pad := sdl.GameControllerOpen(int(ev.Which))
		if pad == nil {
			logger.Log("userinput", "could not open attached gamepad")
			return
		}
		id := pad.Joystick().InstanceID()
		h.pads[id] = pad
		h.devices[id] = h.nextDevice
		logger.Logf("userinput", "gamepad %d attached: %s", h.nextDevice, pad.Name())
		h.nextDevice++

	case sdl.CONTROLLERDEVICEREMOVED:
		id := sdl.JoystickID(ev.Which)
		if pad, ok := h.pads[id]; ok {
			logger.Logf("userinput", "gamepad %d removed", h.devices[id])
			pad.Close()
			delete(h.pads, id)
			delete(h.devices, id)
		}
	}
}

// Rumble implements the input.Rumbler interface over SDL game controllers.
func (h *SDL) Rumble(device int, left float32, right float32, duration time.Duration) error {
	for id, d := range h.devices {
		if d == device {
			return h.pads[id].Rumble(
				uint16(left*65535),
				uint16(right*65535),
				uint32(duration.Milliseconds()),
			)
		}
	}
	return curated.Errorf(NoSuchPad, device)
}
