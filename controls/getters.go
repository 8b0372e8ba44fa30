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

// Mouse returns the shared mouse position. The instance's transform is
// applied when one is set; supplying a transform argument overrides it for
// this call only.
func (ins *Instance) Mouse(transform ...Transform) (float32, float32) {
	x, y := ins.inp.MousePos()

	tr := ins.transform
	if len(transform) > 0 {
		tr = transform[0]
	}
	if tr != nil {
		return tr(x, y)
	}
	return x, y
}

// Wheel returns the per-frame wheel delta accumulator.
func (ins *Instance) Wheel() (float32, float32) {
	return ins.inp.WheelDelta()
}

// analogDevice selects the device for the analog getters. The optional
// argument overrides the instance's own binding.
func (ins *Instance) analogDevice(device []int) int {
	if len(device) > 0 {
		return device[0]
	}
	return ins.device
}

// Left returns the left thumbstick position of the instance's gamepad, or of
// the optionally specified device. Neutral in ModeKeyboard.
func (ins *Instance) Left(device ...int) (float32, float32) {
	if ins.mode == ModeKeyboard {
		return 0, 0
	}
	a := ins.inp.Analog(ins.analogDevice(device))
	return a.LeftX, a.LeftY
}

// Right returns the right thumbstick position of the instance's gamepad, or
// of the optionally specified device. Neutral in ModeKeyboard.
func (ins *Instance) Right(device ...int) (float32, float32) {
	if ins.mode == ModeKeyboard {
		return 0, 0
	}
	a := ins.inp.Analog(ins.analogDevice(device))
	return a.RightX, a.RightY
}

// TriggerLeft returns the left trigger value of the instance's gamepad, or
// of the optionally specified device. Neutral in ModeKeyboard.
func (ins *Instance) TriggerLeft(device ...int) float32 {
	if ins.mode == ModeKeyboard {
		return 0
	}
	return ins.inp.Analog(ins.analogDevice(device)).TriggerLeft
}

// TriggerRight returns the right trigger value of the instance's gamepad, or
// of the optionally specified device. Neutral in ModeKeyboard.
func (ins *Instance) TriggerRight(device ...int) float32 {
	if ins.mode == ModeKeyboard {
		return 0
	}
	return ins.inp.Analog(ins.analogDevice(device)).TriggerRight
}

// Trigger returns both trigger values of the instance's gamepad, or of the
// optionally specified device. Neutral in ModeKeyboard.
func (ins *Instance) Trigger(device ...int) (float32, float32) {
	if ins.mode == ModeKeyboard {
		return 0, 0
	}
	a := ins.inp.Analog(ins.analogDevice(device))
	return a.TriggerLeft, a.TriggerRight
}
