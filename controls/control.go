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

// Sentinel errors for control specification and lookup.
const (
	UnrecognisedSpec = "controls: unrecognised control specification (%T)"
	UnknownControl   = "controls: unknown control: %s"
)

// State is the derived, query friendly state of one named control. Same
// shape as input.Leaf.
//
// A State value is allocated once per control name and is mutated in place
// on every Update() for the remaining lifetime of the instance. Applications
// must treat it as read-only.
type State struct {
	Pressed  bool
	Down     bool
	Released bool
	X        float32
	Y        float32
}

// Predicate is the escape hatch for controls that cannot be expressed as a
// list of sources. It reports whether the control is active along with an
// optional analog x/y payload. Edge detection over the boolean is performed
// by the evaluator.
//
// Predicates are for expressing input conditions, not game logic.
type Predicate func() (bool, float32, float32)

// control is the compiled descriptor for one named control: either an
// ordered list of resolved leaves or a predicate with its cached previous
// result. Exactly one of the two forms is populated.
type control struct {
	name string

	// list form. resolved against the instance's device at compile time
	leaves []*input.Leaf

	// predicate form. prev is the only piece of history a predicate control
	// owns, used solely for edge detection
	predicate Predicate
	prev      bool

	state *State
}

// evaluate recomputes the control's State from its leaves or its predicate.
// Run once per frame from Instance.Update().
func (co *control) evaluate() {
	if co.predicate != nil {
		co.evaluatePredicate()
		return
	}
	co.evaluateList()
}

// evaluateList derives the State as a pure function of the referenced
// leaves, with no history of its own.
//
// Down is the OR across all entries. The edge flags are ORed too but masked
// so that they fire exactly once per activation of the control as a whole: a
// source pressed while another source is already held raises no new pressed
// edge, and a source released while another source is still held raises no
// released edge. A leaf that is down but not pressed this frame must have
// been held since an earlier frame, which is all the evaluator needs to
// know.
//
// The x and y values are taken, independently, from the entry with the
// greatest squared magnitude; a strict comparison means ties keep the
// earliest listed entry.
func (co *control) evaluateList() {
	st := co.state

	var pressed, down, released, held bool
	var x, y float32

	for _, l := range co.leaves {
		pressed = pressed || l.Pressed
		down = down || l.Down
		released = released || l.Released
		held = held || (l.Down && !l.Pressed)

		if l.X*l.X > x*x {
			x = l.X
		}
		if l.Y*l.Y > y*y {
			y = l.Y
		}
	}

	st.Pressed = pressed && !held
	st.Down = down
	st.Released = released && !down
	st.X = x
	st.Y = y
}

// evaluatePredicate invokes the predicate and derives the edge flags by
// comparing the result with the previous invocation.
func (co *control) evaluatePredicate() {
	st := co.state

	active, x, y := co.predicate()
	st.X = x
	st.Y = y

	st.Pressed = active && !co.prev
	st.Down = active
	st.Released = !active && co.prev

	co.prev = active
}

// compile resolves a control specification into a control descriptor.
// Accepted shapes: a single source string, a list of source strings, a
// Predicate, a bare func() (bool, float32, float32) or a func() bool.
// Anything else is a compile error.
func (ins *Instance) compile(name string, spec any, state *State) (*control, error) {
	co := &control{
		name:  name,
		state: state,
	}

	switch spec := spec.(type) {
	case string:
		l, err := ins.resolve(spec)
		if err != nil {
			return nil, err
		}
		co.leaves = []*input.Leaf{l}

	case []string:
		if len(spec) == 0 {
			return nil, curated.Errorf(EmptySource)
		}
		for _, s := range spec {
			l, err := ins.resolve(s)
			if err != nil {
				return nil, err
			}
			co.leaves = append(co.leaves, l)
		}

	case Predicate:
		co.predicate = spec

	case func() (bool, float32, float32):
		co.predicate = spec

	case func() bool:
		co.predicate = func() (bool, float32, float32) {
			return spec(), 0, 0
		}

	default:
		return nil, curated.Errorf(UnrecognisedSpec, spec)
	}

	return co, nil
}

// resolve returns the leaf for a source string, bound to the instance's
// current device for the device scoped categories.
func (ins *Instance) resolve(s string) (*input.Leaf, error) {
	cat, source, err := parseSource(s)
	if err != nil {
		return nil, err
	}

	device := input.KeyboardDevice
	if deviceScoped(cat) {
		device = ins.device
	}

	return ins.inp.Leaf(cat, source, device), nil
}
