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
	"strings"

	"github.com/jetsetilly/joybind/curated"
	"github.com/jetsetilly/joybind/input"
)

// Sentinel errors raised during control compilation.
const (
	UnknownCategory  = "controls: unknown source category: %s"
	BadAxisDirection = "controls: axis source missing +/- direction: %s"
	EmptySource      = "controls: empty source string"
)

// aliases expands convenience names to a full source string. Applied before
// any parsing of the source string.
var aliases = map[string]string{
	// the trigger axes are the only axes usable without an explicit
	// direction. they are unsigned so the positive direction is implied
	"triggerleft":  "axis:triggerleft+",
	"triggerright": "axis:triggerright+",
	"lt":           "axis:triggerleft+",
	"rt":           "axis:triggerright+",

	// shoulder buttons
	"lb": "button:leftshoulder",
	"rb": "button:rightshoulder",

	// wheel one-shots
	"wheelup":    "mouse:wheelup",
	"wheeldown":  "mouse:wheeldown",
	"wheelleft":  "mouse:wheelleft",
	"wheelright": "mouse:wheelright",
}

// sourceAliases expands convenience names for the source part of an already
// categorised string (eg. "axis:lt").
var sourceAliases = map[input.Category]map[string]string{
	input.AxisDirection: {
		"triggerleft":  "triggerleft+",
		"triggerright": "triggerright+",
		"lt":           "triggerleft+",
		"rt":           "triggerright+",
	},
	input.GamepadButton: {
		"lb": "leftshoulder",
		"rb": "rightshoulder",
	},
}

// parseSource resolves a source string to a leaf category and source key. A
// missing category prefix defaults to the key category.
func parseSource(s string) (input.Category, string, error) {
	if s == "" {
		return "", "", curated.Errorf(EmptySource)
	}

	if a, ok := aliases[s]; ok {
		s = a
	}

	var cat input.Category
	var source string

	if pre, rest, ok := strings.Cut(s, ":"); ok {
		cat = input.Category(pre)
		source = rest
	} else {
		cat = input.Key
		source = s
	}

	switch cat {
	case input.Key, input.Scancode, input.MouseButton, input.GamepadButton, input.AxisDirection:
	default:
		return "", "", curated.Errorf(UnknownCategory, string(cat))
	}

	if a, ok := sourceAliases[cat][source]; ok {
		source = a
	}

	if source == "" {
		return "", "", curated.Errorf(EmptySource)
	}

	// axis sources must name a direction. the hysteresis decoder maintains
	// a separate leaf for each end of the axis
	if cat == input.AxisDirection {
		if !strings.HasSuffix(source, input.PositiveDir) && !strings.HasSuffix(source, input.NegativeDir) {
			return "", "", curated.Errorf(BadAxisDirection, source)
		}
	}

	return cat, source, nil
}

// deviceScoped returns true if leaves of the category are resolved against a
// specific gamepad device.
func deviceScoped(cat input.Category) bool {
	return cat == input.GamepadButton || cat == input.AxisDirection
}
