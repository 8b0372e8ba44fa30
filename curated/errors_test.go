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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/joybind/curated"
	"github.com/jetsetilly/joybind/test"
)

const testPattern = "test: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, curated.IsAny(e), true)
	test.ExpectEquality(t, curated.Is(e, testPattern), true)
	test.ExpectEquality(t, curated.Is(e, "something else: %v"), false)

	// uncurated errors are never matched
	f := errors.New("plain")
	test.ExpectEquality(t, curated.IsAny(f), false)
	test.ExpectEquality(t, curated.Is(f, testPattern), false)

	// nil is not an error of any kind
	test.ExpectEquality(t, curated.IsAny(nil), false)
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf("wrapping: %v", e)

	test.ExpectEquality(t, curated.Has(f, testPattern), true)
	test.ExpectEquality(t, curated.Is(f, testPattern), false)
	test.ExpectEquality(t, curated.Has(f, "wrapping: %v"), true)
}

func TestDeduplication(t *testing.T) {
	// the leading part of the message chain is removed when it duplicates
	// the part that follows it
	e := curated.Errorf("input: %v", curated.Errorf("input: not a valid axis"))
	test.ExpectEquality(t, e.Error(), "input: not a valid axis")
}
