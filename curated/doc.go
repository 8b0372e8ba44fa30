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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like the Errorf()
// function in the fmt package it takes a formatting pattern and placeholder
// values, and returns an error. Unlike the fmt package however, the pattern
// is retained and can be tested for later.
//
// The Is() function checks whether an error was created by Errorf() with a
// specific pattern:
//
//	e := curated.Errorf("threshold out of range: %0.2f", t)
//
//	if curated.Is(e, "threshold out of range: %0.2f") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain. Errors are chained by using a curated error as
// a placeholder value in another call to Errorf().
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. We can think of the difference between curated and uncurated errors as
// the difference between 'expected' and 'unexpected' errors, depending on how
// we choose to handle the result of a function call.
//
// The Error() function implementation normalises the error chain, removing
// adjacent duplicate message parts.
package curated
