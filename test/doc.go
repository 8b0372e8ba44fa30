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

// Package test contains helper functions to remove common boilerplate from
// the testing of Joybind packages.
//
// The Expect functions record a test error when the expectation is not met.
// The Demand functions are stricter versions that cause a test fatality,
// which is useful when subsequent test steps depend on the expectation
// holding.
//
// All functions accept optional tags which are printed alongside the test
// failure. Useful when the same expectation is tested in a loop.
package test
