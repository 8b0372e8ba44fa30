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
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Visualise writes a graphviz/dot representation of the device state store
// to the io.Writer. A development aid, useful for inspecting which leaves
// have been created lazily over the lifetime of a session.
func (inp *Input) Visualise(output io.Writer) {
	memviz.Map(output, inp)
}
