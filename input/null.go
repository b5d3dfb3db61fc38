// This file is part of RetroArch-Go.
//
// RetroArch-Go is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RetroArch-Go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RetroArch-Go.  If not, see <https://www.gnu.org/licenses/>.

package input

import (
	"github.com/Swizzy/RetroArch/driver"
)

// Null is the input driver that reports no devices and no pressed
// controls.
type Null struct{}

// ID implements the driver.Descriptor interface.
func (d Null) ID() string {
	return "null"
}

// Init implements the Driver interface.
func (d Null) Init() (driver.Handle, error) {
	return &nullHandle{}, nil
}

type nullHandle struct{}

// KeyDown implements the Sampler interface.
func (n *nullHandle) KeyDown(_ Key) bool {
	return false
}

// Buttons implements the Sampler interface.
func (n *nullHandle) Buttons(_ int) int {
	return 0
}

// ButtonDown implements the Sampler interface.
func (n *nullHandle) ButtonDown(_ int, _ int) bool {
	return false
}
