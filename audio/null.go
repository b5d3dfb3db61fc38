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

package audio

import (
	"github.com/Swizzy/RetroArch/driver"
)

// Null is the audio driver that discards all samples.
type Null struct{}

// ID implements the driver.Descriptor interface.
func (d Null) ID() string {
	return "null"
}

// Init implements the Driver interface.
func (d Null) Init(_ Config) (driver.Handle, error) {
	return &nullHandle{}, nil
}

type nullHandle struct{}

// Write implements the Mixer interface.
func (n *nullHandle) Write(_ []int16) error {
	return nil
}
