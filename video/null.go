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

package video

import (
	"github.com/Swizzy/RetroArch/driver"
)

// Null is the video driver of last resort. Frames are accepted and
// discarded. Useful for headless operation and for benchmarking a core
// without presentation overhead.
type Null struct{}

// ID implements the driver.Descriptor interface.
func (d Null) ID() string {
	return "null"
}

// Init implements the video.Driver interface.
func (d Null) Init(_ Config) (driver.Handle, error) {
	return &nullHandle{}, nil
}

type nullHandle struct{}

// Frame implements the video.Renderer interface.
func (h *nullHandle) Frame(_ []byte, _ int, _ int, _ int) error {
	return nil
}
