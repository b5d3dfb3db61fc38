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

// Package drivers assembles the driver registries compiled into this build.
// The order of each registry is fixed here and encodes priority: the first
// entry is the default when the user has not named a driver.
package drivers

import (
	"github.com/Swizzy/RetroArch/audio"
	"github.com/Swizzy/RetroArch/audio/wavwriter"
	"github.com/Swizzy/RetroArch/camera"
	"github.com/Swizzy/RetroArch/driver"
	"github.com/Swizzy/RetroArch/input"
	"github.com/Swizzy/RetroArch/input/sdlinput"
	"github.com/Swizzy/RetroArch/video"
	"github.com/Swizzy/RetroArch/video/glvideo"
)

// Camera returns the registry of compiled-in camera drivers.
func Camera() driver.Registry {
	return driver.NewRegistry("camera",
		camera.Pattern{},
		camera.Null{},
	)
}

// Video returns the registry of compiled-in video drivers.
func Video() driver.Registry {
	return driver.NewRegistry("video",
		glvideo.Driver{},
		video.Null{},
	)
}

// Input returns the registry of compiled-in input drivers.
func Input() driver.Registry {
	return driver.NewRegistry("input",
		sdlinput.Driver{},
		input.Null{},
	)
}

// Audio returns the registry of compiled-in audio drivers. The null driver
// is deliberately first; the wav driver writes to disk and must be asked
// for by name.
func Audio() driver.Registry {
	return driver.NewRegistry("audio",
		audio.Null{},
		wavwriter.Driver{},
	)
}
