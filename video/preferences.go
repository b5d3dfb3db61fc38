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
	"github.com/Swizzy/RetroArch/curated"
	"github.com/Swizzy/RetroArch/prefs"
	"github.com/Swizzy/RetroArch/resources"
)

// Preferences for the video subsystem.
type Preferences struct {
	dsk *prefs.Disk

	// the name of the video driver to use
	Driver prefs.String

	VSync      prefs.Bool
	Fullscreen prefs.Bool
	KeepAspect prefs.Bool
	Smooth     prefs.Bool

	// window dimensions. a zero value selects the built-in default
	Width  prefs.Int
	Height prefs.Int
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	// defaults, possibly overridden by the values on disk
	p.VSync.Set(true)
	p.KeepAspect.Set(true)
	p.Smooth.Set(true)

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("video: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("video: %v", err)
	}

	p.dsk.Add("video.driver", &p.Driver)
	p.dsk.Add("video.vsync", &p.VSync)
	p.dsk.Add("video.fullscreen", &p.Fullscreen)
	p.dsk.Add("video.keepaspect", &p.KeepAspect)
	p.dsk.Add("video.smooth", &p.Smooth)
	p.dsk.Add("video.width", &p.Width)
	p.dsk.Add("video.height", &p.Height)

	err = p.dsk.Load()
	if err != nil {
		return p, curated.Errorf("video: %v", err)
	}

	return p, nil
}

// Save current video preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
