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

package camera

import (
	"github.com/Swizzy/RetroArch/curated"
	"github.com/Swizzy/RetroArch/prefs"
	"github.com/Swizzy/RetroArch/resources"
)

// Preferences for the camera subsystem.
type Preferences struct {
	dsk *prefs.Disk

	// the name of the camera driver to use
	Driver prefs.String

	// whether the user has allowed camera use. off by default
	Allow prefs.Bool

	// the capture device to open. empty means the driver default
	Device prefs.String

	// capture dimensions. a zero value defers to the consumer's preferred
	// size
	Width  prefs.Int
	Height prefs.Int
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("camera: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("camera: %v", err)
	}

	p.dsk.Add("camera.driver", &p.Driver)
	p.dsk.Add("camera.allow", &p.Allow)
	p.dsk.Add("camera.device", &p.Device)
	p.dsk.Add("camera.width", &p.Width)
	p.dsk.Add("camera.height", &p.Height)

	err = p.dsk.Load()
	if err != nil {
		return p, curated.Errorf("camera: %v", err)
	}

	return p, nil
}

// Save current camera preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
