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
	"github.com/Swizzy/RetroArch/curated"
	"github.com/Swizzy/RetroArch/prefs"
	"github.com/Swizzy/RetroArch/resources"
)

// Preferences for the input subsystem.
type Preferences struct {
	dsk *prefs.Disk

	// the name of the input driver to use
	Driver prefs.String
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("input: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("input: %v", err)
	}

	p.dsk.Add("input.driver", &p.Driver)

	err = p.dsk.Load()
	if err != nil {
		return p, curated.Errorf("input: %v", err)
	}

	return p, nil
}

// Save current input preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
