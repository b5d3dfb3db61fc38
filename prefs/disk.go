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

// Package prefs facilitates the storage of preference values to disk. Prefs
// values are registered against a Disk instance with a unique key. Several
// subsystems can share one prefs file, each loading and saving only the keys
// it has registered.
package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Swizzy/RetroArch/curated"
	"github.com/Swizzy/RetroArch/logger"
)

// DefaultPrefsFile is the name of the prefs file shared by the frontend's
// subsystems.
const DefaultPrefsFile = "retroarch.prefs"

// WarningBoilerPlate is the first line in a prefs file. If the file does not
// start with this line then the file will not be treated as a prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates the key from the value in a prefs file entry.
const keySep = " :: "

// Disk represents preference values that are stored to disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file at the supplied path is not read or created until Load() or Save() is
// called.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a prefs value to the Disk instance, keyed by the supplied key. Keys
// must be unique within one Disk instance and must not contain the key
// separator sequence.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)

	if key == "" || strings.Contains(key, keySep) {
		return curated.Errorf("prefs: illegal key (%s)", key)
	}

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: duplicate key (%s)", key)
	}

	dsk.entries[key] = p

	return nil
}

// Load prefs values from disk. Keys in the file that have not been registered
// with this Disk instance are ignored; they may belong to another subsystem.
//
// A prefs file that does not exist yet is not an error. Registered values are
// simply left at their current settings.
func (dsk *Disk) Load() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check boiler plate
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return curated.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		s := strings.SplitN(scanner.Text(), keySep, 2)
		if len(s) != 2 {
			continue
		}

		if p, ok := dsk.entries[s[0]]; ok {
			if err := p.Set(s[1]); err != nil {
				logger.Logf("prefs", "error setting %s: %v", s[0], err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Save prefs values to disk. Keys in an existing file that have not been
// registered with this Disk instance are preserved.
func (dsk *Disk) Save() error {
	// read the existing file so that entries belonging to other subsystems
	// survive the save
	keep := make(map[string]string)

	if f, err := os.Open(dsk.path); err == nil {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			s := strings.SplitN(scanner.Text(), keySep, 2)
			if len(s) != 2 {
				continue
			}
			if _, ok := dsk.entries[s[0]]; !ok {
				keep[s[0]] = s[1]
			}
		}
		f.Close()
	}

	for k, p := range dsk.entries {
		keep[k] = p.String()
	}

	// stable ordering makes the file diffable
	keys := make([]string, 0, len(keep))
	for k := range keep {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	fmt.Fprintln(f, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(f, "%s%s%s\n", k, keySep, keep[k])
	}

	return nil
}
