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

package driver

import (
	"strings"

	"github.com/Swizzy/RetroArch/curated"
	"github.com/Swizzy/RetroArch/logger"
)

// Sentinal error returned by Resolve() when the registry holds no drivers at
// all. There is no sensible fallback in that situation and the frontend
// should treat the error as fatal.
const NoDriversCompiled = "%s drivers: no drivers compiled in"

// the delimiter used by the List() function.
const listSep = "|"

// Registry is an ordered collection of driver descriptors for one capability
// category. The order encodes priority: the first entry is the default when
// a requested driver cannot be found. The collection is fixed at
// construction and never mutated afterwards.
type Registry struct {
	category string
	entries  []Descriptor
}

// NewRegistry is the preferred method of initialisation for the Registry
// type. The category name is used for log entries and error messages.
func NewRegistry(category string, entries ...Descriptor) Registry {
	r := Registry{
		category: category,
		entries:  make([]Descriptor, len(entries)),
	}
	copy(r.entries, entries)
	return r
}

// Category returns the name of the capability category the registry serves.
func (r Registry) Category() string {
	return r.category
}

// Len returns the number of drivers in the registry.
func (r Registry) Len() int {
	return len(r.entries)
}

// Get returns the descriptor at the given index.
func (r Registry) Get(idx int) Descriptor {
	return r.entries[idx]
}

// Find returns the index of the driver with the given identifier. The second
// return value is false if no driver matches. Matching is case sensitive and
// the first match in registry order wins.
func (r Registry) Find(name string) (int, bool) {
	for i := range r.entries {
		if r.entries[i].ID() == name {
			return i, true
		}
	}
	return 0, false
}

// Resolve returns the index of the driver with the given identifier,
// defaulting to the first compiled-in driver if there is no match. The
// fallback is logged along with the list of available drivers, so that an
// operator can see whether the requested name is a typo or a driver that
// simply wasn't compiled in.
//
// An error is returned only when the registry is empty.
func (r Registry) Resolve(name string) (int, error) {
	if len(r.entries) == 0 {
		return 0, curated.Errorf(NoDriversCompiled, r.category)
	}

	// an empty name means nothing was configured. take the default quietly
	if name == "" {
		return 0, nil
	}

	if idx, ok := r.Find(name); ok {
		return idx, nil
	}

	logger.Logf(r.category, "couldn't find any %s driver named \"%s\"", r.category, name)
	logger.Logf(r.category, "available %s drivers are: %s", r.category, r.List())
	logger.Logf(r.category, "going to default to first %s driver (%s)", r.category, r.entries[0].ID())

	return 0, nil
}

// List returns the identifiers of all drivers in the registry, in registry
// order, joined with the "|" character. Used for help text and diagnostics.
func (r Registry) List() string {
	s := strings.Builder{}
	for i := range r.entries {
		if i > 0 {
			s.WriteString(listSep)
		}
		s.WriteString(r.entries[i].ID())
	}
	return s.String()
}
