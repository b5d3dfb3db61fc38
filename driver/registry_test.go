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

package driver_test

import (
	"strings"
	"testing"

	"github.com/Swizzy/RetroArch/curated"
	"github.com/Swizzy/RetroArch/driver"
	"github.com/Swizzy/RetroArch/logger"
	"github.com/Swizzy/RetroArch/test"
)

// stub descriptor for registry testing.
type desc string

func (d desc) ID() string {
	return string(d)
}

func TestFind(t *testing.T) {
	reg := driver.NewRegistry("camera", desc("a"), desc("b"), desc("c"))

	idx, ok := reg.Find("b")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, idx, 1)

	// matching is case sensitive
	_, ok = reg.Find("B")
	test.ExpectedFailure(t, ok)

	_, ok = reg.Find("z")
	test.ExpectedFailure(t, ok)
}

func TestResolve(t *testing.T) {
	reg := driver.NewRegistry("camera", desc("a"), desc("b"), desc("c"))

	// every name present in the registry resolves to its exact index
	for i, n := range []string{"a", "b", "c"} {
		idx, err := reg.Resolve(n)
		test.ExpectedSuccess(t, err)
		test.Equate(t, idx, i)
	}
}

func TestResolveFallback(t *testing.T) {
	logger.Clear()

	reg := driver.NewRegistry("camera", desc("a"), desc("b"), desc("c"))

	// an absent name falls back to index 0
	idx, err := reg.Resolve("z")
	test.ExpectedSuccess(t, err)
	test.Equate(t, idx, 0)

	// every available identifier appears in the diagnostic log
	s := &strings.Builder{}
	logger.Write(s)
	if !strings.Contains(s.String(), "a|b|c") {
		t.Errorf("diagnostic log does not enumerate the available drivers")
	}
}

func TestResolveUnconfigured(t *testing.T) {
	logger.Clear()

	reg := driver.NewRegistry("camera", desc("a"), desc("b"))

	// the empty name means no driver was configured. the default is chosen
	// without any diagnostic noise
	idx, err := reg.Resolve("")
	test.ExpectedSuccess(t, err)
	test.Equate(t, idx, 0)

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "")
}

func TestResolveEmpty(t *testing.T) {
	reg := driver.NewRegistry("camera")

	// an empty registry is fatal. there is no degraded mode
	_, err := reg.Resolve("a")
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, driver.NoDriversCompiled))
}

func TestList(t *testing.T) {
	test.Equate(t, driver.NewRegistry("x", desc("a"), desc("b"), desc("c")).List(), "a|b|c")
	test.Equate(t, driver.NewRegistry("x", desc("a")).List(), "a")
	test.Equate(t, driver.NewRegistry("x").List(), "")
}
