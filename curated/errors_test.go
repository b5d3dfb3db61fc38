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

package curated_test

import (
	"errors"
	"testing"

	"github.com/Swizzy/RetroArch/curated"
	"github.com/Swizzy/RetroArch/test"
)

func TestMatching(t *testing.T) {
	e := curated.Errorf("camera driver: %v", "no capture device")

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, "camera driver: %v"))
	test.ExpectedFailure(t, curated.Is(e, "video driver: %v"))

	// a plain error is never curated
	p := errors.New("camera driver: no capture device")
	test.ExpectedFailure(t, curated.IsAny(p))
	test.ExpectedFailure(t, curated.Is(p, "camera driver: %v"))
}

func TestChains(t *testing.T) {
	e := curated.Errorf("no drivers compiled in")
	f := curated.Errorf("camera driver: %v", e)
	g := curated.Errorf("startup: %v", f)

	// Is() only matches the outermost pattern
	test.ExpectedSuccess(t, curated.Is(g, "startup: %v"))
	test.ExpectedFailure(t, curated.Is(g, "no drivers compiled in"))

	// Has() matches anywhere in the chain
	test.ExpectedSuccess(t, curated.Has(g, "startup: %v"))
	test.ExpectedSuccess(t, curated.Has(g, "camera driver: %v"))
	test.ExpectedSuccess(t, curated.Has(g, "no drivers compiled in"))
}

func TestNormalisation(t *testing.T) {
	// duplicate adjacent parts are removed from the message
	e := curated.Errorf("video driver: %v", curated.Errorf("video driver: %v", "no such window"))
	test.Equate(t, e.Error(), "video driver: no such window")
}
