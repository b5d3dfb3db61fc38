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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/Swizzy/RetroArch/modalflag"
	"github.com/Swizzy/RetroArch/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{})

	r, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(r), int(modalflag.ParseContinue))
	test.Equate(t, md.Mode(), "")
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"drivers"})
	md.AddSubModes("RUN", "DRIVERS", "VERSION")

	r, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(r), int(modalflag.ParseContinue))
	test.Equate(t, md.Mode(), "DRIVERS")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"some_rom_file"})
	md.AddSubModes("RUN", "DRIVERS", "VERSION")

	r, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(r), int(modalflag.ParseContinue))

	// unrecognised first argument selects the default mode and remains in
	// the argument list
	test.Equate(t, md.Mode(), "RUN")
	test.Equate(t, len(md.RemainingArgs()), 1)
	test.Equate(t, md.RemainingArgs()[0], "some_rom_file")
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"run", "-camera", "pattern"})
	md.AddSubModes("RUN", "DRIVERS")

	_, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "RUN")

	md.NewMode()
	cam := md.AddString("camera", "", "camera driver override")

	_, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, *cam, "pattern")
}

func TestHelp(t *testing.T) {
	output := &strings.Builder{}
	md := modalflag.Modes{Output: output}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("RUN", "DRIVERS")

	r, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(r), int(modalflag.ParseHelp))

	if !strings.Contains(output.String(), "available sub-modes: RUN, DRIVERS") {
		t.Errorf("help text does not list sub-modes")
	}
}
