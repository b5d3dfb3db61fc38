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

// Package version records the application name and release number.
package version

// The name to use when referring to the application.
const ApplicationName = "RetroArch-Go"

// set through the linker at build time. an empty string means the project
// was not built through the makefile
var version string

// Version returns the version string and whether this is a numbered
// release version.
func Version() (string, bool) {
	if version == "" {
		return "unreleased", false
	}
	return version, true
}
