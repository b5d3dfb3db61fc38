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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which works like Errorf() in the fmt package except that
// the formatting pattern is retained for later comparison.
//
// The Is() function says whether an error was created by Errorf() with a
// specific pattern:
//
//	e := curated.Errorf("video driver: %v", err)
//
//	if curated.Is(e, "video driver: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks for the pattern anywhere in the
// error chain, not just the outermost error. The IsAny() function says
// whether the error is curated at all. Errors that are not curated can be
// thought of as unexpected errors.
//
// The Error() function for curated errors normalises the message chain,
// removing duplicate adjacent parts. This means curated errors can be wrapped
// freely at every level of a call chain without the final message stuttering.
package curated
