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

import "math"

// DesiredAspect is the aspect ratio of the emulated display.
const DesiredAspect = 4.0 / 3.0

// Viewport computes the viewport rectangle for a window of the given size.
// The returned values are in pixels, with the origin in the window's bottom
// left corner, ready for the driver's viewport call.
//
// With keepAspect a window wider than the desired aspect ratio is
// pillarboxed (horizontal extent narrowed and centred) and a narrower window
// is letterboxed (vertical extent narrowed and centred). Aspect ratios are
// compared at three decimal places; comparing at full float precision causes
// spurious boxing flips on resize.
func Viewport(width int, height int, keepAspect bool) (x int32, y int32, w int32, h int32) {
	if !keepAspect || width <= 0 || height <= 0 {
		return 0, 0, int32(width), int32(height)
	}

	deviceAspect := float64(width) / float64(height)

	device := int(deviceAspect * 1000)
	desired := int(math.Trunc(DesiredAspect * 1000))

	if device > desired {
		// window is wider than the desired aspect. pillarbox
		delta := (DesiredAspect/deviceAspect-1.0)/2.0 + 0.5
		x = int32(math.Round(float64(width) * (0.5 - delta)))
		w = int32(math.Round(2.0 * float64(width) * delta))
		return x, 0, w, int32(height)
	}

	if device < desired {
		// window is narrower than the desired aspect. letterbox
		delta := (deviceAspect/DesiredAspect-1.0)/2.0 + 0.5
		y = int32(math.Round(float64(height) * (0.5 - delta)))
		h = int32(math.Round(2.0 * float64(height) * delta))
		return 0, y, int32(width), h
	}

	return 0, 0, int32(width), int32(height)
}
