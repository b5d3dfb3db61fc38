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

import "time"

// number of rendered frames between samples of the FPS counter.
const fpsSampleRate = 180

// FPSCounter measures the presented frame rate from wall-clock timestamps.
// Video drivers call Tick() once per presented frame and show the measured
// rate, typically in the window title, whenever it reports.
type FPSCounter struct {
	frames int
	sample time.Time
}

// Tick registers a presented frame. Returns the measured frame rate and
// true once every sample period.
func (c *FPSCounter) Tick(now time.Time) (float32, bool) {
	if c.frames == 0 {
		c.sample = now
		c.frames++
		return 0, false
	}

	if c.frames%fpsSampleRate == 0 {
		elapsed := now.Sub(c.sample).Seconds()
		c.sample = now
		c.frames++

		if elapsed <= 0 {
			return 0, false
		}
		return float32(float64(fpsSampleRate) / elapsed), true
	}

	c.frames++
	return 0, false
}

// Frames returns the total number of frames registered with the counter.
func (c *FPSCounter) Frames() int {
	return c.frames
}
