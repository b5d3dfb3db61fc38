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

package video_test

import (
	"testing"
	"time"

	"github.com/Swizzy/RetroArch/test"
	"github.com/Swizzy/RetroArch/video"
)

func TestFPSCounter(t *testing.T) {
	c := &video.FPSCounter{}
	start := time.Now()

	// the first frame samples the clock and never reports
	_, ok := c.Tick(start)
	test.ExpectedFailure(t, ok)

	// frames 2 to 180, still within the sample period
	for i := 2; i <= 180; i++ {
		_, ok = c.Tick(start)
		test.ExpectedFailure(t, ok)
	}

	// 180 frames over exactly 3 seconds is 60fps
	fps, ok := c.Tick(start.Add(3 * time.Second))
	test.ExpectedSuccess(t, ok)
	test.Equate(t, fps, float32(60.0))
}

func TestFPSCounterSecondSample(t *testing.T) {
	c := &video.FPSCounter{}
	start := time.Now()

	c.Tick(start)
	for i := 2; i <= 180; i++ {
		c.Tick(start)
	}

	// first sample
	fps, ok := c.Tick(start.Add(3 * time.Second))
	test.ExpectedSuccess(t, ok)
	test.Equate(t, fps, float32(60.0))

	// the clock is resampled. the next period is measured from the first
	// report, not from the very first frame
	for i := 2; i <= 180; i++ {
		c.Tick(start.Add(3 * time.Second))
	}
	fps, ok = c.Tick(start.Add(6 * time.Second))
	test.ExpectedSuccess(t, ok)
	test.Equate(t, fps, float32(60.0))
}
