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

package main

// the test tone that accompanies the camera test pattern in RUN mode when
// no core is loaded.
const (
	toneFrequency   = 1000
	toneAmplitude   = 8000
	framesPerSecond = 60
)

type testTone struct {
	sampleRate int
	phase      int
	buf        []int16
}

func newTestTone(sampleRate int) *testTone {
	return &testTone{
		sampleRate: sampleRate,
		buf:        make([]int16, sampleRate/framesPerSecond),
	}
}

// frame returns one video frame's worth of square wave samples. The
// returned slice is reused on the next call.
func (t *testTone) frame() []int16 {
	half := t.sampleRate / (2 * toneFrequency)
	for i := range t.buf {
		if (t.phase/half)%2 == 0 {
			t.buf[i] = toneAmplitude
		} else {
			t.buf[i] = -toneAmplitude
		}
		t.phase++
	}
	return t.buf
}
