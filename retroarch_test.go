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

import (
	"testing"

	"github.com/Swizzy/RetroArch/input"
	"github.com/Swizzy/RetroArch/test"
)

func TestDefaultBindings(t *testing.T) {
	binds := defaultBindings()
	test.Equate(t, len(binds), 2)

	// every pad control appears in the first port's table
	for id := input.JoypadB; id <= input.JoypadR; id++ {
		found := false
		for _, b := range binds[0] {
			if b.ID == id {
				found = true
				break
			}
		}
		test.ExpectedSuccess(t, found)
	}

	// the second port is button-only and has no fast-forward entry
	for _, b := range binds[1] {
		test.Equate(t, int(b.Key), int(input.KeyNone))
		test.ExpectedFailure(t, b.ID == input.FastForward)
	}
}

func TestConvertFrame(t *testing.T) {
	// two rows of two pixels with one padding word at the end of each row
	buffer := []uint32{
		0x112233, 0x445566, 0xdeadbe,
		0x778899, 0xaabbcc, 0xdeadbe,
	}

	pix := convertFrame(nil, buffer, 2, 2, 12)
	test.Equate(t, len(pix), 2*2*4)

	// the padding words must not leak into the converted frame
	expected := []byte{
		0x11, 0x22, 0x33, 0xff,
		0x44, 0x55, 0x66, 0xff,
		0x77, 0x88, 0x99, 0xff,
		0xaa, 0xbb, 0xcc, 0xff,
	}
	for i := range expected {
		test.Equate(t, int(pix[i]), int(expected[i]))
	}

	// a tightly packed frame converts whole
	tight := convertFrame(pix, []uint32{0xffffff, 0x000000}, 2, 1, 8)
	test.Equate(t, len(tight), 8)
	test.Equate(t, int(tight[0]), 0xff)
	test.Equate(t, int(tight[4]), 0x00)
	test.Equate(t, int(tight[7]), 0xff)
}

func TestTestTone(t *testing.T) {
	tone := newTestTone(48000)

	f := tone.frame()
	test.Equate(t, len(f), 48000/framesPerSecond)

	// a square wave spends equal time at each amplitude
	high := 0
	for i := 0; i < framesPerSecond; i++ {
		for _, s := range tone.frame() {
			if s == toneAmplitude {
				high++
			} else {
				test.Equate(t, int(s), -toneAmplitude)
			}
		}
	}
	test.Equate(t, high, 24000)
}
