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

package camera

import (
	"github.com/Swizzy/RetroArch/driver"
)

// Pattern is a camera driver that synthesises an animated test pattern
// rather than capturing from a physical device. Useful for exercising a
// core's camera path on machines without a camera.
type Pattern struct{}

// ID implements the driver.Descriptor interface.
func (d Pattern) ID() string {
	return "pattern"
}

// default capture size when neither the user nor the consumer has asked for
// anything specific.
const (
	patternWidth  = 320
	patternHeight = 240
)

// Init implements the camera.Driver interface.
func (d Pattern) Init(setup Setup, consumer *Consumer) (driver.Handle, error) {
	h := &patternHandle{
		consumer: consumer,
		width:    setup.Width,
		height:   setup.Height,
	}
	if h.width <= 0 {
		h.width = patternWidth
	}
	if h.height <= 0 {
		h.height = patternHeight
	}
	h.buffer = make([]uint32, h.width*h.height)
	return h, nil
}

type patternHandle struct {
	consumer *Consumer
	width    int
	height   int
	buffer   []uint32
	running  bool

	// frame counter. drives the animation
	tick uint32
}

// Start implements the driver.Starter interface.
func (h *patternHandle) Start() bool {
	h.running = true
	return true
}

// Stop implements the driver.Stopper interface.
func (h *patternHandle) Stop() {
	h.running = false
}

// Poll implements the driver.Poller interface. Only raw framebuffer
// delivery is supported; the texture flag is not serviced.
func (h *patternHandle) Poll(flags driver.PollFlags) {
	if !h.running {
		return
	}

	if flags&driver.PollRawFramebuffer != driver.PollRawFramebuffer {
		return
	}

	h.tick++
	for y := 0; y < h.height; y++ {
		for x := 0; x < h.width; x++ {
			// a scrolling diagonal gradient in XRGB8888
			r := uint32(x+int(h.tick)) & 0xff
			g := uint32(y+int(h.tick)) & 0xff
			b := uint32(x^y) & 0xff
			h.buffer[y*h.width+x] = r<<16 | g<<8 | b
		}
	}

	h.consumer.RawFrame(h.buffer, h.width, h.height, h.width*4)
}
