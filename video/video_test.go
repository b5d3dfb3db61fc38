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

	"github.com/Swizzy/RetroArch/driver"
	"github.com/Swizzy/RetroArch/test"
	"github.com/Swizzy/RetroArch/video"
)

// a fake video driver recording configuration and rendered frames.
type fakeDriver struct {
	id     string
	cfg    video.Config
	handle *fakeHandle
}

func (d *fakeDriver) ID() string {
	return d.id
}

func (d *fakeDriver) Init(cfg video.Config) (driver.Handle, error) {
	d.cfg = cfg
	d.handle = &fakeHandle{}
	return d.handle, nil
}

type fakeHandle struct {
	frames   int
	pitch    int
	nonblock bool
}

func (h *fakeHandle) Frame(_ []byte, _ int, _ int, pitch int) error {
	h.frames++
	h.pitch = pitch
	return nil
}

func (h *fakeHandle) SetNonBlock(state bool) {
	h.nonblock = state
}

func TestFrameForwarding(t *testing.T) {
	d := &fakeDriver{id: "fake"}
	reg := driver.NewRegistry("video", d)

	prf := &video.Preferences{}
	prf.Driver.Set("fake")

	v := video.NewVideo(reg, prf)

	// frames before initialisation are dropped
	test.ExpectedFailure(t, v.Frame(nil, 320, 240, 320*4))

	test.ExpectedSuccess(t, v.Initialise())

	// the row pitch travels with the frame. here it is wider than the
	// visible width, to skip padding bytes
	pixels := make([]byte, 512*4*240)
	test.ExpectedSuccess(t, v.Frame(pixels, 320, 240, 512*4))
	test.Equate(t, d.handle.frames, 1)
	test.Equate(t, d.handle.pitch, 512*4)
}

func TestConfigDefaults(t *testing.T) {
	d := &fakeDriver{id: "fake"}
	reg := driver.NewRegistry("video", d)

	// an unconfigured Preferences value leaves width and height at zero.
	// initialisation substitutes the built-in defaults
	prf := &video.Preferences{}
	prf.Driver.Set("fake")

	v := video.NewVideo(reg, prf)
	test.ExpectedSuccess(t, v.Initialise())
	test.Equate(t, d.cfg.Width, 640)
	test.Equate(t, d.cfg.Height, 480)
}

func TestNonBlock(t *testing.T) {
	d := &fakeDriver{id: "fake"}
	reg := driver.NewRegistry("video", d)

	prf := &video.Preferences{}
	prf.Driver.Set("fake")

	v := video.NewVideo(reg, prf)

	// harmless before initialisation
	v.SetNonBlock(true)

	v.Initialise()
	v.SetNonBlock(true)
	test.ExpectedSuccess(t, d.handle.nonblock)
	v.SetNonBlock(false)
	test.ExpectedFailure(t, d.handle.nonblock)
}

func TestNullDriver(t *testing.T) {
	reg := driver.NewRegistry("video", video.Null{})

	prf := &video.Preferences{}
	prf.Driver.Set("null")

	v := video.NewVideo(reg, prf)
	test.ExpectedSuccess(t, v.Initialise())

	// the null driver accepts and discards frames
	test.ExpectedSuccess(t, v.Frame(make([]byte, 320*4*240), 320, 240, 320*4))

	v.Free()
	test.ExpectedFailure(t, v.Active())
}
