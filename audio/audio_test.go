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

package audio_test

import (
	"testing"

	"github.com/Swizzy/RetroArch/audio"
	"github.com/Swizzy/RetroArch/driver"
	"github.com/Swizzy/RetroArch/test"
)

type fakeDriver struct {
	cfg    audio.Config
	handle *fakeHandle
}

func (d *fakeDriver) ID() string {
	return "fake"
}

func (d *fakeDriver) Init(cfg audio.Config) (driver.Handle, error) {
	d.cfg = cfg
	d.handle = &fakeHandle{}
	return d.handle, nil
}

type fakeHandle struct {
	samples []int16
}

func (h *fakeHandle) Write(samples []int16) error {
	h.samples = append(h.samples, samples...)
	return nil
}

func TestSampleForwarding(t *testing.T) {
	d := &fakeDriver{}
	reg := driver.NewRegistry("audio", d)

	prf := &audio.Preferences{}
	prf.Driver.Set("fake")
	prf.Path.Set("")

	aud := audio.NewAudio(reg, prf)
	test.ExpectedSuccess(t, aud.Initialise(44100))
	test.Equate(t, d.cfg.SampleRate, 44100)

	test.ExpectedSuccess(t, aud.Write([]int16{1, 2, 3}))
	test.ExpectedSuccess(t, aud.Write([]int16{4}))
	test.Equate(t, len(d.handle.samples), 4)
}

func TestDefaultSampleRate(t *testing.T) {
	d := &fakeDriver{}
	reg := driver.NewRegistry("audio", d)

	prf := &audio.Preferences{}
	prf.Driver.Set("fake")
	prf.Path.Set("")

	aud := audio.NewAudio(reg, prf)
	test.ExpectedSuccess(t, aud.Initialise(0))
	test.Equate(t, d.cfg.SampleRate, audio.DefaultSampleRate)
}

func TestInactiveWrite(t *testing.T) {
	d := &fakeDriver{}
	reg := driver.NewRegistry("audio", d)

	prf := &audio.Preferences{}
	prf.Driver.Set("fake")
	prf.Path.Set("")

	// writing to an uninitialised session succeeds and goes nowhere
	aud := audio.NewAudio(reg, prf)
	test.ExpectedSuccess(t, aud.Write([]int16{1, 2, 3}))
	test.ExpectedFailure(t, aud.Active())
}

func TestNullDriver(t *testing.T) {
	reg := driver.NewRegistry("audio", audio.Null{})

	prf := &audio.Preferences{}
	prf.Driver.Set("null")
	prf.Path.Set("")

	aud := audio.NewAudio(reg, prf)
	test.ExpectedSuccess(t, aud.Initialise(0))
	test.ExpectedSuccess(t, aud.Write([]int16{1, 2, 3}))
	aud.Free()
	test.ExpectedFailure(t, aud.Active())
}
