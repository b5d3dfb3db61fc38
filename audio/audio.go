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

// Package audio is the audio capability category of the frontend. Drivers
// accept signed 16bit mono samples; what happens to them is the driver's
// business (the wav driver buffers and writes a file, the null driver
// discards).
package audio

import (
	"github.com/Swizzy/RetroArch/curated"
	"github.com/Swizzy/RetroArch/driver"
)

// the sample rate used when the frontend has not specified one.
const DefaultSampleRate = 48000

// Config describes the output session requested from an audio driver.
type Config struct {
	SampleRate int

	// destination for file-writing drivers. ignored by the others
	Path string
}

// Driver is the descriptor interface implemented by audio backends.
type Driver interface {
	driver.Descriptor
	Init(cfg Config) (driver.Handle, error)
}

// Mixer is implemented by audio driver handles. Write delivers a batch of
// samples; it may block depending on the driver.
type Mixer interface {
	Write(samples []int16) error
}

// Audio is the audio subsystem of the frontend. It owns the single active
// audio handle.
type Audio struct {
	driver.Session

	reg driver.Registry
	prf *Preferences
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(reg driver.Registry, prf *Preferences) *Audio {
	return &Audio{
		Session: driver.Session{Category: "audio"},
		reg:     reg,
		prf:     prf,
	}
}

// Initialise the configured audio driver. A sampleRate of zero selects
// DefaultSampleRate. A second call while a handle is live is a no-op.
func (a *Audio) Initialise(sampleRate int) error {
	return a.InitOnce(func() (driver.Handle, error) {
		idx, err := a.reg.Resolve(a.prf.Driver.Get().(string))
		if err != nil {
			return nil, curated.Errorf("audio: %v", err)
		}
		d := a.reg.Get(idx).(Driver)

		cfg := Config{
			SampleRate: sampleRate,
			Path:       a.prf.Path.Get().(string),
		}
		if cfg.SampleRate == 0 {
			cfg.SampleRate = DefaultSampleRate
		}

		h, err := d.Init(cfg)
		if err != nil {
			return nil, curated.Errorf("audio: %v", err)
		}
		return h, nil
	})
}

// Write a batch of samples to the active driver. A no-op returning nil when
// the session is inactive; the frontend runs without sound rather than
// failing.
func (a *Audio) Write(samples []int16) error {
	h, ok := a.Handle().(Mixer)
	if !ok {
		return nil
	}

	err := h.Write(samples)
	if err != nil {
		return curated.Errorf("audio: %v", err)
	}
	return nil
}
