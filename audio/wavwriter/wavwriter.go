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

// Package wavwriter is an audio driver writing samples to disk as a WAV
// file. Samples are buffered in memory in their entirety and encoded when
// the driver is freed, so it is only really suitable for captures of
// limited length.
package wavwriter

import (
	"os"

	"github.com/Swizzy/RetroArch/audio"
	"github.com/Swizzy/RetroArch/driver"
	"github.com/Swizzy/RetroArch/logger"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Driver is the descriptor for the wav audio driver.
type Driver struct{}

// ID implements the driver.Descriptor interface.
func (d Driver) ID() string {
	return "wav"
}

// Init implements the audio.Driver interface.
func (d Driver) Init(cfg audio.Config) (driver.Handle, error) {
	w := &wavWriter{
		path:   cfg.Path,
		rate:   cfg.SampleRate,
		buffer: make([]int, 0),
	}
	if w.path == "" {
		w.path = "retroarch.wav"
	}
	return w, nil
}

type wavWriter struct {
	path   string
	rate   int
	buffer []int
}

// Write implements the audio.Mixer interface.
func (w *wavWriter) Write(samples []int16) error {
	for _, s := range samples {
		w.buffer = append(w.buffer, int(s))
	}
	return nil
}

// Close implements the driver.Closer interface. The buffered samples are
// encoded and written to disk. Encoding errors are logged; there is nothing
// else useful to do with them at this point in the lifecycle.
func (w *wavWriter) Close() {
	f, err := os.Create(w.path)
	if err != nil {
		logger.Logf("wavwriter", "%v", err)
		return
	}
	defer f.Close()

	enc := wav.NewEncoder(f, w.rate, 16, 1, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  w.rate,
		},
		Data:           w.buffer,
		SourceBitDepth: 16,
	}

	logger.Logf("wavwriter", "writing audio to %s", w.path)

	if err := enc.Write(buf); err != nil {
		logger.Logf("wavwriter", "%v", err)
		return
	}
	if err := enc.Close(); err != nil {
		logger.Logf("wavwriter", "%v", err)
	}
}
