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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Swizzy/RetroArch/audio"
	"github.com/Swizzy/RetroArch/audio/wavwriter"
	"github.com/Swizzy/RetroArch/driver"
	"github.com/Swizzy/RetroArch/test"
	"github.com/go-audio/wav"
)

func TestEncodeOnClose(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "capture.wav")

	var d wavwriter.Driver
	h, err := d.Init(audio.Config{SampleRate: 22050, Path: pth})
	test.ExpectedSuccess(t, err)

	mix := h.(audio.Mixer)
	test.ExpectedSuccess(t, mix.Write([]int16{0, 100, -100, 32767}))
	test.ExpectedSuccess(t, mix.Write([]int16{-32768}))

	// nothing on disk until the driver is freed
	_, err = os.Stat(pth)
	test.ExpectedFailure(t, err)

	h.(driver.Closer).Close()

	f, err := os.Open(pth)
	test.ExpectedSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	test.ExpectedSuccess(t, err)

	test.Equate(t, int(dec.SampleRate), 22050)
	test.Equate(t, buf.Format.NumChannels, 1)
	test.Equate(t, len(buf.Data), 5)
	test.Equate(t, buf.Data[1], 100)
	test.Equate(t, buf.Data[2], -100)
	test.Equate(t, buf.Data[3], 32767)
	test.Equate(t, buf.Data[4], -32768)
}
