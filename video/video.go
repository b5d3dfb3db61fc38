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

// Package video is the video capability category of the frontend. A video
// driver owns the window and the GPU context; the Video type wraps the
// generic driver session with the per-frame render path.
package video

import (
	"github.com/Swizzy/RetroArch/curated"
	"github.com/Swizzy/RetroArch/driver"
	"github.com/Swizzy/RetroArch/logger"
)

// default window dimensions when the user has not configured a size.
const (
	defaultWidth  = 640
	defaultHeight = 480
)

// Config describes the window and presentation options requested from a
// video driver.
type Config struct {
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool

	// letterbox/pillarbox the image to preserve the emulated display's
	// aspect ratio on resize
	KeepAspect bool

	// linear rather than nearest-neighbour texture filtering
	Smooth bool
}

// Driver is the descriptor interface implemented by video backends.
type Driver interface {
	driver.Descriptor
	Init(cfg Config) (driver.Handle, error)
}

// Renderer is implemented by video handles that support the render-frame
// operation. The pitch argument is the length of a pixel row in bytes and
// may exceed width*4 to skip padding; drivers must honour it rather than
// deriving row length from the width.
type Renderer interface {
	Frame(pixels []byte, width int, height int, pitch int) error
}

// NonBlocker is implemented by video handles that can present frames without
// waiting for vertical sync. Used to honour fast-forward.
type NonBlocker interface {
	SetNonBlock(state bool)
}

// Video is the video subsystem of the frontend. It owns the single active
// video handle.
type Video struct {
	driver.Session

	reg driver.Registry
	prf *Preferences
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(reg driver.Registry, prf *Preferences) *Video {
	return &Video{
		Session: driver.Session{Category: "video"},
		reg:     reg,
		prf:     prf,
	}
}

// Initialise the configured video driver. A second call while a handle is
// live is a no-op.
func (v *Video) Initialise() error {
	return v.InitOnce(func() (driver.Handle, error) {
		idx, err := v.reg.Resolve(v.prf.Driver.Get().(string))
		if err != nil {
			return nil, curated.Errorf("video: %v", err)
		}
		d := v.reg.Get(idx).(Driver)

		cfg := Config{
			Width:      v.prf.Width.Get().(int),
			Height:     v.prf.Height.Get().(int),
			Fullscreen: v.prf.Fullscreen.Get().(bool),
			VSync:      v.prf.VSync.Get().(bool),
			KeepAspect: v.prf.KeepAspect.Get().(bool),
			Smooth:     v.prf.Smooth.Get().(bool),
		}
		if cfg.Width == 0 {
			cfg.Width = defaultWidth
		}
		if cfg.Height == 0 {
			cfg.Height = defaultHeight
		}

		h, err := d.Init(cfg)
		if err != nil {
			return nil, curated.Errorf("video: %v", err)
		}
		return h, nil
	})
}

// Frame forwards a decoded frame to the active video driver. Returns false
// if the frame was not presented, either because the video subsystem is
// inactive, the driver doesn't render, or the driver failed.
func (v *Video) Frame(pixels []byte, width int, height int, pitch int) bool {
	if !v.Active() {
		return false
	}

	if r, ok := v.Handle().(Renderer); ok {
		if err := r.Frame(pixels, width, height, pitch); err != nil {
			logger.Logf("video", "%v", err)
			return false
		}
		return true
	}

	return false
}

// SetNonBlock asks the active video driver to present without waiting for
// vertical sync. A no-op for drivers without the capability.
func (v *Video) SetNonBlock(state bool) {
	if !v.Active() {
		return
	}
	if n, ok := v.Handle().(NonBlocker); ok {
		n.SetNonBlock(state)
	}
}
