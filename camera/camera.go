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

// Package camera is the camera capability category of the frontend. The
// Camera type wraps the generic driver session with the camera specific
// rules: an explicit user permission is required before the camera will
// start, and captured frames are delivered to a Consumer rather than to the
// frontend itself.
package camera

import (
	"github.com/Swizzy/RetroArch/curated"
	"github.com/Swizzy/RetroArch/driver"
	"github.com/Swizzy/RetroArch/logger"
	"github.com/Swizzy/RetroArch/notifications"
)

// Setup describes the capture session requested from a camera driver.
type Setup struct {
	// the capture device to open. an empty string means the driver default
	Device string

	// capability bits requested by the consumer. opaque to the frontend
	Caps uint64

	// requested capture dimensions
	Width  int
	Height int
}

// Driver is the descriptor interface implemented by camera backends. The
// returned handle advertises further operations through the optional
// interfaces in the driver package.
type Driver interface {
	driver.Descriptor
	Init(setup Setup, consumer *Consumer) (driver.Handle, error)
}

// Consumer is the downstream recipient of camera frames, typically the
// loaded core. Sink functions left at nil indicate the corresponding
// delivery format is not accepted.
type Consumer struct {
	// capability bits forwarded to the driver on initialisation
	Caps uint64

	// the consumer's preferred capture dimensions. used when the user has
	// not configured an explicit size
	Width  int
	Height int

	// fired synchronously around the camera lifecycle, if set
	OnInitialised   func()
	OnDeinitialised func()

	// frame delivery sinks. pitch is in bytes and may exceed width*4
	RawFrame     func(buffer []uint32, width int, height int, pitch int)
	TextureFrame func(textureID uint32)
}

// PollFlags returns the output-format flags implied by the consumer's sinks.
func (c *Consumer) PollFlags() driver.PollFlags {
	var flags driver.PollFlags
	if c.RawFrame != nil {
		flags |= driver.PollRawFramebuffer
	}
	if c.TextureFrame != nil {
		flags |= driver.PollOpenGLTexture
	}
	return flags
}

// Camera is the camera subsystem of the frontend. It owns the single active
// camera handle.
type Camera struct {
	driver.Session

	reg      driver.Registry
	prf      *Preferences
	notify   notifications.Notify
	consumer *Consumer
}

// NewCamera is the preferred method of initialisation for the Camera type.
// The notify argument may be nil.
func NewCamera(reg driver.Registry, prf *Preferences, notify notifications.Notify) *Camera {
	return &Camera{
		Session: driver.Session{Category: "camera"},
		reg:     reg,
		prf:     prf,
		notify:  notify,
	}
}

// Initialise the configured camera driver on behalf of the supplied
// consumer. A second call while a handle is live is a no-op; the session
// keeps the consumer and callbacks it was first initialised with.
//
// The capture size is taken from the user's preferences, falling back to the
// consumer's preferred size where the user has not configured one. A driver
// that fails to initialise leaves the camera inactive; the frontend
// continues without the capability.
func (c *Camera) Initialise(consumer *Consumer) error {
	return c.InitOnce(func() (driver.Handle, error) {
		c.consumer = consumer
		c.OnInitialised = func() {
			if c.notify != nil {
				c.notify.Notify(notifications.NotifyCameraInitialised)
			}
			if consumer.OnInitialised != nil {
				consumer.OnInitialised()
			}
		}
		c.OnDeinitialised = func() {
			if c.notify != nil {
				c.notify.Notify(notifications.NotifyCameraDeinitialised)
			}
			if consumer.OnDeinitialised != nil {
				consumer.OnDeinitialised()
			}
		}

		idx, err := c.reg.Resolve(c.prf.Driver.Get().(string))
		if err != nil {
			return nil, curated.Errorf("camera: %v", err)
		}
		d := c.reg.Get(idx).(Driver)

		setup := Setup{
			Device: c.prf.Device.Get().(string),
			Caps:   consumer.Caps,
			Width:  c.prf.Width.Get().(int),
			Height: c.prf.Height.Get().(int),
		}
		if setup.Width == 0 {
			setup.Width = consumer.Width
		}
		if setup.Height == 0 {
			setup.Height = consumer.Height
		}

		h, err := d.Init(setup, consumer)
		if err != nil {
			return nil, curated.Errorf("camera: %v", err)
		}
		return h, nil
	})
}

// Start the camera. Refused with a visible notice when the user has not
// explicitly allowed camera use, even if a valid handle is active.
func (c *Camera) Start() bool {
	if !c.Active() {
		return false
	}

	if !c.prf.Allow.Get().(bool) {
		logger.Log("camera", "camera is explicitly disabled. not starting")
		if c.notify != nil {
			c.notify.Notify(notifications.NotifyCameraDisallowed)
		}
		return false
	}

	return c.Session.Start()
}

// Poll the camera, requesting the delivery formats the consumer accepts.
func (c *Camera) Poll() {
	if c.consumer == nil {
		return
	}
	c.Session.Poll(c.consumer.PollFlags())
}
