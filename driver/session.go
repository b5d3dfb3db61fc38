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

package driver

import (
	"github.com/Swizzy/RetroArch/logger"
)

// Session owns the single active handle for one capability category. A
// category package embeds Session and supplies the category specific
// initialisation through InitOnce().
//
// Session is an explicitly owned value, not process-wide state. Independent
// sessions can coexist, which is how the driver layer is tested.
type Session struct {
	// the name of the category. used for log entries
	Category string

	// called synchronously after a successful initialisation and before the
	// handle is freed, if set
	OnInitialised   func()
	OnDeinitialised func()

	handle Handle
}

// Active returns true if the session has a live handle.
func (s *Session) Active() bool {
	return s.handle != nil
}

// Handle returns the live handle, or nil if the session is inactive.
func (s *Session) Handle() Handle {
	return s.handle
}

// InitOnce runs the supplied creation function and adopts the resulting
// handle. If a handle is already live the call is a no-op short-circuit;
// initialising twice would leak the underlying resource.
//
// On failure the session is left inactive. There is no retry and no
// automatic fallback to a different driver; the frontend continues without
// the capability.
func (s *Session) InitOnce(create func() (Handle, error)) error {
	if s.handle != nil {
		logger.Logf(s.Category, "already initialised. not initialising twice")
		return nil
	}

	h, err := create()
	if err != nil || h == nil {
		s.handle = nil
		logger.Logf(s.Category, "failed to initialise %s driver. will continue without %s", s.Category, s.Category)
		return err
	}
	s.handle = h

	if s.OnInitialised != nil {
		s.OnInitialised()
	}

	return nil
}

// Start the active handle. Returns false if the session is inactive or if
// the handle does not support starting. An unsupported start is not an
// error.
func (s *Session) Start() bool {
	if s.handle == nil {
		return false
	}
	if h, ok := s.handle.(Starter); ok {
		return h.Start()
	}
	return false
}

// Stop the active handle. A no-op if the session is inactive or the handle
// does not support stopping.
func (s *Session) Stop() {
	if s.handle == nil {
		return
	}
	if h, ok := s.handle.(Stopper); ok {
		h.Stop()
	}
}

// Poll the active handle, forwarding the caller's output-format flags. A
// no-op if the session is inactive or the handle does not support polling.
func (s *Session) Poll(flags PollFlags) {
	if s.handle == nil {
		return
	}
	if h, ok := s.handle.(Poller); ok {
		h.Poll(flags)
	}
}

// Free the active handle. The deinitialisation callback fires before the
// handle's Close() function is called. The handle is cleared even when it
// has no Close() function. Calling Free() on an inactive session is a no-op.
func (s *Session) Free() {
	if s.handle == nil {
		return
	}

	if s.OnDeinitialised != nil {
		s.OnDeinitialised()
	}

	if h, ok := s.handle.(Closer); ok {
		h.Close()
	}

	s.handle = nil
}
