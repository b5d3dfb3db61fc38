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

package driver_test

import (
	"errors"
	"testing"

	"github.com/Swizzy/RetroArch/driver"
	"github.com/Swizzy/RetroArch/test"
)

// a handle implementing the full set of optional interfaces, counting calls.
type fullHandle struct {
	started int
	stopped int
	polled  int
	closed  int
}

func (h *fullHandle) Start() bool {
	h.started++
	return true
}

func (h *fullHandle) Stop() {
	h.stopped++
}

func (h *fullHandle) Poll(_ driver.PollFlags) {
	h.polled++
}

func (h *fullHandle) Close() {
	h.closed++
}

// a handle implementing none of the optional interfaces.
type bareHandle struct{}

func TestInitOnce(t *testing.T) {
	s := driver.Session{Category: "camera"}

	created := 0
	create := func() (driver.Handle, error) {
		created++
		return &fullHandle{}, nil
	}

	test.ExpectedSuccess(t, s.InitOnce(create))
	test.ExpectedSuccess(t, s.Active())

	h := s.Handle()

	// a second initialisation while the handle is live is a no-op. the
	// creation function must not run again and the handle is unchanged
	test.ExpectedSuccess(t, s.InitOnce(create))
	test.Equate(t, created, 1)
	if s.Handle() != h {
		t.Errorf("second InitOnce() replaced the live handle")
	}
}

func TestFreeIdempotent(t *testing.T) {
	s := driver.Session{Category: "camera"}

	h := &fullHandle{}
	s.InitOnce(func() (driver.Handle, error) { return h, nil })

	s.Free()
	test.ExpectedFailure(t, s.Active())
	test.Equate(t, h.closed, 1)

	// a second free must not reach the driver again
	s.Free()
	test.Equate(t, h.closed, 1)
}

func TestCallbacks(t *testing.T) {
	trace := ""

	h := &fullHandle{}
	s := driver.Session{
		Category:        "camera",
		OnInitialised:   func() { trace += "i" },
		OnDeinitialised: func() { trace += "d" },
	}

	s.InitOnce(func() (driver.Handle, error) { return h, nil })
	s.Free()
	test.Equate(t, trace, "id")

	// the deinitialisation callback fires before the handle is closed, and
	// not at all on an inactive session
	s.Free()
	test.Equate(t, trace, "id")
}

func TestUnsupportedOperations(t *testing.T) {
	s := driver.Session{Category: "camera"}
	s.InitOnce(func() (driver.Handle, error) { return &bareHandle{}, nil })

	// unsupported operations are silent no-ops, not errors
	test.ExpectedFailure(t, s.Start())
	s.Stop()
	s.Poll(driver.PollRawFramebuffer)

	// free clears the handle even though there is no Close() implementation
	s.Free()
	test.ExpectedFailure(t, s.Active())
}

func TestInactiveSession(t *testing.T) {
	s := driver.Session{Category: "camera"}

	// operations on a session that was never initialised
	test.ExpectedFailure(t, s.Start())
	s.Stop()
	s.Poll(driver.PollOpenGLTexture)
	s.Free()
}

func TestInitFailure(t *testing.T) {
	fired := false
	s := driver.Session{
		Category:      "camera",
		OnInitialised: func() { fired = true },
	}

	err := s.InitOnce(func() (driver.Handle, error) {
		return nil, errors.New("no capture device")
	})
	test.ExpectedFailure(t, err)

	// a failed initialisation leaves the session inactive and does not fire
	// the initialisation callback
	test.ExpectedFailure(t, s.Active())
	test.ExpectedFailure(t, fired)
}
