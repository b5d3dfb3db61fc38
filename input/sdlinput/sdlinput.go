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

// Package sdlinput is an input driver sampling the keyboard and up to two
// joysticks through SDL. Polling pumps the SDL event queue, which also
// services the window owned by the video driver.
package sdlinput

import (
	"github.com/Swizzy/RetroArch/curated"
	"github.com/Swizzy/RetroArch/driver"
	"github.com/Swizzy/RetroArch/input"
	"github.com/Swizzy/RetroArch/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Driver is the descriptor for the sdl input driver.
type Driver struct{}

// ID implements the driver.Descriptor interface.
func (d Driver) ID() string {
	return "sdl"
}

// Init implements the input.Driver interface.
func (d Driver) Init() (driver.Handle, error) {
	if err := sdl.InitSubSystem(sdl.INIT_JOYSTICK); err != nil {
		return nil, curated.Errorf("sdlinput: %v", err)
	}
	return &sdlInput{}, nil
}

type sdlInput struct {
	// snapshot of the keyboard array, refreshed on every poll
	keys []uint8

	// joystick enumeration is performed once, on the first query that needs
	// it. hot-plug is not supported
	enumerated bool
	joysticks  []*sdl.Joystick
	numButtons []int

	quit bool
}

func (s *sdlInput) enumerate() {
	if s.enumerated {
		return
	}
	s.enumerated = true

	n := sdl.NumJoysticks()
	if n > input.MaxJoysticks {
		n = input.MaxJoysticks
	}

	for i := 0; i < n; i++ {
		j := sdl.JoystickOpen(i)
		if j == nil {
			logger.Logf("sdl input", "failed to open joystick %d", i)
			continue
		}

		b := j.NumButtons()
		if b > input.MaxButtons {
			b = input.MaxButtons
		}

		s.joysticks = append(s.joysticks, j)
		s.numButtons = append(s.numButtons, b)
		logger.Logf("sdl input", "joystick %d: %s (%d buttons)", i, sdl.JoystickNameForIndex(i), b)
	}
}

// Poll implements the driver.Poller interface. Output-format flags have no
// meaning for input drivers and are ignored.
func (s *sdlInput) Poll(_ driver.PollFlags) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev.(type) {
		case *sdl.QuitEvent:
			s.quit = true
		}
	}
	s.keys = sdl.GetKeyboardState()
}

// KeyDown implements the input.Sampler interface.
func (s *sdlInput) KeyDown(key input.Key) bool {
	return int(key) < len(s.keys) && s.keys[key] == 1
}

// Buttons implements the input.Sampler interface.
func (s *sdlInput) Buttons(joystick int) int {
	s.enumerate()
	if joystick < 0 || joystick >= len(s.numButtons) {
		return 0
	}
	return s.numButtons[joystick]
}

// ButtonDown implements the input.Sampler interface.
func (s *sdlInput) ButtonDown(joystick int, button int) bool {
	s.enumerate()
	if joystick < 0 || joystick >= len(s.joysticks) {
		return false
	}
	return s.joysticks[joystick].Button(button) == 1
}

// Quit implements the input.Quitter interface.
func (s *sdlInput) Quit() bool {
	return s.quit
}

// Close implements the driver.Closer interface.
func (s *sdlInput) Close() {
	for _, j := range s.joysticks {
		j.Close()
	}
	s.joysticks = nil
	sdl.QuitSubSystem(sdl.INIT_JOYSTICK)
}
