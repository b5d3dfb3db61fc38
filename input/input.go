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

// Package input is the input capability category of the frontend. Binding
// tables map the abstract joypad layout to physical keys and joystick
// buttons; the Input session scans those tables against the active driver's
// sampled device state.
package input

import (
	"github.com/Swizzy/RetroArch/curated"
	"github.com/Swizzy/RetroArch/driver"
	"github.com/Swizzy/RetroArch/notifications"
)

// Driver is the descriptor interface implemented by input backends.
type Driver interface {
	driver.Descriptor
	Init() (driver.Handle, error)
}

// Sampler is the low level state query surface implemented by input driver
// handles. The handle owns its joystick enumeration: at most MaxJoysticks
// devices, at most MaxButtons buttons each, enumerated once and cached for
// the life of the handle. Hot-plug is not supported.
type Sampler interface {
	// KeyDown returns true if the key is currently held
	KeyDown(key Key) bool

	// Buttons returns the number of buttons on the joystick, or zero for a
	// joystick that was not enumerated
	Buttons(joystick int) int

	// ButtonDown returns true if the button on the joystick is currently
	// held. The button must be within the range reported by Buttons()
	ButtonDown(joystick int, button int) bool
}

// Quitter is implemented by input driver handles whose event pump can
// observe a quit request from the windowing system.
type Quitter interface {
	Quit() bool
}

// Input is the input subsystem of the frontend. It owns the single active
// input handle and the fast-forward state derived from it.
type Input struct {
	driver.Session

	reg    driver.Registry
	prf    *Preferences
	notify notifications.Notify

	// OnFastForward is fired when the fast-forward control changes state,
	// typically wired to the video session's SetNonBlock
	OnFastForward func(state bool)

	fastForward bool
}

// NewInput is the preferred method of initialisation for the Input type.
// The notify argument may be nil.
func NewInput(reg driver.Registry, prf *Preferences, notify notifications.Notify) *Input {
	return &Input{
		Session: driver.Session{Category: "input"},
		reg:     reg,
		prf:     prf,
		notify:  notify,
	}
}

// Initialise the configured input driver. A second call while a handle is
// live is a no-op.
func (inp *Input) Initialise() error {
	return inp.InitOnce(func() (driver.Handle, error) {
		idx, err := inp.reg.Resolve(inp.prf.Driver.Get().(string))
		if err != nil {
			return nil, curated.Errorf("input: %v", err)
		}
		d := inp.reg.Get(idx).(Driver)

		h, err := d.Init()
		if err != nil {
			return nil, curated.Errorf("input: %v", err)
		}
		return h, nil
	})
}

// Poll pumps the driver's event queue once. Called once per emulated frame,
// before any State() queries for that frame.
func (inp *Input) Poll() {
	inp.Session.Poll(0)
}

// State queries the current state of one logical control. binds holds one
// binding table per port; port selects both the table and the joystick the
// table's button mappings refer to.
//
// Only joypad queries are serviced; any other device category returns zero
// regardless of the binding tables. A control is pressed if its bound key
// is held or its bound joystick button is within the enumerated range and
// held. The first table entry matching id wins.
//
// As a side effect each call also scans the port's table for the
// FastForward control and updates the session's fast-forward state, firing
// OnFastForward on change. This mirrors how the control behaves: it is held
// rather than toggled, and it must track the pad even while the core is
// only asking about game buttons.
func (inp *Input) State(binds [][]Binding, port int, device Device, index int, id LogicalID) int16 {
	if device != DeviceJoypad {
		return 0
	}
	if port < 0 || port >= len(binds) {
		return 0
	}

	s, ok := inp.Handle().(Sampler)
	if !ok {
		return 0
	}

	table := binds[port]
	inp.scanFastForward(s, table, port)

	for _, b := range table {
		if b.ID == id {
			if inp.pressed(s, port, b) {
				return 1
			}
			return 0
		}
	}

	return 0
}

// Quit returns true if the driver's event pump has seen a quit request.
// Always false for drivers without a window connection.
func (inp *Input) Quit() bool {
	if h, ok := inp.Handle().(Quitter); ok {
		return h.Quit()
	}
	return false
}

// FastForward returns the current state of the fast-forward control.
func (inp *Input) FastForward() bool {
	return inp.fastForward
}

func (inp *Input) scanFastForward(s Sampler, table []Binding, port int) {
	for _, b := range table {
		if b.ID != FastForward {
			continue
		}

		state := inp.pressed(s, port, b)
		if state != inp.fastForward {
			inp.fastForward = state
			if inp.OnFastForward != nil {
				inp.OnFastForward(state)
			}
			if state && inp.notify != nil {
				inp.notify.Notify(notifications.NotifyFastForward)
			}
		}
		return
	}
}

func (inp *Input) pressed(s Sampler, port int, b Binding) bool {
	if b.Key != KeyNone && s.KeyDown(b.Key) {
		return true
	}
	if b.HasButton && b.Button < s.Buttons(port) && s.ButtonDown(port, b.Button) {
		return true
	}
	return false
}
