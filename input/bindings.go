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

package input

// Device is the category of input device a state query addresses. Drivers
// in this package service digital joypad queries only; queries for any
// other category return zero.
type Device int

// List of valid Device values.
const (
	DeviceNone Device = iota
	DeviceJoypad
	DeviceMouse
	DeviceKeyboard
	DeviceLightgun
)

// LogicalID identifies a control in the abstract joypad layout, independent
// of the physical key or button it is bound to.
type LogicalID int

// The abstract joypad layout. FastForward is a frontend control rather than
// a pad control; it shares the binding table so it can be mapped to either
// a key or a joystick button.
const (
	JoypadB LogicalID = iota
	JoypadY
	JoypadSelect
	JoypadStart
	JoypadUp
	JoypadDown
	JoypadLeft
	JoypadRight
	JoypadA
	JoypadX
	JoypadL
	JoypadR
	FastForward
)

// Key is a physical keyboard key in the scancode space of the active input
// driver. KeyNone means the binding has no keyboard mapping.
type Key int

// KeyNone is the zero Key.
const KeyNone Key = 0

// Binding maps one logical control to a physical key and/or joystick
// button. A table is an ordered slice of bindings; the first entry matching
// a queried LogicalID wins.
type Binding struct {
	ID LogicalID

	// the keyboard mapping. KeyNone when unmapped
	Key Key

	// the joystick button mapping. Button is only meaningful when HasButton
	// is true; button zero is a real button
	Button    int
	HasButton bool
}

// the maximum number of physical joysticks an input driver will enumerate.
const MaxJoysticks = 2

// the maximum number of buttons an input driver will report per joystick.
const MaxButtons = 128
