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

// Package notifications defines the events that change how the frontend
// presents itself to the user. A Notify implementation might show the notice
// on screen, or simply forward it to the log.
package notifications

// Notice describes events that somehow change the presentation of the
// frontend. These notifications can be used to present additional information
// to the user.
type Notice string

// List of defined notifications.
const (
	// a driver category has been initialised or freed
	NotifyCameraInitialised   Notice = "NotifyCameraInitialised"
	NotifyCameraDeinitialised Notice = "NotifyCameraDeinitialised"

	// the camera was asked to start but the user has not allowed camera use
	NotifyCameraDisallowed Notice = "NotifyCameraDisallowed"

	// fast-forward has been toggled through the input driver
	NotifyFastForward Notice = "NotifyFastForward"
)

// Notify is used for direct communication between the driver layer and the
// user-facing parts of the frontend. Notices are fired synchronously around
// lifecycle transitions.
type Notify interface {
	Notify(notice Notice) error
}
