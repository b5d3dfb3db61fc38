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

// Descriptor is the static metadata describing a compiled-in driver,
// independent of any running instance. Concrete descriptor types live in the
// category packages and extend this interface with a creation function
// appropriate to the category.
type Descriptor interface {
	// ID returns the unique identifier of the driver. Identifiers are
	// matched case sensitively during resolution.
	ID() string
}

// Handle is the opaque per-instance state of a running driver, as returned
// by a descriptor's creation function. A Handle supports an operation by
// implementing the corresponding optional interface.
type Handle interface{}

// Starter is implemented by handles that support the start operation.
type Starter interface {
	Start() bool
}

// Stopper is implemented by handles that support the stop operation.
type Stopper interface {
	Stop()
}

// Poller is implemented by handles that support polling. The flags say which
// output formats the caller can accept; a driver simply does not service
// flags it does not support.
type Poller interface {
	Poll(flags PollFlags)
}

// Closer is implemented by handles that have resources to release. A handle
// without a Closer implementation is simply forgotten on free.
type Closer interface {
	Close()
}

// PollFlags indicate the output formats a caller can accept from a poll.
type PollFlags int

// List of valid PollFlags values. Flags are combined with bitwise or.
const (
	// the caller accepts raw framebuffer delivery
	PollRawFramebuffer PollFlags = 1 << iota

	// the caller accepts delivery by GPU texture handle
	PollOpenGLTexture
)
