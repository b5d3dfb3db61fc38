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

// Package driver is the core of the frontend's backend abstraction. Every
// capability category (camera, video, input, audio) is served by a Registry
// of named Descriptors, fixed at build time. A configured driver name is
// resolved against the registry; an unmatched name falls back to the first
// (highest priority) compiled-in driver with a logged warning. An empty
// registry is a fatal condition.
//
// A Descriptor creates a Handle, the opaque per-instance state of a running
// driver. Operations beyond creation are optional: a Handle advertises
// support by implementing the corresponding interface (Starter, Stopper,
// Poller, Closer). A handle not implementing an interface means the
// operation is unsupported and the Session treats it as a no-op, never as
// an error.
//
// The Session type owns the single active handle for a category and
// enforces the lifecycle rules: initialisation while a handle is live is a
// guarded no-op; freeing is idempotent; notification callbacks fire
// synchronously around the transitions.
//
// Nothing in this package is safe for concurrent use. Lifecycle operations
// are expected to be called from the one thread that owns the window/GPU
// context, serialized by the caller.
package driver
