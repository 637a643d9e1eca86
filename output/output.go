// This file is part of go-video-preview.
//
// go-video-preview is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-video-preview is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-video-preview.  If not, see <https://www.gnu.org/licenses/>.

// Package output defines the push-style sink contract for encoded or raw
// video buffers. It is the counterpart to the preview path: where the
// preview borrows buffers by handle, an output receives the buffer bytes
// and is done with them when Push returns.
//
// Sinks register themselves by name so a frontend can select one from
// configuration without importing every implementation.
package output

import "fmt"

// Buffer flags passed alongside each Push.
const (
	// FlagKeyframe marks a buffer that can serve as a decode entry point.
	FlagKeyframe = 0x01

	// FlagRestart marks the first buffer after an output restart.
	FlagRestart = 0x02
)

// Output is the interface for sinks receiving a stream of video buffers.
//
// Push hands the sink one buffer. The sink must not retain buf after
// returning. A Push error means the buffer was not written; the caller
// decides whether to drop it or to stop the stream, it must not silently
// retry the same buffer.
type Output interface {
	Name() string
	Push(buf []byte, timestampUS int64, flags uint32) error
	Close() error
}

// factory creates a sink from a destination string. The meaning of the
// destination is sink-specific (a path, a FIFO, a URL).
type factory func(destination string) (Output, error)

var registry = make(map[string]factory)

// Register makes a sink constructor available under the given name. It is
// intended to be called from the implementing package's init().
func Register(name string, f factory) {
	registry[name] = f
}

// Open creates the named sink for the destination.
func Open(name string, destination string) (Output, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("output: unrecognised sink %q", name)
	}
	return f(destination)
}
