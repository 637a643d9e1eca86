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

package preview

import "fmt"

// SetupError indicates that the display connection, window or rendering
// context could not be created. There is no recovery; the preview instance
// is unusable.
type SetupError struct {
	Err error
}

func (e SetupError) Error() string {
	return fmt.Sprintf("setup: %v", e.Err)
}

func (e SetupError) Unwrap() error {
	return e.Err
}

// ShaderCompileError indicates that a shader failed to compile. It is fatal
// for the preview instance. Diagnostic is the compiler log verbatim and
// Source is the text that was being compiled.
type ShaderCompileError struct {
	Stage      string
	Diagnostic string
	Source     string
}

func (e ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s\nsource:\n%s", e.Stage, e.Diagnostic, e.Source)
}

// ProgramLinkError indicates that a shader program failed to link. It is
// fatal for the preview instance. Diagnostic is empty when the driver
// provided no log.
type ProgramLinkError struct {
	Diagnostic string
}

func (e ProgramLinkError) Error() string {
	d := e.Diagnostic
	if d == "" {
		d = "<empty log>"
	}
	return fmt.Sprintf("failed to link: %s", d)
}

// ImportError indicates that a frame buffer could not be bound as a GPU
// image. The frame is dropped and nothing is registered for the handle. The
// handle is NOT released through the DoneCallback; the producer's own
// reclaim policy applies.
type ImportError struct {
	Handle int
	Err    error
}

func (e ImportError) Error() string {
	return fmt.Sprintf("failed to import buffer %d: %v", e.Handle, e.Err)
}

func (e ImportError) Unwrap() error {
	return e.Err
}

// SwapError indicates that presenting the composited frame to the display
// failed. There is no automatic reconnection.
type SwapError struct {
	Err error
}

func (e SwapError) Error() string {
	return fmt.Sprintf("buffer swap: %v", e.Err)
}

func (e SwapError) Unwrap() error {
	return e.Err
}
