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

// Package preview defines the interface to a video-frame preview window.
//
// A producer submits frames with Show(). The frame buffer remains the
// property of the producer at all times; the preview only borrows it while
// the GPU is sampling from it. The borrow ends when the DoneCallback fires
// for the buffer's handle, which happens one successful Show() later - a
// swapped frame may still be on its way to the display, so the buffer just
// shown is never released immediately.
//
// Implementations of the Preview interface are not safe for concurrent use.
// All methods must be called from the thread that will perform the
// rendering. See the glpreview package for the reasoning.
package preview

// NoHandle is the value used to indicate the absence of a buffer handle.
// Valid handles are non-negative (they are dmabuf file descriptors on
// linux).
const NoHandle = -1

// ColourSpace is the colour encoding/range tag attached to a frame by the
// producer. The set is fixed by the capture stack and is consumed
// read-only.
type ColourSpace int

// List of valid ColourSpace values.
const (
	ColourSpaceUnset ColourSpace = iota
	ColourSpaceSmpte170m
	ColourSpaceSycc
	ColourSpaceRec709
)

func (c ColourSpace) String() string {
	switch c {
	case ColourSpaceUnset:
		return "unset"
	case ColourSpaceSmpte170m:
		return "SMPTE 170M"
	case ColourSpaceSycc:
		return "sYCC"
	case ColourSpaceRec709:
		return "Rec. 709"
	}
	return "unknown"
}

// StreamInfo describes the geometry and colour space of the frames in a
// stream. The pixel format is fixed: 3-plane YUV 4:2:0, the luma plane at
// full resolution and the two chroma planes at half width/height.
type StreamInfo struct {
	Width  int
	Height int

	// Stride is the length in bytes of one row of the luma plane. The
	// chroma planes have a pitch of Stride/2.
	Stride int

	ColourSpace ColourSpace
}

// FrameSize returns the number of bytes occupied by one frame of this
// geometry.
func (info StreamInfo) FrameSize() int {
	return info.Stride*info.Height + (info.Stride/2)*(info.Height/2)*2
}

// DoneCallback is called when a frame buffer is no longer in use by the
// preview and can be reused by the producer. It is called at most once per
// submitted handle.
type DoneCallback func(handle int)

// Preview is the interface to a preview window implementation.
type Preview interface {
	// SetDoneCallback registers the function through which frame buffers
	// are returned to the producer. It should be called before the first
	// Show().
	SetDoneCallback(done DoneCallback)

	// Show displays the frame in the buffer identified by handle. The data
	// slice covers the whole buffer and info describes its geometry.
	//
	// If Show returns an error the frame was not presented and the handle
	// will never be released by the preview; the producer reclaims it
	// directly.
	Show(handle int, data []byte, info StreamInfo) error

	// SetOverlay replaces the overlay image that is composited over every
	// subsequent frame. pix is tightly packed RGBA. A nil pix disables the
	// overlay.
	SetOverlay(pix []byte, width int, height int) error

	// Reset returns the preview to its initial state: all imported buffers
	// are forgotten (without release notifications) and the next Show()
	// repeats the one-time setup. The window itself survives a Reset.
	Reset()

	// SetInfoText updates the window title. An empty string is a no-op.
	SetInfoText(text string)

	// MaxImageSize returns the maximum frame dimensions the underlying GPU
	// can sample from. Zero values mean no limit.
	MaxImageSize() (int, int)

	// Quit reports whether the window manager has asked for the window to
	// close. It never blocks. The close request is consumed: Quit returns
	// true once per request.
	Quit() bool

	// Destroy releases the window and every resource owned by the preview.
	// Any pending buffer is NOT released through the DoneCallback; the
	// producer must reclaim it as part of its own shutdown.
	Destroy() error
}
