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

package glpreview

// overlay is the RGBA image composited over the video pass. Its geometry is
// independent of both the frame and the window; the overlay quad is
// stretched over the whole window with no aspect-ratio correction.
//
// The texture only exists once the one-time GPU setup has run. Pixels
// received before that are staged and uploaded by setup(). Disabling the
// overlay does not clear the texture content, it only stops the draw pass.
type overlay struct {
	rnd renderer

	texture uint32
	width   int
	height  int
	present bool

	staged       []byte
	stagedWidth  int
	stagedHeight int
}

func newOverlay(rnd renderer) *overlay {
	return &overlay{rnd: rnd}
}

// setup allocates the overlay texture. The initial allocation is sized by
// the caller (a quarter of the window in each dimension); any staged pixels
// replace it immediately.
func (ovl *overlay) setup(width int, height int) {
	ovl.texture = ovl.rnd.createOverlayTexture(width, height)
	ovl.width = width
	ovl.height = height

	if ovl.staged != nil {
		ovl.rnd.updateOverlayTexture(ovl.texture, ovl.staged, ovl.stagedWidth, ovl.stagedHeight)
		ovl.width = ovl.stagedWidth
		ovl.height = ovl.stagedHeight
		ovl.staged = nil
		ovl.present = true
	}
}

// set replaces the overlay content and dimensions wholesale. A nil pix
// suppresses the overlay pass without touching the texture, and discards
// any pixels still staged for upload.
func (ovl *overlay) set(pix []byte, width int, height int) {
	if pix == nil {
		ovl.present = false
		ovl.staged = nil
		return
	}

	if ovl.texture == 0 {
		// one-time setup has not run yet. stage the pixels; setup() will
		// upload them
		ovl.staged = pix
		ovl.stagedWidth = width
		ovl.stagedHeight = height
		return
	}

	ovl.rnd.updateOverlayTexture(ovl.texture, pix, width, height)
	ovl.width = width
	ovl.height = height
	ovl.present = true
}

// destroy deletes the overlay texture. Staged pixels and the present flag
// are discarded; the overlay must be set again after the next setup.
func (ovl *overlay) destroy() {
	if ovl.texture != 0 {
		ovl.rnd.deleteTexture(ovl.texture)
		ovl.texture = 0
	}
	ovl.present = false
	ovl.staged = nil
}
