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

// NullPreview discards every frame while honouring the buffer release
// contract of the Preview interface: a handle is released on the Show()
// call that supersedes it, never on its own Show(). It is used when running
// headless and in tests that exercise producer-side buffer recycling.
type NullPreview struct {
	done    DoneCallback
	pending int
}

// NewNullPreview is the preferred method of initialisation for the
// NullPreview type.
func NewNullPreview() *NullPreview {
	return &NullPreview{
		pending: NoHandle,
	}
}

// SetDoneCallback implements the Preview interface.
func (p *NullPreview) SetDoneCallback(done DoneCallback) {
	p.done = done
}

// Show implements the Preview interface. The frame data is not touched.
func (p *NullPreview) Show(handle int, _ []byte, _ StreamInfo) error {
	if p.pending != NoHandle && p.done != nil {
		p.done(p.pending)
	}
	p.pending = handle
	return nil
}

// SetOverlay implements the Preview interface. There is nothing to
// composite over.
func (p *NullPreview) SetOverlay(_ []byte, _ int, _ int) error {
	return nil
}

// Reset implements the Preview interface.
func (p *NullPreview) Reset() {
	p.pending = NoHandle
}

// SetInfoText implements the Preview interface.
func (p *NullPreview) SetInfoText(_ string) {
}

// MaxImageSize implements the Preview interface. Zero values indicate that
// there is no limit.
func (p *NullPreview) MaxImageSize() (int, int) {
	return 0, 0
}

// Quit implements the Preview interface. There is no window to close.
func (p *NullPreview) Quit() bool {
	return false
}

// Destroy implements the Preview interface. The pending handle, if any, is
// not released; the producer reclaims it on shutdown.
func (p *NullPreview) Destroy() error {
	p.pending = NoHandle
	return nil
}
