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

import (
	"fmt"

	"github.com/video-system/go-video-preview/logger"
	"github.com/video-system/go-video-preview/preview"
)

// Preview is an on-screen implementation of the preview.Preview interface.
// See the package documentation for the threading and buffer-ownership
// rules.
type Preview struct {
	srf surface
	rnd renderer

	reg *registry
	ovl *overlay

	done preview.DoneCallback

	// the handle shown by the most recent Show(). released on the next
	// successful swap, never before
	pending int

	// ready is false until the one-time GPU setup has run on the thread
	// that calls Show(). Reset() returns it to false
	ready bool

	videoProg   uint32
	overlayProg uint32
	verts       [8]float32
}

// newPreview is used by New() and by the package tests. The surface must
// already own a window and an unbound rendering context.
func newPreview(srf surface, rnd renderer) *Preview {
	return &Preview{
		srf:     srf,
		rnd:     rnd,
		reg:     newRegistry(rnd),
		ovl:     newOverlay(rnd),
		pending: preview.NoHandle,
	}
}

// SetDoneCallback implements the preview.Preview interface.
func (p *Preview) SetDoneCallback(done preview.DoneCallback) {
	p.done = done
}

// setup runs the GPU initialisation that has to be delayed until we know
// we're on the thread doing the display: context binding, the two shader
// programs and the overlay texture. The video program is sized to the
// geometry of the first frame.
func (p *Preview) setup(info preview.StreamInfo) error {
	if err := p.srf.makeCurrent(); err != nil {
		return preview.SetupError{Err: err}
	}

	windowWidth, windowHeight := p.srf.size()
	wFactor, hFactor := letterbox(info.Width, info.Height, windowWidth, windowHeight)

	var err error
	p.videoProg, err = buildProgram(p.rnd, videoVertexSource(wFactor, hFactor), videoFragmentSource)
	if err != nil {
		return err
	}
	p.verts = videoVertices(wFactor, hFactor)

	p.overlayProg, err = buildProgram(p.rnd, overlayVertexSource, overlayFragmentSource)
	if err != nil {
		// the video program has already been built. without this a failed
		// setup would leak it, because Reset() only deletes programs once
		// ready is true
		p.rnd.deleteProgram(p.videoProg)
		p.videoProg = 0
		return err
	}

	p.ovl.setup(windowWidth/4, windowHeight/4)

	logger.Logf("glpreview", "display ready: %dx%d frames in a %dx%d window",
		info.Width, info.Height, windowWidth, windowHeight)

	p.ready = true
	return nil
}

// Show implements the preview.Preview interface.
func (p *Preview) Show(handle int, data []byte, info preview.StreamInfo) error {
	if !p.ready {
		if err := p.setup(info); err != nil {
			return fmt.Errorf("glpreview: %w", err)
		}
	}

	texture, err := p.reg.resolve(handle, len(data), info)
	if err != nil {
		return fmt.Errorf("glpreview: %w", err)
	}

	p.rnd.clear()
	p.rnd.drawFrame(p.videoProg, texture, p.verts)

	if p.ovl.present {
		p.rnd.drawOverlay(p.overlayProg, p.ovl.texture)
	}

	if err := p.srf.swap(); err != nil {
		return fmt.Errorf("glpreview: %w", preview.SwapError{Err: err})
	}

	// the previous frame is now off the display so its buffer can go back
	// to the producer. the frame just swapped in takes its place
	if p.pending != preview.NoHandle && p.done != nil {
		p.done(p.pending)
	}
	p.pending = handle

	return nil
}

// SetOverlay implements the preview.Preview interface. Before the first
// Show() the pixels are staged and uploaded during the one-time setup.
func (p *Preview) SetOverlay(pix []byte, width int, height int) error {
	if pix != nil && p.ready {
		// mutating the overlay texture requires the context
		if err := p.srf.makeCurrent(); err != nil {
			return fmt.Errorf("glpreview: %w", preview.SetupError{Err: err})
		}
	}

	p.ovl.set(pix, width, height)
	return nil
}

// Reset implements the preview.Preview interface. All imported buffers are
// forgotten without release notifications, the shader programs and overlay
// texture are deleted and the context is unbound so that the next Show()
// can re-run setup, possibly from a different thread.
func (p *Preview) Reset() {
	if p.ready {
		p.reg.clear()
		p.ovl.destroy()

		p.rnd.deleteProgram(p.videoProg)
		p.rnd.deleteProgram(p.overlayProg)
		p.videoProg = 0
		p.overlayProg = 0
	}

	p.pending = preview.NoHandle
	p.srf.releaseCurrent()
	p.ready = false
}

// Quit implements the preview.Preview interface.
func (p *Preview) Quit() bool {
	return p.srf.pollQuit()
}

// SetInfoText implements the preview.Preview interface.
func (p *Preview) SetInfoText(text string) {
	if text == "" {
		return
	}
	p.srf.setTitle(text)
}

// MaxImageSize implements the preview.Preview interface.
func (p *Preview) MaxImageSize() (int, int) {
	m := p.srf.maxTextureSize()
	return m, m
}

// Destroy implements the preview.Preview interface.
func (p *Preview) Destroy() error {
	p.Reset()
	return p.srf.destroy()
}
