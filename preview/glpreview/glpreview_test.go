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
	"errors"
	"testing"

	"github.com/video-system/go-video-preview/preview"
	"github.com/video-system/go-video-preview/test"
)

var testInfo = preview.StreamInfo{
	Width:  1920,
	Height: 1080,
	Stride: 1920,
}

func testPreview() (*Preview, *mockSurface, *mockRenderer) {
	srf := newMockSurface()
	rnd := newMockRenderer()
	return newPreview(srf, rnd), srf, rnd
}

func TestReleaseOneSwapLater(t *testing.T) {
	p, _, _ := testPreview()

	var released []int
	p.SetDoneCallback(func(handle int) {
		released = append(released, handle)
	})

	// the first frame's handle stays with the preview
	test.ExpectSuccess(t, p.Show(30, nil, testInfo))
	test.ExpectEquality(t, len(released), 0)

	// every handle is released exactly one Show later, in submission order
	test.ExpectSuccess(t, p.Show(31, nil, testInfo))
	test.ExpectSuccess(t, p.Show(32, nil, testInfo))
	test.ExpectSuccess(t, p.Show(33, nil, testInfo))
	test.ExpectEquality(t, len(released), 3)
	test.ExpectEquality(t, released[0], 30)
	test.ExpectEquality(t, released[1], 31)
	test.ExpectEquality(t, released[2], 32)

	// teardown never releases the most recent handle
	test.ExpectSuccess(t, p.Destroy())
	test.ExpectEquality(t, len(released), 3)
}

func TestResolveIsIdempotent(t *testing.T) {
	p, _, rnd := testPreview()

	test.ExpectSuccess(t, p.Show(30, nil, testInfo))
	test.ExpectSuccess(t, p.Show(31, nil, testInfo))
	test.ExpectEquality(t, len(rnd.imports), 2)

	// a resubmitted handle reuses the imported texture
	test.ExpectSuccess(t, p.Show(30, nil, testInfo))
	test.ExpectEquality(t, len(rnd.imports), 2)
}

func TestLazySetup(t *testing.T) {
	p, srf, rnd := testPreview()

	// construction touches neither the context nor the GPU
	test.ExpectEquality(t, srf.currentCount, 0)
	test.ExpectEquality(t, rnd.links, 0)

	// the first Show binds the context and builds both programs
	test.ExpectSuccess(t, p.Show(30, nil, testInfo))
	test.ExpectSuccess(t, srf.current)
	test.ExpectEquality(t, rnd.links, 2)

	// subsequent frames don't build again
	test.ExpectSuccess(t, p.Show(31, nil, testInfo))
	test.ExpectEquality(t, rnd.links, 2)

	// the transient shader handles were released after linking
	test.ExpectEquality(t, len(rnd.liveShaders), 0)
}

func TestOverlayPasses(t *testing.T) {
	p, _, rnd := testPreview()

	// no overlay: one clear, one video draw
	test.ExpectSuccess(t, p.Show(30, nil, testInfo))
	frames, overlays := rnd.draws()
	test.ExpectEquality(t, frames, 1)
	test.ExpectEquality(t, overlays, 0)

	// overlay set: both passes drawn
	pix := make([]byte, 64*32*4)
	test.ExpectSuccess(t, p.SetOverlay(pix, 64, 32))
	test.ExpectSuccess(t, p.Show(31, nil, testInfo))
	frames, overlays = rnd.draws()
	test.ExpectEquality(t, frames, 1)
	test.ExpectEquality(t, overlays, 1)

	// nil pixels suppress the pass immediately. the texture content is
	// left alone
	test.ExpectSuccess(t, p.SetOverlay(nil, 0, 0))
	test.ExpectSuccess(t, p.Show(32, nil, testInfo))
	frames, overlays = rnd.draws()
	test.ExpectEquality(t, frames, 1)
	test.ExpectEquality(t, overlays, 0)
	test.ExpectEquality(t, len(rnd.deletedTextures), 0)

	// and a new overlay, of a different size, re-enables it
	pix = make([]byte, 128*128*4)
	test.ExpectSuccess(t, p.SetOverlay(pix, 128, 128))
	test.ExpectSuccess(t, p.Show(33, nil, testInfo))
	frames, overlays = rnd.draws()
	test.ExpectEquality(t, frames, 1)
	test.ExpectEquality(t, overlays, 1)

	last := rnd.overlayUpdates[len(rnd.overlayUpdates)-1]
	test.ExpectEquality(t, last.width, 128)
	test.ExpectEquality(t, last.height, 128)
}

func TestOverlayBeforeFirstShow(t *testing.T) {
	p, _, rnd := testPreview()

	// no GPU yet: the pixels are staged
	pix := make([]byte, 16*16*4)
	test.ExpectSuccess(t, p.SetOverlay(pix, 16, 16))
	test.ExpectEquality(t, len(rnd.overlayUpdates), 0)

	// setup uploads them and the first frame already has the overlay
	test.ExpectSuccess(t, p.Show(30, nil, testInfo))
	test.ExpectEquality(t, len(rnd.overlayUpdates), 1)
	test.ExpectEquality(t, rnd.overlayUpdates[0].width, 16)

	_, overlays := rnd.draws()
	test.ExpectEquality(t, overlays, 1)
}

func TestOverlayDisabledWhileStaged(t *testing.T) {
	p, _, rnd := testPreview()

	// stage an overlay before the GPU exists, then disable it again. the
	// staged pixels must go too, or setup would resurrect the overlay
	pix := make([]byte, 16*16*4)
	test.ExpectSuccess(t, p.SetOverlay(pix, 16, 16))
	test.ExpectSuccess(t, p.SetOverlay(nil, 0, 0))

	test.ExpectSuccess(t, p.Show(30, nil, testInfo))
	test.ExpectEquality(t, len(rnd.overlayUpdates), 0)

	_, overlays := rnd.draws()
	test.ExpectEquality(t, overlays, 0)
}

func TestReset(t *testing.T) {
	p, srf, rnd := testPreview()

	var released []int
	p.SetDoneCallback(func(handle int) {
		released = append(released, handle)
	})

	test.ExpectSuccess(t, p.Show(30, nil, testInfo))
	test.ExpectSuccess(t, p.Show(31, nil, testInfo))
	test.ExpectEquality(t, rnd.links, 2)

	p.Reset()

	// every imported texture is gone and the context is unbound
	test.ExpectEquality(t, p.reg.len(), 0)
	test.ExpectEquality(t, len(rnd.deletedTextures) >= 2, true)
	test.ExpectEquality(t, srf.current, false)

	// the pending handle was forgotten, not released
	test.ExpectEquality(t, len(released), 1)

	// the next Show re-runs the one-time setup exactly once and
	// re-imports the frame
	imports := len(rnd.imports)
	test.ExpectSuccess(t, p.Show(30, nil, testInfo))
	test.ExpectEquality(t, rnd.links, 4)
	test.ExpectEquality(t, len(rnd.imports), imports+1)
	test.ExpectEquality(t, len(released), 1)

	test.ExpectSuccess(t, p.Show(31, nil, testInfo))
	test.ExpectEquality(t, rnd.links, 4)
}

func TestImportFailure(t *testing.T) {
	p, _, rnd := testPreview()

	var released []int
	p.SetDoneCallback(func(handle int) {
		released = append(released, handle)
	})

	errBind := errors.New("buffer cannot be bound")
	rnd.importErr = errBind

	err := p.Show(30, nil, testInfo)
	test.ExpectFailure(t, err)

	var imp preview.ImportError
	test.ExpectSuccess(t, errors.As(err, &imp))
	test.ExpectEquality(t, imp.Handle, 30)

	// the underlying cause survives the wrapping
	test.ExpectErrorIs(t, err, errBind)

	// nothing was registered and nothing was released
	test.ExpectEquality(t, p.reg.len(), 0)
	test.ExpectEquality(t, len(released), 0)

	// the failed handle never becomes pending: a later good frame does
	// not release it
	rnd.importErr = nil
	test.ExpectSuccess(t, p.Show(31, nil, testInfo))
	test.ExpectSuccess(t, p.Show(32, nil, testInfo))
	test.ExpectEquality(t, len(released), 1)
	test.ExpectEquality(t, released[0], 31)
}

func TestSwapFailure(t *testing.T) {
	p, srf, _ := testPreview()

	var released []int
	p.SetDoneCallback(func(handle int) {
		released = append(released, handle)
	})

	test.ExpectSuccess(t, p.Show(30, nil, testInfo))

	srf.swapErr = errors.New("surface lost")
	err := p.Show(31, nil, testInfo)
	test.ExpectFailure(t, err)

	var swap preview.SwapError
	test.ExpectSuccess(t, errors.As(err, &swap))

	// the failed frame was not presented: handle 30 is still pending and
	// 31 is considered never released
	test.ExpectEquality(t, len(released), 0)

	srf.swapErr = nil
	test.ExpectSuccess(t, p.Show(32, nil, testInfo))
	test.ExpectEquality(t, len(released), 1)
	test.ExpectEquality(t, released[0], 30)
}

func TestShaderFailureAbortsSetup(t *testing.T) {
	p, _, rnd := testPreview()

	rnd.compileFailStage = fragmentStage
	rnd.compileDiag = "0:3: 'samplerExternalOES' : syntax error"

	err := p.Show(30, nil, testInfo)
	test.ExpectFailure(t, err)

	var comp preview.ShaderCompileError
	test.ExpectSuccess(t, errors.As(err, &comp))
	test.ExpectEquality(t, comp.Stage, fragmentStage)
	test.ExpectEquality(t, comp.Diagnostic, "0:3: 'samplerExternalOES' : syntax error")
	test.ExpectEquality(t, p.ready, false)
}

func TestLinkFailureAbortsSetup(t *testing.T) {
	p, _, rnd := testPreview()

	rnd.linkFail = true

	err := p.Show(30, nil, testInfo)
	test.ExpectFailure(t, err)

	var link preview.ProgramLinkError
	test.ExpectSuccess(t, errors.As(err, &link))
	test.ExpectEquality(t, link.Error(), "failed to link: <empty log>")
	test.ExpectEquality(t, p.ready, false)
}

func TestOverlayLinkFailureFreesVideoProgram(t *testing.T) {
	p, _, rnd := testPreview()

	// the video program links but the overlay program does not. the video
	// program must not be leaked by the aborted setup
	rnd.linkFailAt = 2

	err := p.Show(30, nil, testInfo)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, len(rnd.deletedPrograms), 1)
	test.ExpectEquality(t, p.videoProg, 0)

	// a retried Show builds both programs afresh
	test.ExpectSuccess(t, p.Show(30, nil, testInfo))
	test.ExpectEquality(t, rnd.links, 3)
	test.ExpectEquality(t, p.ready, true)
}

func TestQuit(t *testing.T) {
	p, srf, _ := testPreview()

	// no close request: false without blocking
	test.ExpectFailure(t, p.Quit())

	// a close request is consumed by the poll that observes it
	srf.closeRequests = 1
	test.ExpectSuccess(t, p.Quit())
	test.ExpectFailure(t, p.Quit())
}

func TestSetInfoText(t *testing.T) {
	p, srf, _ := testPreview()

	p.SetInfoText("recording 00:01:30")
	test.ExpectEquality(t, srf.title, "recording 00:01:30")

	// empty text is a no-op
	p.SetInfoText("")
	test.ExpectEquality(t, srf.title, "recording 00:01:30")
}

func TestMaxImageSize(t *testing.T) {
	p, srf, _ := testPreview()
	srf.maxTex = 8192

	w, h := p.MaxImageSize()
	test.ExpectEquality(t, w, 8192)
	test.ExpectEquality(t, h, 8192)
}

func TestPreviewImplementsPreview(t *testing.T) {
	p, _, _ := testPreview()
	var _ preview.Preview = p
}
