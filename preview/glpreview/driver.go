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

// the surface and renderer interfaces separate the frame path from the
// platform. the production implementations are the SDL window (platform)
// and the GLES2 renderer (glRenderer), both linux-only. package tests
// substitute recording implementations.

// surface is the display connection, window and rendering context.
type surface interface {
	// makeCurrent binds the rendering context to the calling thread. It is
	// safe to call when the context is already bound.
	makeCurrent() error

	// releaseCurrent unbinds the rendering context from the thread it is
	// bound to.
	releaseCurrent()

	// swap presents the contents of the back buffer. May block briefly on
	// the display's vertical refresh.
	swap() error

	// pollQuit drains pending window events and reports whether a close
	// request was among them. Never blocks.
	pollQuit() bool

	setTitle(text string)

	// size of the drawable area in pixels.
	size() (int, int)

	// maxTextureSize as reported by the GPU at window creation.
	maxTextureSize() int

	destroy() error
}

// shader stages as they appear in diagnostics.
const (
	vertexStage   = "vertex"
	fragmentStage = "fragment"
)

// renderer is the set of GPU operations used by the frame path. All calls
// require the surface's context to be current on the calling thread.
type renderer interface {
	// compileShader returns the shader handle. on failure ok is false and
	// diagnostic contains the compiler log verbatim (empty if the driver
	// provided none).
	compileShader(stage string, source string) (id uint32, diagnostic string, ok bool)

	// linkProgram returns the program handle. diagnostics as for
	// compileShader.
	linkProgram(vert uint32, frag uint32) (id uint32, diagnostic string, ok bool)

	deleteShader(id uint32)
	deleteProgram(id uint32)

	// importFrame binds the described buffer as an externally-sampled
	// texture without copying pixel data.
	importFrame(img frameImage) (uint32, error)

	deleteTexture(id uint32)

	// createOverlayTexture allocates an RGBA texture of the given size. The
	// content is undefined until updateOverlayTexture.
	createOverlayTexture(width int, height int) uint32

	// updateOverlayTexture replaces the texture's content and dimensions
	// with tightly packed RGBA pixels.
	updateOverlayTexture(id uint32, pix []byte, width int, height int)

	// clear the target framebuffer.
	clear()

	// drawFrame draws the letterboxed video quad sampling the external
	// texture.
	drawFrame(prog uint32, texture uint32, verts [8]float32)

	// drawOverlay draws the full-window overlay quad, alpha-blended over
	// whatever has been drawn before it.
	drawOverlay(prog uint32, texture uint32)
}
