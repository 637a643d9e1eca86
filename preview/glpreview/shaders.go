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

	"github.com/video-system/go-video-preview/preview"
)

// the video pass samples the imported frame through the external-image
// extension. texture coordinates are derived from the letterboxed vertex
// positions in the vertex shader.
const videoFragmentSource = `#extension GL_OES_EGL_image_external : enable
precision mediump float;
uniform samplerExternalOES s;
varying vec2 texcoord;
void main() {
  gl_FragColor = texture2D(s, texcoord);
}
`

// the overlay pass stretches a unit quad over the whole window.
const overlayVertexSource = `attribute vec2 aPosition;
varying vec2 texcoord;
void main() {
  gl_Position = vec4(aPosition * 2.0 - 1.0, 0.0, 1.0);
  texcoord.x = aPosition.x;
  texcoord.y = 1.0 - aPosition.y;
}
`

const overlayFragmentSource = `precision mediump float;
varying vec2 texcoord;
uniform sampler2D overlay;
void main() {
  gl_FragColor = texture2D(overlay, texcoord);
}
`

// letterbox returns the quad scale factors that fit a frame of the given
// size inside the window while preserving its aspect ratio. Both factors
// are in the range (0, 1]; at least one of them is exactly 1. The video is
// never cropped or distorted.
func letterbox(width int, height int, windowWidth int, windowHeight int) (float32, float32) {
	wFactor := float32(width) / float32(windowWidth)
	hFactor := float32(height) / float32(windowHeight)

	maxDimension := wFactor
	if hFactor > maxDimension {
		maxDimension = hFactor
	}

	return wFactor / maxDimension, hFactor / maxDimension
}

// videoVertexSource generates the vertex shader for the video pass. The
// letterbox factors are baked into the texture coordinate mapping so that
// the quad edges land exactly on the frame edges.
func videoVertexSource(wFactor float32, hFactor float32) string {
	return fmt.Sprintf(`attribute vec4 pos;
varying vec2 texcoord;
void main() {
  gl_Position = pos;
  texcoord.x = pos.x / %f + 0.5;
  texcoord.y = 0.5 - pos.y / %f;
}
`, 2.0*wFactor, 2.0*hFactor)
}

// videoVertices returns the triangle-fan corners of the letterboxed quad.
func videoVertices(wFactor float32, hFactor float32) [8]float32 {
	return [8]float32{
		-wFactor, -hFactor,
		wFactor, -hFactor,
		wFactor, hFactor,
		-wFactor, hFactor,
	}
}

// buildProgram compiles and links a vertex/fragment shader pair. The
// transient shader handles are released once the program has linked. Any
// failure is unrecoverable for the preview instance.
func buildProgram(rnd renderer, vertSource string, fragSource string) (uint32, error) {
	vert, diag, ok := rnd.compileShader(vertexStage, vertSource)
	if !ok {
		return 0, preview.ShaderCompileError{Stage: vertexStage, Diagnostic: diag, Source: vertSource}
	}

	frag, diag, ok := rnd.compileShader(fragmentStage, fragSource)
	if !ok {
		rnd.deleteShader(vert)
		return 0, preview.ShaderCompileError{Stage: fragmentStage, Diagnostic: diag, Source: fragSource}
	}

	prog, diag, ok := rnd.linkProgram(vert, frag)

	// the shaders are no longer needed once the program has linked (or
	// failed to)
	rnd.deleteShader(vert)
	rnd.deleteShader(frag)

	if !ok {
		return 0, preview.ProgramLinkError{Diagnostic: diag}
	}

	return prog, nil
}
