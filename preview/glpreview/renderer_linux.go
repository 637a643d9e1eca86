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
	"strings"

	gl "github.com/go-gl/gl/v3.1/gles2"
)

// the overlay quad in texture space. stretched to the window by the
// overlay vertex shader.
var overlayVerts = [8]float32{
	0.0, 0.0,
	1.0, 0.0,
	1.0, 1.0,
	0.0, 1.0,
}

// glRenderer implements the renderer interface with GLES2 calls. The GL
// functions are loaded by newPlatform(); every method assumes the context
// is current.
type glRenderer struct{}

func shaderTarget(stage string) uint32 {
	if stage == vertexStage {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}

// compileShader implements the renderer interface.
func (rnd *glRenderer) compileShader(stage string, source string) (uint32, string, bool) {
	id := gl.CreateShader(shaderTarget(stage))

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csource, nil)
	free()

	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)

		diagnostic := ""
		if logLength > 0 {
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
			diagnostic = strings.TrimRight(log, "\x00")
		}

		gl.DeleteShader(id)
		return 0, diagnostic, false
	}

	return id, "", true
}

// linkProgram implements the renderer interface.
func (rnd *glRenderer) linkProgram(vert uint32, frag uint32) (uint32, string, bool) {
	id := gl.CreateProgram()
	gl.AttachShader(id, vert)
	gl.AttachShader(id, frag)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)

		// some drivers return a length of 1 for an empty log. that's the
		// size of a log containing only a terminating NUL
		diagnostic := ""
		if logLength > 1 {
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
			diagnostic = strings.TrimRight(log, "\x00")
		}

		gl.DeleteProgram(id)
		return 0, diagnostic, false
	}

	return id, "", true
}

// deleteShader implements the renderer interface.
func (rnd *glRenderer) deleteShader(id uint32) {
	gl.DeleteShader(id)
}

// deleteProgram implements the renderer interface.
func (rnd *glRenderer) deleteProgram(id uint32) {
	gl.DeleteProgram(id)
}

// importFrame implements the renderer interface. The buffer is bound as an
// EGL image and attached to an externally-sampled texture; the transient
// EGL image is released before returning. No pixel data is copied at any
// point.
func (rnd *glRenderer) importFrame(img frameImage) (uint32, error) {
	image, err := createDmaBufImage(img)
	if err != nil {
		return 0, err
	}
	defer destroyImage(image)

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_EXTERNAL_OES, texture)
	gl.TexParameteri(gl.TEXTURE_EXTERNAL_OES, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_EXTERNAL_OES, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.EGLImageTargetTexture2DOES(gl.TEXTURE_EXTERNAL_OES, image.ptr())

	return texture, nil
}

// deleteTexture implements the renderer interface.
func (rnd *glRenderer) deleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

// createOverlayTexture implements the renderer interface. The texture has
// no content until the first update; it samples as black.
func (rnd *glRenderer) createOverlayTexture(width int, height int) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// updateOverlayTexture implements the renderer interface.
func (rnd *glRenderer) updateOverlayTexture(id uint32, pix []byte, width int, height int) {
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// clear implements the renderer interface.
func (rnd *glRenderer) clear() {
	gl.ClearColor(0.0, 0.0, 0.0, 0.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// drawFrame implements the renderer interface.
func (rnd *glRenderer) drawFrame(prog uint32, texture uint32, verts [8]float32) {
	gl.UseProgram(prog)

	pos := uint32(gl.GetAttribLocation(prog, gl.Str("pos"+"\x00")))
	gl.VertexAttribPointer(pos, 2, gl.FLOAT, false, 0, gl.Ptr(&verts[0]))
	gl.EnableVertexAttribArray(pos)

	gl.BindTexture(gl.TEXTURE_EXTERNAL_OES, texture)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
}

// drawOverlay implements the renderer interface. Straight alpha blending
// over the video pass.
func (rnd *glRenderer) drawOverlay(prog uint32, texture uint32) {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(prog)
	gl.Uniform1i(gl.GetUniformLocation(prog, gl.Str("overlay"+"\x00")), 0)

	pos := uint32(gl.GetAttribLocation(prog, gl.Str("aPosition"+"\x00")))
	gl.VertexAttribPointer(pos, 2, gl.FLOAT, false, 0, gl.Ptr(&overlayVerts[0]))
	gl.EnableVertexAttribArray(pos)

	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)

	gl.Disable(gl.BLEND)
}
