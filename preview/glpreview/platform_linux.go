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
	"runtime"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/video-system/go-video-preview/logger"
	"github.com/video-system/go-video-preview/preview"
)

// default window size when the options don't specify one.
const (
	defaultWindowWidth  = 1024
	defaultWindowHeight = 768
)

// platform implements the surface interface with an SDL window and a GLES2
// context.
type platform struct {
	window    *sdl.Window
	glContext sdl.GLContext

	vsync      bool
	maxTexture int
}

// newPlatform is the preferred method of initialisation for the platform
// type.
func newPlatform(opts *preview.Options) (*platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it
	// can't hurt and we never unlock it in any case
	runtime.LockOSThread()

	// the dmabuf import path needs an EGL context. on X11 SDL would give
	// us GLX by default
	sdl.SetHint("SDL_VIDEO_X11_FORCE_EGL", "1")

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_ES)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 0)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf("sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	x, y := int32(opts.X), int32(opts.Y)
	w, h := int32(opts.Width), int32(opts.Height)
	if w == 0 || h == 0 {
		w = defaultWindowWidth
		h = defaultWindowHeight
	}

	var flags uint32 = sdl.WINDOW_OPENGL | sdl.WINDOW_SHOWN

	// fall back to fullscreen when the requested window doesn't fit the
	// screen, as well as when it is asked for
	if opts.Fullscreen || x+w > mode.W || y+h > mode.H {
		x, y = 0, 0
		w, h = mode.W, mode.H
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP | sdl.WINDOW_BORDERLESS
	}

	plt := &platform{
		vsync: opts.VSync,
	}

	plt.window, err = sdl.CreateWindow(opts.Title, x, y, w, h, flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	// GLCreateContext leaves the context current on this thread. we use
	// that to load the GL functions and read the maximum texture size,
	// then undo the binding: the context belongs to whichever thread ends
	// up calling Show()
	err = gl.Init()
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("gl: %w", err)
	}

	var maxTexture int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxTexture)
	plt.maxTexture = int(maxTexture)
	logger.Logf("sdl", "maximum texture size: %d", plt.maxTexture)

	plt.releaseCurrent()

	return plt, nil
}

// makeCurrent implements the surface interface.
func (plt *platform) makeCurrent() error {
	err := plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	interval := 0
	if plt.vsync {
		interval = 1
	}
	err = sdl.GLSetSwapInterval(interval)
	if err != nil {
		logger.Logf("sdl", "GLSetSwapInterval(%d): %s", interval, err.Error())
	}

	return nil
}

// releaseCurrent implements the surface interface.
func (plt *platform) releaseCurrent() {
	var noContext sdl.GLContext
	_ = plt.window.GLMakeCurrent(noContext)
}

// swap implements the surface interface.
func (plt *platform) swap() error {
	sdl.ClearError()
	plt.window.GLSwap()
	if err := sdl.GetError(); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// pollQuit implements the surface interface.
func (plt *platform) pollQuit() bool {
	quit := false
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_CLOSE {
				quit = true
			}
		}
	}
	return quit
}

// setTitle implements the surface interface.
func (plt *platform) setTitle(text string) {
	plt.window.SetTitle(text)
}

// size implements the surface interface.
func (plt *platform) size() (int, int) {
	w, h := plt.window.GLGetDrawableSize()
	return int(w), int(h)
}

// maxTextureSize implements the surface interface.
func (plt *platform) maxTextureSize() int {
	return plt.maxTexture
}

// destroy implements the surface interface.
func (plt *platform) destroy() error {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}

	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			return fmt.Errorf("sdl: %w", err)
		}
		plt.window = nil
	}

	sdl.Quit()
	return nil
}
