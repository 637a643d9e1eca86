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

// The EGL functions needed for the dmabuf import path. Neither SDL nor
// go-gl expose them, so this is the one place we talk to EGL directly. The
// extension entry points have to be resolved through eglGetProcAddress.

/*
#cgo pkg-config: egl

#include <EGL/egl.h>
#include <EGL/eglext.h>

static PFNEGLCREATEIMAGEKHRPROC create_image_khr;
static PFNEGLDESTROYIMAGEKHRPROC destroy_image_khr;

static int load_image_procs(void) {
	create_image_khr = (PFNEGLCREATEIMAGEKHRPROC)eglGetProcAddress("eglCreateImageKHR");
	destroy_image_khr = (PFNEGLDESTROYIMAGEKHRPROC)eglGetProcAddress("eglDestroyImageKHR");
	return create_image_khr != NULL && destroy_image_khr != NULL;
}

static EGLImageKHR create_dmabuf_image(EGLDisplay dpy, const EGLint *attribs) {
	return create_image_khr(dpy, EGL_NO_CONTEXT, EGL_LINUX_DMA_BUF_EXT, NULL, attribs);
}

static void destroy_image(EGLDisplay dpy, EGLImageKHR img) {
	destroy_image_khr(dpy, img);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

// fourcc code for 3-plane YUV 4:2:0 (DRM_FORMAT_YUV420, 'YU12').
const drmFormatYUV420 = 0x32315559

// eglImage is a transient handle to an imported buffer. It only lives for
// the duration of the texture attachment.
type eglImage struct {
	display C.EGLDisplay
	image   C.EGLImageKHR
}

func (img eglImage) ptr() unsafe.Pointer {
	return unsafe.Pointer(img.image)
}

// dmaBufAttribs translates the plane layout and colour hints of a
// frameImage into the attribute list for EGL_EXT_image_dma_buf_import.
func dmaBufAttribs(img frameImage) []C.EGLint {
	encoding := C.EGLint(C.EGL_ITU_REC601_EXT)
	if img.encoding == encodingBT709 {
		encoding = C.EGL_ITU_REC709_EXT
	}

	sampleRange := C.EGLint(C.EGL_YUV_NARROW_RANGE_EXT)
	if img.fullRange {
		sampleRange = C.EGL_YUV_FULL_RANGE_EXT
	}

	fd := C.EGLint(img.handle)

	return []C.EGLint{
		C.EGL_WIDTH, C.EGLint(img.width),
		C.EGL_HEIGHT, C.EGLint(img.height),
		C.EGL_LINUX_DRM_FOURCC_EXT, drmFormatYUV420,
		C.EGL_DMA_BUF_PLANE0_FD_EXT, fd,
		C.EGL_DMA_BUF_PLANE0_OFFSET_EXT, C.EGLint(img.planes[0].offset),
		C.EGL_DMA_BUF_PLANE0_PITCH_EXT, C.EGLint(img.planes[0].pitch),
		C.EGL_DMA_BUF_PLANE1_FD_EXT, fd,
		C.EGL_DMA_BUF_PLANE1_OFFSET_EXT, C.EGLint(img.planes[1].offset),
		C.EGL_DMA_BUF_PLANE1_PITCH_EXT, C.EGLint(img.planes[1].pitch),
		C.EGL_DMA_BUF_PLANE2_FD_EXT, fd,
		C.EGL_DMA_BUF_PLANE2_OFFSET_EXT, C.EGLint(img.planes[2].offset),
		C.EGL_DMA_BUF_PLANE2_PITCH_EXT, C.EGLint(img.planes[2].pitch),
		C.EGL_YUV_COLOR_SPACE_HINT_EXT, encoding,
		C.EGL_SAMPLE_RANGE_HINT_EXT, sampleRange,
		C.EGL_NONE,
	}
}

// createDmaBufImage binds the buffer described by img as an EGL image on
// the current display. The rendering context must be current on the
// calling thread.
func createDmaBufImage(img frameImage) (eglImage, error) {
	if C.load_image_procs() == 0 {
		return eglImage{}, errors.New("EGL_KHR_image extension functions not available")
	}

	display := C.eglGetCurrentDisplay()
	if display == C.EGLDisplay(nil) {
		return eglImage{}, errors.New("no current EGL display")
	}

	attribs := dmaBufAttribs(img)
	image := C.create_dmabuf_image(display, &attribs[0])
	if image == C.EGLImageKHR(nil) {
		return eglImage{}, fmt.Errorf("eglCreateImageKHR failed (0x%x)", uint32(C.eglGetError()))
	}

	return eglImage{display: display, image: image}, nil
}

// destroyImage releases the transient EGL image. The attached texture
// keeps its reference to the underlying buffer.
func destroyImage(img eglImage) {
	C.destroy_image(img.display, img.image)
}
