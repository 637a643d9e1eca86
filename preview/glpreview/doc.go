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

// Package glpreview implements the preview.Preview interface with an SDL
// window and a GLES2 rendering context. Frame buffers are dmabuf file
// descriptors and are imported into the GPU's address space as external
// textures via EGL_EXT_image_dma_buf_import. No pixel data is ever copied.
//
// Every frame is drawn in two passes: the video quad, letterboxed to the
// window while preserving the frame's aspect ratio, and then an optional
// RGBA overlay quad, alpha-blended over the video and stretched to the full
// window.
//
// The rendering context can only be bound to one thread and GPU state can
// only be built once the context is bound. New() therefore creates the
// window but leaves the GPU untouched; the first Show() after construction
// (or after Reset()) binds the context to the calling thread and builds the
// shader programs and the overlay texture. All methods must be called from
// that same thread.
//
// Buffer ownership follows the preview package contract: a shown buffer is
// reported back through the DoneCallback only when the swap for the frame
// that supersedes it has completed.
package glpreview
