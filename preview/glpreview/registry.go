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
	"github.com/video-system/go-video-preview/preview"
)

// an imported buffer. the texture samples the producer's memory directly so
// the entry must be deleted before the producer repurposes the buffer.
type importedBuffer struct {
	texture uint32
	size    int
	info    preview.StreamInfo
}

// registry maps a buffer handle to its imported texture. A live handle is
// imported at most once; subsequent resolves return the cached texture.
type registry struct {
	rnd     renderer
	buffers map[int]importedBuffer
}

func newRegistry(rnd renderer) *registry {
	return &registry{
		rnd:     rnd,
		buffers: make(map[int]importedBuffer),
	}
}

// resolve returns the texture for the handle, importing the buffer on first
// sight. On failure nothing is registered and the returned error wraps the
// cause in a preview.ImportError.
func (reg *registry) resolve(handle int, size int, info preview.StreamInfo) (uint32, error) {
	if b, ok := reg.buffers[handle]; ok {
		return b.texture, nil
	}

	texture, err := reg.rnd.importFrame(newFrameImage(handle, size, info))
	if err != nil {
		return 0, preview.ImportError{Handle: handle, Err: err}
	}

	reg.buffers[handle] = importedBuffer{
		texture: texture,
		size:    size,
		info:    info,
	}

	return texture, nil
}

// clear deletes every imported texture and empties the registry. Must be
// called before the owning context is destroyed.
func (reg *registry) clear() {
	for _, b := range reg.buffers {
		reg.rnd.deleteTexture(b.texture)
	}
	reg.buffers = make(map[int]importedBuffer)
}

func (reg *registry) len() int {
	return len(reg.buffers)
}
