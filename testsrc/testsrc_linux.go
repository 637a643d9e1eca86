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

package testsrc

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/video-system/go-video-preview/logger"
	"github.com/video-system/go-video-preview/preview"
)

// how many buffers the source rotates through. a real camera pipeline
// typically runs four to six
const numBuffers = 4

type buffer struct {
	fd   int
	data []byte
	busy bool
}

// Source produces test-pattern frames in memfd-backed buffers. The file
// descriptor of each buffer doubles as the frame handle, so frames can be
// fed straight into a Preview and released from its done callback.
//
// Source is not safe for concurrent use.
type Source struct {
	info    preview.StreamInfo
	buffers []*buffer

	// buffer fd -> buffer, for Done
	byFD map[int]*buffer

	frame int
}

// NewSource is the preferred method of initialisation for the Source type.
func NewSource(info preview.StreamInfo) (*Source, error) {
	src := &Source{
		info: info,
		byFD: make(map[int]*buffer),
	}

	size := info.FrameSize()

	for i := 0; i < numBuffers; i++ {
		fd, err := unix.MemfdCreate(fmt.Sprintf("testsrc-%d", i), unix.MFD_CLOEXEC)
		if err != nil {
			_ = src.Close()
			return nil, fmt.Errorf("testsrc: memfd_create: %w", err)
		}

		if err := unix.Ftruncate(fd, int64(size)); err != nil {
			_ = unix.Close(fd)
			_ = src.Close()
			return nil, fmt.Errorf("testsrc: ftruncate: %w", err)
		}

		data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
		if err != nil {
			_ = unix.Close(fd)
			_ = src.Close()
			return nil, fmt.Errorf("testsrc: mmap: %w", err)
		}

		b := &buffer{fd: fd, data: data}
		src.buffers = append(src.buffers, b)
		src.byFD[fd] = b
	}

	logger.Logf("testsrc", "%d buffers of %d bytes (%dx%d)", numBuffers, size, info.Width, info.Height)

	return src, nil
}

// Info returns the stream geometry shared by every frame.
func (src *Source) Info() preview.StreamInfo {
	return src.info
}

// Next fills a free buffer with the next frame of the pattern and lends it
// out. The returned handle is the buffer's file descriptor; it stays owned
// by the Source and must be returned through Done. An error means every
// buffer is still lent out.
func (src *Source) Next() (int, []byte, error) {
	for _, b := range src.buffers {
		if b.busy {
			continue
		}

		fillPattern(b.data, src.info, src.frame)
		src.frame++
		b.busy = true

		return b.fd, b.data, nil
	}

	return preview.NoHandle, nil, fmt.Errorf("testsrc: no free buffers")
}

// Done returns a lent buffer to the pool. It has the preview.DoneCallback
// signature. An unknown handle is logged and ignored.
func (src *Source) Done(handle int) {
	b, ok := src.byFD[handle]
	if !ok {
		logger.Logf("testsrc", "done for unknown handle %d", handle)
		return
	}
	b.busy = false
}

// Close unmaps and closes every buffer. Outstanding handles become invalid.
func (src *Source) Close() error {
	var firstErr error

	for _, b := range src.buffers {
		if err := unix.Munmap(b.data); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("testsrc: munmap: %w", err)
		}
		if err := unix.Close(b.fd); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("testsrc: close: %w", err)
		}
	}

	src.buffers = nil
	src.byFD = make(map[int]*buffer)

	return firstErr
}
