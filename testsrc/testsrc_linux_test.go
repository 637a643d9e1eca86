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
	"testing"

	"github.com/video-system/go-video-preview/preview"
	"github.com/video-system/go-video-preview/test"
)

func TestSourceLending(t *testing.T) {
	info := preview.StreamInfo{Width: 64, Height: 32, Stride: 64}

	src, err := NewSource(info)
	test.ExpectSuccess(t, err)
	defer src.Close()

	// every buffer can be lent out once
	handles := make([]int, 0, numBuffers)
	for i := 0; i < numBuffers; i++ {
		h, data, err := src.Next()
		test.ExpectSuccess(t, err)
		test.ExpectInequality(t, h, preview.NoHandle)
		test.ExpectEquality(t, len(data), info.FrameSize())
		handles = append(handles, h)
	}

	// the pool is exhausted until a buffer comes back
	_, _, err = src.Next()
	test.ExpectFailure(t, err)

	src.Done(handles[0])
	h, _, err := src.Next()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h, handles[0])
}

func TestSourceDoneUnknownHandle(t *testing.T) {
	info := preview.StreamInfo{Width: 64, Height: 32, Stride: 64}

	src, err := NewSource(info)
	test.ExpectSuccess(t, err)
	defer src.Close()

	// ignored, not a panic
	src.Done(9999)
}
