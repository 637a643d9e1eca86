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
	"testing"

	"github.com/video-system/go-video-preview/preview"
	"github.com/video-system/go-video-preview/test"
)

func TestNewFrameImagePlaneLayout(t *testing.T) {
	info := preview.StreamInfo{
		Width:  1920,
		Height: 1080,
		Stride: 1920,
	}

	img := newFrameImage(30, info.FrameSize(), info)

	test.ExpectEquality(t, img.handle, 30)
	test.ExpectEquality(t, img.width, 1920)
	test.ExpectEquality(t, img.height, 1080)

	// luma plane at the start of the buffer
	test.ExpectEquality(t, img.planes[0].offset, 0)
	test.ExpectEquality(t, img.planes[0].pitch, 1920)

	// chroma planes follow, each at half the luma pitch
	test.ExpectEquality(t, img.planes[1].offset, 1920*1080)
	test.ExpectEquality(t, img.planes[1].pitch, 960)
	test.ExpectEquality(t, img.planes[2].offset, 1920*1080+960*540)
	test.ExpectEquality(t, img.planes[2].pitch, 960)

	// the three planes account for the whole frame
	test.ExpectEquality(t, img.planes[2].offset+960*540, info.FrameSize())
}

func TestNewFrameImagePaddedStride(t *testing.T) {
	// 1280 wide but padded out to a 1536 byte stride. the plane offsets
	// follow the stride, not the visible width
	info := preview.StreamInfo{
		Width:  1280,
		Height: 720,
		Stride: 1536,
	}

	img := newFrameImage(7, info.FrameSize(), info)

	test.ExpectEquality(t, img.planes[0].pitch, 1536)
	test.ExpectEquality(t, img.planes[1].offset, 1536*720)
	test.ExpectEquality(t, img.planes[1].pitch, 768)
	test.ExpectEquality(t, img.planes[2].offset, 1536*720+768*360)
}

func TestColourSpaceHints(t *testing.T) {
	enc, full := colourSpaceHints(preview.ColourSpaceUnset)
	test.ExpectEquality(t, enc, encodingBT601)
	test.ExpectEquality(t, full, false)

	enc, full = colourSpaceHints(preview.ColourSpaceSmpte170m)
	test.ExpectEquality(t, enc, encodingBT601)
	test.ExpectEquality(t, full, false)

	enc, full = colourSpaceHints(preview.ColourSpaceSycc)
	test.ExpectEquality(t, enc, encodingBT601)
	test.ExpectEquality(t, full, true)

	enc, full = colourSpaceHints(preview.ColourSpaceRec709)
	test.ExpectEquality(t, enc, encodingBT709)
	test.ExpectEquality(t, full, false)

	// an unknown tag falls back to the conservative choice
	enc, full = colourSpaceHints(preview.ColourSpace(99))
	test.ExpectEquality(t, enc, encodingBT601)
	test.ExpectEquality(t, full, false)
}

func TestRegistryResolve(t *testing.T) {
	rnd := newMockRenderer()
	reg := newRegistry(rnd)

	info := preview.StreamInfo{Width: 640, Height: 480, Stride: 640}

	tex, err := reg.resolve(30, info.FrameSize(), info)
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, tex, 0)
	test.ExpectEquality(t, reg.len(), 1)

	// same handle, same texture, no second import
	again, err := reg.resolve(30, info.FrameSize(), info)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, again, tex)
	test.ExpectEquality(t, len(rnd.imports), 1)

	// clear deletes the texture and forgets the handle
	reg.clear()
	test.ExpectEquality(t, reg.len(), 0)
	test.ExpectEquality(t, len(rnd.deletedTextures), 1)
	test.ExpectEquality(t, rnd.deletedTextures[0], tex)
}
