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
	"github.com/video-system/go-video-preview/logger"
	"github.com/video-system/go-video-preview/preview"
)

// yuvEncoding selects the YUV-to-RGB conversion applied when the GPU
// samples the imported frame.
type yuvEncoding int

// List of valid yuvEncoding values.
const (
	encodingBT601 yuvEncoding = iota
	encodingBT709
)

func (e yuvEncoding) String() string {
	if e == encodingBT709 {
		return "BT.709"
	}
	return "BT.601"
}

// plane describes one plane of a multi-planar frame, relative to the start
// of the buffer.
type plane struct {
	offset int
	pitch  int
}

// frameImage describes a producer buffer in the form the GPU import needs:
// the handle, the per-plane layout and the colour hints. It is a pure
// description; nothing is imported until renderer.importFrame.
type frameImage struct {
	handle int
	size   int
	width  int
	height int

	// plane 0 is full-resolution luma; planes 1 and 2 are the
	// half-resolution chroma planes
	planes [3]plane

	encoding  yuvEncoding
	fullRange bool
}

// newFrameImage derives the plane layout for a YUV420 buffer from its
// geometry. The layout is fixed by the producer contract: luma at offset
// zero, the two chroma planes packed immediately after, each with half the
// luma pitch.
func newFrameImage(handle int, size int, info preview.StreamInfo) frameImage {
	img := frameImage{
		handle: handle,
		size:   size,
		width:  info.Width,
		height: info.Height,
	}

	chromaPitch := info.Stride / 2
	plane1Offset := info.Stride * info.Height
	plane2Offset := plane1Offset + chromaPitch*(info.Height/2)

	img.planes[0] = plane{offset: 0, pitch: info.Stride}
	img.planes[1] = plane{offset: plane1Offset, pitch: chromaPitch}
	img.planes[2] = plane{offset: plane2Offset, pitch: chromaPitch}

	img.encoding, img.fullRange = colourSpaceHints(info.ColourSpace)

	return img
}

// colourSpaceHints maps the producer's colour-space tag to the encoding and
// range hints given to the GPU import:
//
//	unset, SMPTE 170M  ->  BT.601, narrow range
//	sYCC               ->  BT.601, full range
//	Rec. 709           ->  BT.709, narrow range
//
// An unrecognised tag is logged and treated as BT.601/narrow. A bad tag
// never blocks presentation.
func colourSpaceHints(cs preview.ColourSpace) (yuvEncoding, bool) {
	switch cs {
	case preview.ColourSpaceUnset:
	case preview.ColourSpaceSmpte170m:
	case preview.ColourSpaceSycc:
		return encodingBT601, true
	case preview.ColourSpaceRec709:
		return encodingBT709, false
	default:
		logger.Logf("glpreview", "unexpected colour space %v", cs)
	}
	return encodingBT601, false
}
