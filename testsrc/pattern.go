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

// Package testsrc produces YUV420 test-pattern frames in shareable buffers.
// It stands in for a camera or decoder when exercising the preview path.
package testsrc

import (
	"github.com/video-system/go-video-preview/preview"
)

// number of colour bars across the frame
const numBars = 8

// chroma values for the eight bars, approximating the classic 75% colour
// bar sequence: white, yellow, cyan, green, magenta, red, blue, black.
var barU = [numBars]byte{128, 16, 166, 54, 202, 90, 240, 128}
var barV = [numBars]byte{128, 146, 16, 34, 222, 240, 110, 128}
var barY = [numBars]byte{235, 210, 170, 145, 106, 81, 41, 16}

// fillPattern writes a YUV420 colour bar pattern into data, laid out
// according to info. The bars scroll horizontally with the frame count so
// motion is visible. data must be at least info.FrameSize() long.
func fillPattern(data []byte, info preview.StreamInfo, frame int) {
	shift := frame % info.Width

	lumaSize := info.Stride * info.Height
	chromaPitch := info.Stride / 2
	chromaSize := chromaPitch * (info.Height / 2)

	luma := data[:lumaSize]
	uPlane := data[lumaSize : lumaSize+chromaSize]
	vPlane := data[lumaSize+chromaSize : lumaSize+2*chromaSize]

	barWidth := info.Width / numBars

	for y := 0; y < info.Height; y++ {
		row := luma[y*info.Stride:]
		for x := 0; x < info.Width; x++ {
			bar := (((x + shift) % info.Width) / barWidth) % numBars
			row[x] = barY[bar]
		}
	}

	for y := 0; y < info.Height/2; y++ {
		uRow := uPlane[y*chromaPitch:]
		vRow := vPlane[y*chromaPitch:]
		for x := 0; x < info.Width/2; x++ {
			bar := (((x*2 + shift) % info.Width) / barWidth) % numBars
			uRow[x] = barU[bar]
			vRow[x] = barV[bar]
		}
	}
}
