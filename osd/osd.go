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

// Package osd rasterises simple on-screen display content into the tightly
// packed RGBA form the preview overlay expects.
package osd

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// rendering constants for the basicfont face
const (
	lineHeight = 16
	margin     = 4
)

// Text rasterises the lines onto a translucent dark panel. White text,
// one line per entry. The image is sized to fit the longest line.
func Text(lines []string) *image.RGBA {
	face := basicfont.Face7x13

	width := 0
	for _, l := range lines {
		w := font.MeasureString(face, l).Ceil()
		if w > width {
			width = w
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width+margin*2, len(lines)*lineHeight+margin*2))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 160}}, image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{255, 255, 255, 255}),
		Face: face,
	}

	for i, l := range lines {
		d.Dot = fixed.P(margin, margin+i*lineHeight+face.Ascent)
		d.DrawString(l)
	}

	return img
}

// FitRGBA scales the image to width x height and returns the pixels as a
// tightly packed RGBA slice, suitable for Preview.SetOverlay.
func FitRGBA(src image.Image, width int, height int) []byte {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	if dst.Stride == width*4 {
		return dst.Pix
	}

	// image.NewRGBA allocates a tight stride for the bounds above, but
	// repack anyway in case that ever changes
	pix := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		copy(pix[y*width*4:], dst.Pix[y*dst.Stride:y*dst.Stride+width*4])
	}
	return pix
}
