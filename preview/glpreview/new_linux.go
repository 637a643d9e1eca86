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

	"github.com/video-system/go-video-preview/preview"
)

// New creates the preview window and rendering context. The GPU itself is
// left untouched until the first Show(); see the package documentation.
//
// The calling goroutine is locked to its OS thread as a side effect; SDL
// requires it.
func New(opts *preview.Options) (*Preview, error) {
	if opts == nil {
		opts = preview.DefaultOptions()
	}

	plt, err := newPlatform(opts)
	if err != nil {
		return nil, fmt.Errorf("glpreview: %w", preview.SetupError{Err: err})
	}

	return newPreview(plt, &glRenderer{}), nil
}
