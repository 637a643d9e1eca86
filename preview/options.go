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

package preview

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options controls the placement and behaviour of the preview window.
type Options struct {
	// Position and size of the window. A zero width or height selects the
	// default window size. If the window does not fit the screen at the
	// requested position the implementation falls back to fullscreen.
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Fullscreen bool `yaml:"fullscreen"`

	// Title is the initial window title. SetInfoText() replaces it.
	Title string `yaml:"title"`

	// VSync paces Show() to the display refresh rate.
	VSync bool `yaml:"vsync"`
}

// DefaultOptions returns an Options instance with sensible values for an
// interactive preview.
func DefaultOptions() *Options {
	return &Options{
		Title: "go-video-preview",
		VSync: true,
	}
}

// LoadOptions reads Options from a YAML file. Fields absent from the file
// keep their default values.
func LoadOptions(path string) (*Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}

	err = yaml.Unmarshal(data, opts)
	if err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}

	return opts, nil
}
