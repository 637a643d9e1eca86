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

package output

import (
	"fmt"
	"io"
	"os"

	"github.com/video-system/go-video-preview/logger"
)

func init() {
	Register("file", func(destination string) (Output, error) {
		return NewFileOutput(destination)
	})
}

// FileOutput appends raw buffers to a file or FIFO. "-" writes to stdout.
type FileOutput struct {
	w       io.WriteCloser
	path    string
	buffers int
	bytes   int64
}

// NewFileOutput is the preferred method of initialisation for the
// FileOutput type.
func NewFileOutput(path string) (*FileOutput, error) {
	var w io.WriteCloser

	if path == "-" {
		w = os.Stdout
	} else {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, fmt.Errorf("output: %w", err)
		}
		w = f
	}

	return &FileOutput{w: w, path: path}, nil
}

func (out *FileOutput) Name() string {
	return "file"
}

// Push writes the buffer in full. The timestamp and flags are not recorded
// in the raw stream.
func (out *FileOutput) Push(buf []byte, timestampUS int64, flags uint32) error {
	n, err := out.w.Write(buf)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if n != len(buf) {
		return fmt.Errorf("output: short write (%d of %d)", n, len(buf))
	}

	out.buffers++
	out.bytes += int64(n)

	return nil
}

func (out *FileOutput) Close() error {
	logger.Logf("output", "%s: %d buffers, %d bytes", out.path, out.buffers, out.bytes)

	if out.w == os.Stdout {
		return nil
	}
	if err := out.w.Close(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}
