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

package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/video-system/go-video-preview/output"
	"github.com/video-system/go-video-preview/test"
)

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stream.raw")

	out, err := output.NewFileOutput(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.Name(), "file")

	test.ExpectSuccess(t, out.Push([]byte("first"), 0, output.FlagKeyframe))
	test.ExpectSuccess(t, out.Push([]byte("second"), 33333, 0))
	test.ExpectSuccess(t, out.Close())

	b, err := os.ReadFile(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "firstsecond")
}

func TestOpenRegisteredSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stream.raw")

	out, err := output.Open("file", path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.Name(), "file")
	test.ExpectSuccess(t, out.Close())
}

func TestOpenUnrecognisedSink(t *testing.T) {
	_, err := output.Open("udp", "localhost:9000")
	test.ExpectFailure(t, err)
}
