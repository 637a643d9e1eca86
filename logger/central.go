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

package logger

import (
	"fmt"
	"io"
)

// only allowing one central log for the entire application. there's no need
// to allow more than one log.
var central *log

// maximum number of entries in the central log.
const maxCentral = 256

func init() {
	central = newLog(maxCentral)
}

// Log adds an entry to the central log.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central log.
func Logf(tag, format string, args ...interface{}) {
	central.log(tag, fmt.Sprintf(format, args...))
}

// Clear all entries from the central log.
func Clear() {
	central.clear()
}

// Write contents of the central log to the io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries to the io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho echoes new entries to the io.Writer as they arrive. A nil writer
// stops the echoing.
func SetEcho(output io.Writer) {
	central.echo = output
}

// BorrowLog gives the provided function access to the list of log entries.
// The slice must not be retained after the function returns.
func BorrowLog(f func([]Entry)) {
	f(central.entries)
}
