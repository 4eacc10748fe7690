// This file is part of Gopher8088.
//
// Gopher8088 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8088 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8088.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"strings"

	"github.com/gopher8088/gopher8088/debugger/terminal"
)

// logWriter forwards complete lines written to it to the terminal.
type logWriter struct {
	term terminal.Output
	buf  strings.Builder
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	s := w.buf.String()
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			break
		}
		w.term.TermPrintLine(terminal.StyleLog, s[:i])
		s = s[i+1:]
	}
	w.buf.Reset()
	w.buf.WriteString(s)
	return len(p), nil
}

// flush any incomplete line.
func (w *logWriter) flush() {
	if w.buf.Len() > 0 {
		w.term.TermPrintLine(terminal.StyleLog, w.buf.String())
		w.buf.Reset()
	}
}
