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

// Package colorterm implements the Terminal interface for the gopher8088
// debugger. It supports color output and single keypress stepping: a space
// bar pressed at an empty prompt is the same as the STEP command.
package colorterm

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/gopher8088/gopher8088/curated"
	"github.com/gopher8088/gopher8088/debugger/terminal"
	"github.com/gopher8088/gopher8088/debugger/terminal/colorterm/easyterm"
	"github.com/gopher8088/gopher8088/debugger/terminal/colorterm/easyterm/ansi"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.Terminal

	reader   *bufio.Reader
	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.Terminal.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	ct.reader = bufio.NewReader(os.Stdin)
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	_ = ct.Flush()
	ct.Terminal.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// input has already been echoed by TermRead()
	if style == terminal.StyleEcho {
		return
	}

	ct.TermPrint("\r")

	switch style {
	case terminal.StyleHelp:
		ct.TermPrint(ansi.DimPens["white"])
	case terminal.StyleFeedback:
		ct.TermPrint(ansi.DimPens["white"])
	case terminal.StyleState:
		ct.TermPrint(ansi.Pens["yellow"])
	case terminal.StyleLog:
		ct.TermPrint(ansi.DimPens["cyan"])
	case terminal.StyleError:
		ct.TermPrint(ansi.Pens["red"])
		ct.TermPrint("* ")
	}

	ct.TermPrint(s)
	ct.TermPrint(ansi.NormalPen)
	ct.TermPrint("\n")
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	ct.CBreakMode()
	defer ct.CanonicalMode()

	ct.TermPrint(ansi.ClearLine)
	ct.TermPrint("\r")
	ct.TermPrint(ansi.PenStyles["bold"])
	ct.TermPrint(prompt.String())
	ct.TermPrint(ansi.NormalPen)

	input := strings.Builder{}

	for {
		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		if events != nil && events.Signal != nil {
			select {
			case sig := <-events.Signal:
				ct.TermPrint("\n")
				return "", events.SignalHandler(sig)
			default:
			}
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEOF:
			if input.Len() == 0 {
				ct.TermPrint("\n")
				return "", io.EOF
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.TermPrint("\n")
			return input.String(), nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if input.Len() > 0 {
				s := input.String()
				input.Reset()
				input.WriteString(s[:len(s)-1])
				ct.TermPrint("\b \b")
			}

		case easyterm.KeyEsc:
			// discard the remainder of the escape sequence
			if ct.reader.Buffered() >= 2 {
				_, _ = ct.reader.Discard(2)
			}

		case ' ':
			if input.Len() == 0 {
				ct.TermPrint("STEP\n")
				return "STEP", nil
			}
			input.WriteRune(r)
			ct.TermPrint(" ")

		default:
			if r >= ' ' && r < easyterm.KeyDelete {
				input.WriteRune(r)
				ct.TermPrint(string(r))
			}
		}
	}
}
