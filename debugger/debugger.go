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
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gopher8088/gopher8088/curated"
	"github.com/gopher8088/gopher8088/debugger/terminal"
	"github.com/gopher8088/gopher8088/environment"
	"github.com/gopher8088/gopher8088/hardware"
	"github.com/gopher8088/gopher8088/logger"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	env  *environment.Environment
	mb   *hardware.Motherboard
	term terminal.Terminal

	events terminal.ReadEvents

	// set to false by the QUIT command
	running bool
}

// NewDebugger creates and initialises everything required for a new debugging
// session.
func NewDebugger(env *environment.Environment, mb *hardware.Motherboard, term terminal.Terminal) *Debugger {
	dbg := &Debugger{
		env:  env,
		mb:   mb,
		term: term,
	}

	dbg.events.Signal = make(chan os.Signal, 1)
	dbg.events.SignalHandler = func(sig os.Signal) error {
		switch sig {
		case syscall.SIGINT:
			return curated.Errorf(terminal.UserInterrupt)
		}
		return curated.Errorf(terminal.UserAbort)
	}

	return dbg
}

// Start the main debugger sequence. The function returns when the QUIT
// command is used, at the end of input, or on a user abort.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	signal.Notify(dbg.events.Signal, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(dbg.events.Signal)

	dbg.printState()

	dbg.running = true
	for dbg.running {
		prompt := terminal.Prompt{
			Content: dbg.mb.CPU.BIU.String(),
			Waiting: dbg.mb.CPU.BIU.Waiting(),
		}

		input, err := dbg.term.TermRead(prompt, &dbg.events)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.term.TermPrintLine(terminal.StyleFeedback, "use QUIT to end the session")
				continue
			}
			if curated.Is(err, terminal.UserAbort) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		if err := dbg.parseInput(input); err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}

		dbg.printLog()
	}

	return nil
}

// printState prints the state of the motherboard.
func (dbg *Debugger) printState() {
	dbg.term.TermPrintLine(terminal.StyleState, dbg.mb.State().String())
}

// printLog prints any log entries created since the last call.
func (dbg *Debugger) printLog() {
	w := &logWriter{term: dbg.term}
	logger.WriteRecent(w)
	w.flush()
}
