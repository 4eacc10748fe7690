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
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/gopher8088/gopher8088/curated"
	"github.com/gopher8088/gopher8088/debugger/terminal"
	"github.com/gopher8088/gopher8088/hardware/cpu/registers"
	"github.com/gopher8088/gopher8088/logger"
)

// Sentinel errors returned by the command parser.
const (
	UnknownCommand  = "debugger: unknown command (%s)"
	InvalidArgument = "debugger: invalid argument for %s (%s)"
	MissingArgument = "debugger: %s requires an argument"
)

// List of commands.
const (
	cmdStep   = "STEP"
	cmdReset  = "RESET"
	cmdReady  = "READY"
	cmdRegs   = "REGS"
	cmdQueue  = "QUEUE"
	cmdPins   = "PINS"
	cmdMemory = "MEMORY"
	cmdPoke   = "POKE"
	cmdMemviz = "MEMVIZ"
	cmdStats  = "STATS"
	cmdLog    = "LOG"
	cmdHelp   = "HELP"
	cmdQuit   = "QUIT"
)

// maximum number of clock pulses in a single STEP command that will have
// their state printed individually.
const maxPrintedSteps = 64

var help = map[string]string{
	cmdStep:   "STEP [n]\n\tpulse the clock n times (default 1). an empty line is the same as STEP",
	cmdReset:  "RESET\n\tpulse the RESET input",
	cmdReady:  "READY [HOLD|RELEASE]\n\thold READY low or release it. toggles with no argument",
	cmdRegs:   "REGS\n\tshow all CPU registers",
	cmdQueue:  "QUEUE\n\tshow the contents of the instruction queue and the handoff parameters",
	cmdPins:   "PINS\n\tshow the level of every pin",
	cmdMemory: "MEMORY <address> [address]\n\tshow the contents of memory",
	cmdPoke:   "POKE <address> <value>\n\tchange the contents of memory",
	cmdMemviz: "MEMVIZ <file>\n\twrite a graphviz rendering of the CPU to file",
	cmdStats:  "STATS\n\tshow bus statistics since the last reset",
	cmdLog:    "LOG [n]\n\tshow the last n log entries (default 10)",
	cmdHelp:   "HELP [command]\n\tlist commands or show help for a command",
	cmdQuit:   "QUIT\n\tend the debugging session",
}

// parseNumber accepts decimal, 0x prefixed hexadecimal or $ prefixed
// hexadecimal.
func parseNumber(s string, bits int) (uint64, error) {
	if strings.HasPrefix(s, "$") {
		return strconv.ParseUint(s[1:], 16, bits)
	}
	return strconv.ParseUint(s, 0, bits)
}

// parseInput executes a single line of input.
func (dbg *Debugger) parseInput(input string) error {
	tokens := strings.Fields(strings.ToUpper(input))
	if len(tokens) == 0 {
		tokens = []string{cmdStep}
	}

	dbg.term.TermPrintLine(terminal.StyleEcho, strings.Join(tokens, " "))

	cmd := tokens[0]
	args := tokens[1:]

	switch cmd {
	case cmdStep:
		n := 1
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 {
				return curated.Errorf(InvalidArgument, cmd, args[0])
			}
			n = v
		}
		for i := 0; i < n; i++ {
			if err := dbg.mb.Pulse(); err != nil {
				return err
			}
			if n <= maxPrintedSteps || i == n-1 {
				dbg.printState()
			}
		}

	case cmdReset:
		dbg.mb.Reset()
		dbg.printState()

	case cmdReady:
		hold := !dbg.mb.Mem.Holding()
		if len(args) > 0 {
			switch args[0] {
			case "HOLD":
				hold = true
			case "RELEASE":
				hold = false
			default:
				return curated.Errorf(InvalidArgument, cmd, args[0])
			}
		}
		dbg.mb.Mem.HoldReady(hold)
		if hold {
			dbg.term.TermPrintLine(terminal.StyleFeedback, "READY is held low")
		} else {
			dbg.term.TermPrintLine(terminal.StyleFeedback, "READY is released")
		}

	case cmdRegs:
		dbg.term.TermPrintLine(terminal.StyleFeedback, dbg.mb.CPU.String())

	case cmdQueue:
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("queue: %s", dbg.mb.CPU.BIU.Queue))
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("params: %s", dbg.mb.CPU.BIU.Parameters()))

	case cmdPins:
		dbg.term.TermPrintLine(terminal.StyleFeedback, dbg.mb.Pins.String())

	case cmdMemory:
		if len(args) == 0 {
			return curated.Errorf(MissingArgument, cmd)
		}
		from, err := parseNumber(args[0], 20)
		if err != nil {
			return curated.Errorf(InvalidArgument, cmd, args[0])
		}
		to := from
		if len(args) > 1 {
			to, err = parseNumber(args[1], 20)
			if err != nil || to < from {
				return curated.Errorf(InvalidArgument, cmd, args[1])
			}
		}
		for _, l := range strings.Split(dbg.mb.Mem.Dump(uint32(from), uint32(to)), "\n") {
			dbg.term.TermPrintLine(terminal.StyleFeedback, l)
		}

	case cmdPoke:
		if len(args) < 2 {
			return curated.Errorf(MissingArgument, cmd)
		}
		address, err := parseNumber(args[0], 20)
		if err != nil {
			return curated.Errorf(InvalidArgument, cmd, args[0])
		}
		value, err := parseNumber(args[1], 8)
		if err != nil {
			return curated.Errorf(InvalidArgument, cmd, args[1])
		}
		if err := dbg.mb.Mem.Poke(uint32(address), uint8(value)); err != nil {
			return err
		}

	case cmdMemviz:
		if len(args) == 0 {
			return curated.Errorf(MissingArgument, cmd)
		}

		// filename was capitalised with the rest of the input
		fn := strings.Fields(input)[1]

		f, err := os.Create(fn)
		if err != nil {
			return curated.Errorf("debugger: %v", err)
		}
		memviz.Map(f, dbg.mb.CPU)
		if err := f.Close(); err != nil {
			return curated.Errorf("debugger: %v", err)
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("CPU written to %s", fn))

	case cmdStats:
		s := dbg.mb.State()
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("clocks: %d  wait states: %d  fetches: %d  writes: %d",
			s.Stats.Cycles, s.Stats.WaitStates, s.Stats.Fetches, s.Stats.Writes))
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("IP=%04x DS:DI=%s",
			s.IP, dbg.mb.CPU.Regs.Address(registers.DS, registers.DI).Hex()))

	case cmdLog:
		n := 10
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 {
				return curated.Errorf(InvalidArgument, cmd, args[0])
			}
			n = v
		}
		w := &logWriter{term: dbg.term}
		logger.Tail(w, n)
		w.flush()

	case cmdHelp:
		if len(args) > 0 {
			h, ok := help[args[0]]
			if !ok {
				return curated.Errorf(UnknownCommand, args[0])
			}
			for _, l := range strings.Split(h, "\n") {
				dbg.term.TermPrintLine(terminal.StyleHelp, l)
			}
			return nil
		}
		cmds := make([]string, 0, len(help))
		for k := range help {
			cmds = append(cmds, k)
		}
		sort.Strings(cmds)
		dbg.term.TermPrintLine(terminal.StyleHelp, strings.Join(cmds, " "))

	case cmdQuit:
		dbg.running = false

	default:
		return curated.Errorf(UnknownCommand, cmd)
	}

	return nil
}
