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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gopher8088/gopher8088/curated"
	"github.com/gopher8088/gopher8088/debugger"
	"github.com/gopher8088/gopher8088/debugger/terminal"
	"github.com/gopher8088/gopher8088/debugger/terminal/colorterm"
	"github.com/gopher8088/gopher8088/debugger/terminal/plainterm"
	"github.com/gopher8088/gopher8088/digest"
	"github.com/gopher8088/gopher8088/environment"
	"github.com/gopher8088/gopher8088/hardware"
	"github.com/gopher8088/gopher8088/hardware/cpu"
	"github.com/gopher8088/gopher8088/hardware/pins"
	"github.com/gopher8088/gopher8088/logger"
	"github.com/gopher8088/gopher8088/modalflag"
	"github.com/gopher8088/gopher8088/statsview"
	"github.com/gopher8088/gopher8088/version"
	"github.com/gopher8088/gopher8088/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "TRACE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md)

	case "TRACE":
		err = trace(md)

	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// hardwareFlags are the flags common to every mode that creates a motherboard.
type hardwareFlags struct {
	mode *string
	wait *int
	org  *uint32
	log  *bool
}

func addHardwareFlags(md *modalflag.Modes) hardwareFlags {
	return hardwareFlags{
		mode: md.AddString("mode", "", "cpu mode: MIN, MAX (default from preferences)"),
		wait: md.AddInt("wait", -1, "memory wait states (default from preferences)"),
		org:  md.AddAddress("org", 0xffff0, pins.AddressWidth, "load address of the memory image"),
		log:  md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// newMotherboard creates the environment and motherboard described by the
// hardware flags and loads the memory image named by the first remaining
// argument, if there is one.
func newMotherboard(md *modalflag.Modes, flgs hardwareFlags) (*environment.Environment, *hardware.Motherboard, error) {
	if *flgs.log {
		logger.SetEcho(md.Output)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, nil, err
	}

	if *flgs.wait >= 0 {
		err = env.Prefs.WaitStates.Set(*flgs.wait)
		if err != nil {
			return nil, nil, err
		}
	}

	modeStr := *flgs.mode
	if modeStr == "" {
		modeStr = env.Prefs.Mode.String()
	}
	mode, err := cpu.ParseMode(modeStr)
	if err != nil {
		return nil, nil, err
	}

	mb, err := hardware.NewMotherboard(env, mode)
	if err != nil {
		return nil, nil, err
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		data, err := os.ReadFile(md.GetArg(0))
		if err != nil {
			return nil, nil, curated.Errorf("image: %v", err)
		}
		err = mb.Mem.Load(*flgs.org, data)
		if err != nil {
			return nil, nil, curated.Errorf("image: %v", err)
		}
	default:
		return nil, nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	return env, mb, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("the optional argument is a file to load into memory at the -org address")

	flgs := addHardwareFlags(md)
	clocks := md.AddInt("clocks", 1000, "number of clock pulses to run for")
	wav := md.AddString("wav", "", "record bus signals to wav file")
	dig := md.AddBool("digest", false, "print digest of bus activity")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%v)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	env, mb, err := newMotherboard(md, flgs)
	if err != nil {
		return err
	}

	if *wav != "" {
		ww, err := wavwriter.New(env, *wav)
		if err != nil {
			return err
		}
		mb.AddRecorder(ww)
	}

	var busDigest *digest.Digest
	if *dig {
		busDigest = digest.NewDigest()
		mb.AddRecorder(busDigest)
	}

	err = mb.Run(*clocks, nil)
	if err != nil {
		return err
	}

	err = mb.EndRecording()
	if err != nil {
		return err
	}

	s := mb.State()
	fmt.Fprintln(md.Output, s)
	fmt.Fprintf(md.Output, "wait states: %d  fetches: %d  writes: %d\n", s.Stats.WaitStates, s.Stats.Fetches, s.Stats.Writes)
	if busDigest != nil {
		fmt.Fprintf(md.Output, "digest: %s\n", busDigest)
	}

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("the optional argument is a file to load into memory at the -org address")

	flgs := addHardwareFlags(md)
	termType := md.AddString("term", "PLAIN", "terminal type to use in debug mode: PLAIN, COLOR")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, mb, err := newMotherboard(md, flgs)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "PLAIN":
		term = plainterm.NewPlainTerminal(os.Stdin, md.Output)
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	default:
		return fmt.Errorf("unknown terminal: %s", *termType)
	}

	dbg := debugger.NewDebugger(env, mb, term)
	return dbg.Start()
}

func trace(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("the optional argument is a file to load into memory at the -org address")

	flgs := addHardwareFlags(md)
	clocks := md.AddInt("clocks", 32, "number of clock pulses to trace")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	_, mb, err := newMotherboard(md, flgs)
	if err != nil {
		return err
	}

	return traceRun(md.Output, mb, *clocks)
}

// traceRun pulses the motherboard clock and writes one line per pulse.
func traceRun(output io.Writer, mb *hardware.Motherboard, clocks int) error {
	before := mb.State()
	return mb.Run(clocks, func(after hardware.State) (bool, error) {
		fmt.Fprintln(output, traceLine(before, after))
		before = after
		return true, nil
	})
}

// traceLine is the output of the trace mode for a single clock pulse.
func traceLine(before hardware.State, after hardware.State) string {
	from := before.TState.String()
	if before.Waiting {
		from = "Tw"
	}
	to := after.TState.String()
	if after.Waiting {
		to = "Tw"
	}
	return fmt.Sprintf("%6d %s->%s %-5s ALE=%d RD=%d WR=%d A=%05x",
		after.Clock, from, to, after.Transaction,
		level(after.ALE), level(after.RD), level(after.WR), after.Address)
}

func level(b bool) int {
	if b {
		return 1
	}
	return 0
}
