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

package debugger_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopher8088/gopher8088/debugger"
	"github.com/gopher8088/gopher8088/debugger/terminal/plainterm"
	"github.com/gopher8088/gopher8088/hardware"
	"github.com/gopher8088/gopher8088/hardware/cpu"
	"github.com/gopher8088/gopher8088/test"
)

func run(t *testing.T, script string) (*hardware.Motherboard, string) {
	t.Helper()

	mb, err := hardware.NewMotherboard(nil, cpu.Min)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mb.Mem.Load(0xffff0, []uint8{0xb8, 0x34, 0x12}))

	out, err := test.NewRingWriter(1 << 16)
	test.DemandSuccess(t, err)

	term := plainterm.NewPlainTerminal(strings.NewReader(script), out)
	dbg := debugger.NewDebugger(nil, mb, term)
	test.DemandSuccess(t, dbg.Start())

	return mb, out.String()
}

func expectOutput(t *testing.T, output string, s string) {
	t.Helper()
	if !strings.Contains(output, s) {
		t.Errorf("expected %q in output:\n%s", s, output)
	}
}

func TestStep(t *testing.T) {
	mb, output := run(t, "STEP 4\nregs\nquit\n")
	test.ExpectEquality(t, mb.Clocks, uint64(4))
	expectOutput(t, output, "CS=ffff")
	expectOutput(t, output, "IP=0001")
}

func TestEmptyLineSteps(t *testing.T) {
	mb, _ := run(t, "\n\n\n")
	test.ExpectEquality(t, mb.Clocks, uint64(3))
}

func TestEndOfInput(t *testing.T) {
	mb, _ := run(t, "step 2")
	test.ExpectEquality(t, mb.Clocks, uint64(2))
}

func TestQuit(t *testing.T) {
	mb, _ := run(t, "quit\nstep 10\n")
	test.ExpectEquality(t, mb.Clocks, uint64(0))
}

func TestQueue(t *testing.T) {
	_, output := run(t, "step 3\nqueue\nstep\nqueue\n")
	expectOutput(t, output, "queue: b8")
	expectOutput(t, output, "params: dst=0000 dstoff=0000 const=b8")
}

func TestReady(t *testing.T) {
	mb, output := run(t, "ready hold\nstep 20\n")
	expectOutput(t, output, "READY is held low")
	s := mb.State()
	test.ExpectSuccess(t, s.Waiting)
	test.ExpectEquality(t, s.Stats.WaitStates, 18)

	mb, output = run(t, "ready\nready\n")
	expectOutput(t, output, "READY is released")
	test.ExpectFailure(t, mb.Mem.Holding())
}

func TestMemory(t *testing.T) {
	mb, output := run(t, "step 8\nmemory 0\npoke 0x10 $ab\nmemory $10 $1f\n")
	expectOutput(t, output, "00000 |  b8 00")
	expectOutput(t, output, "00010 |  ab 00")
	v, _ := mb.Mem.Peek(0x10)
	test.ExpectEquality(t, v, uint8(0xab))
}

func TestReset(t *testing.T) {
	mb, _ := run(t, "step 9\nreset\n")
	test.ExpectEquality(t, mb.Clocks, uint64(0))
	test.ExpectEquality(t, mb.State().IP, uint16(0))
}

func TestErrors(t *testing.T) {
	_, output := run(t, "bogus\nstep x\nmemory\npoke 0\nready maybe\nhelp bogus\n")
	expectOutput(t, output, "* debugger: unknown command (BOGUS)")
	expectOutput(t, output, "* debugger: invalid argument for STEP (X)")
	expectOutput(t, output, "* debugger: MEMORY requires an argument")
	expectOutput(t, output, "* debugger: POKE requires an argument")
	expectOutput(t, output, "* debugger: invalid argument for READY (MAYBE)")
}

func TestHelp(t *testing.T) {
	_, output := run(t, "help\nhelp memviz\n")
	expectOutput(t, output, "HELP LOG MEMORY MEMVIZ PINS POKE QUEUE QUIT READY REGS RESET STATS STEP")
	expectOutput(t, output, "MEMVIZ <file>")
}

func TestMemviz(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "Cpu.dot")
	_, output := run(t, fmt.Sprintf("step 2\nmemviz %s\n", fn))
	expectOutput(t, output, fmt.Sprintf("CPU written to %s", fn))

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}

func TestPinsAndStats(t *testing.T) {
	_, output := run(t, "step\npins\nstats\n")
	expectOutput(t, output, "A=ffff0 ALE=1 RD=1 WR=1")
	expectOutput(t, output, "clocks: 1  wait states: 0  fetches: 0  writes: 0")
}
