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
	"strings"
	"testing"

	"github.com/gopher8088/gopher8088/hardware"
	"github.com/gopher8088/gopher8088/hardware/cpu"
	"github.com/gopher8088/gopher8088/test"
)

func TestTrace(t *testing.T) {
	mb, err := hardware.NewMotherboard(nil, cpu.Min)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mb.Mem.Load(0xffff0, []uint8{0x42}))

	out, err := test.NewRingWriter(4096)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, traceRun(out, mb, 8))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	test.DemandEquality(t, len(lines), 8)
	test.ExpectEquality(t, lines[0], "     1 T1->T2 fetch ALE=1 RD=1 WR=1 A=ffff0")
	test.ExpectEquality(t, lines[1], "     2 T2->T3 fetch ALE=0 RD=0 WR=1 A=fff00")
	test.ExpectEquality(t, lines[3], "     4 T4->T1 write ALE=0 RD=1 WR=1 A=fff00")
	test.ExpectEquality(t, lines[5], "     6 T2->T3 write ALE=0 RD=1 WR=0 A=00042")
}

func TestTraceWaitState(t *testing.T) {
	mb, err := hardware.NewMotherboard(nil, cpu.Min)
	test.DemandSuccess(t, err)
	mb.Mem.HoldReady(true)

	out, err := test.NewRingWriter(4096)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, traceRun(out, mb, 4))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	test.DemandEquality(t, len(lines), 4)
	test.ExpectEquality(t, lines[2], "     3 T3->Tw fetch ALE=0 RD=0 WR=1 A=fff00")
	test.ExpectEquality(t, lines[3], "     4 Tw->Tw fetch ALE=0 RD=0 WR=1 A=fff00")
}
