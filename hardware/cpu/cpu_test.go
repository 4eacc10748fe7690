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

package cpu_test

import (
	"testing"

	"github.com/gopher8088/gopher8088/curated"
	"github.com/gopher8088/gopher8088/hardware/cpu"
	"github.com/gopher8088/gopher8088/hardware/cpu/biu"
	"github.com/gopher8088/gopher8088/hardware/cpu/bitvector"
	"github.com/gopher8088/gopher8088/hardware/cpu/registers"
	"github.com/gopher8088/gopher8088/test"
)

// signals implements the biu.Signals interface. READY is always asserted.
type signals struct {
	address bitvector.BitVector
	ale     bool
}

func (s *signals) DriveAddress(v bitvector.BitVector) { s.address = v.Clone() }
func (s *signals) DriveData(v bitvector.BitVector)    {}
func (s *signals) SetALE(level bool)                  { s.ale = level }
func (s *signals) SetRD(level bool)                   {}
func (s *signals) SetWR(level bool)                   {}
func (s *signals) DataIn() bitvector.BitVector        { return bitvector.FromUint(0x90, 8) }
func (s *signals) Ready() bool                        { return true }

func TestParseMode(t *testing.T) {
	m, err := cpu.ParseMode("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, cpu.Min)

	m, err = cpu.ParseMode("min")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, cpu.Min)

	m, err = cpu.ParseMode(" MAX ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, cpu.Max)

	_, err = cpu.ParseMode("maximum")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.InvalidMode))

	test.ExpectEquality(t, cpu.Min.String(), "min")
	test.ExpectEquality(t, cpu.Max.String(), "max")
}

func TestResetPriority(t *testing.T) {
	mc := cpu.NewCPU(nil, cpu.Min, &signals{})

	// clock edge on its own advances the T-state
	mc.InputChange(false, true)
	test.ExpectEquality(t, mc.BIU.State(), biu.T2)

	// reset and clock together is just a reset
	mc.InputChange(true, true)
	test.ExpectEquality(t, mc.BIU.State(), biu.T1)
	test.ExpectEquality(t, mc.BIU.Stats.Cycles, 0)

	// no edges is no change
	mc.InputChange(false, false)
	test.ExpectEquality(t, mc.BIU.State(), biu.T1)
}

func TestModeSurvivesReset(t *testing.T) {
	mc := cpu.NewCPU(nil, cpu.Max, &signals{})
	for _i := 0; _i < 10; _i++ {
		mc.Clock()
	}
	mc.Reset()
	test.ExpectEquality(t, mc.Mode(), cpu.Max)
}

func TestModeDoesNotChangeBehaviour(t *testing.T) {
	sigMin := &signals{}
	sigMax := &signals{}
	mcMin := cpu.NewCPU(nil, cpu.Min, sigMin)
	mcMax := cpu.NewCPU(nil, cpu.Max, sigMax)

	for i := 0; i < 40; i++ {
		mcMin.Clock()
		mcMax.Clock()
		test.ExpectEquality(t, mcMin.BIU.String(), mcMax.BIU.String(), i)
		test.ExpectEquality(t, mcMin.String(), mcMax.String(), i)
		test.ExpectEquality(t, sigMin.ale, sigMax.ale, i)
		test.ExpectSuccess(t, sigMin.address.Equal(sigMax.address), i)
	}
}

func TestBoot(t *testing.T) {
	sig := &signals{}
	mc := cpu.NewCPU(nil, cpu.Min, sig)
	test.ExpectEquality(t, mc.Regs.Get(registers.CS).Uint(), uint32(0xffff))
	test.ExpectEquality(t, mc.Regs.Get(registers.IP).Uint(), uint32(0x0000))

	mc.Clock()
	test.ExpectEquality(t, sig.address.Uint(), uint32(0xffff0))
	test.ExpectSuccess(t, sig.ale)
}
