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

package biu_test

import (
	"testing"

	"github.com/gopher8088/gopher8088/hardware/cpu/bitvector"
	"github.com/gopher8088/gopher8088/hardware/cpu/biu"
	"github.com/gopher8088/gopher8088/hardware/cpu/registers"
	"github.com/gopher8088/gopher8088/test"
)

// bus implements the biu.Signals interface.
type bus struct {
	address uint32
	ale     bool
	rd      bool
	wr      bool
	data    uint8
	ready   bool
}

func (b *bus) DriveAddress(v bitvector.BitVector) {
	b.address = v.Truncate(20).Uint()
}

func (b *bus) DriveData(v bitvector.BitVector) {
	b.address = (b.address &^ 0xff) | v.Truncate(8).Uint()
}

func (b *bus) SetALE(level bool) {
	b.ale = level
}

func (b *bus) SetRD(level bool) {
	b.rd = level
}

func (b *bus) SetWR(level bool) {
	b.wr = level
}

func (b *bus) DataIn() bitvector.BitVector {
	return bitvector.FromUint(uint32(b.data), 8)
}

func (b *bus) Ready() bool {
	return b.ready
}

func newBIU() (*biu.BIU, *registers.Registers, *bus) {
	regs := registers.NewRegisters()
	sig := &bus{ready: true}
	return biu.NewBIU(nil, regs, sig), regs, sig
}

func clocks(b *biu.BIU, n int) {
	for _i := 0; _i < n; _i++ {
		b.Clock()
	}
}

func expectReset(t *testing.T, b *biu.BIU, regs *registers.Registers, sig *bus) {
	t.Helper()
	test.ExpectEquality(t, b.State(), biu.T1)
	test.ExpectEquality(t, b.Active().String(), "fetch")
	test.ExpectEquality(t, b.Queue.Len(), 0)
	test.ExpectEquality(t, regs.Get(registers.CS).Uint(), uint32(0xffff))
	test.ExpectEquality(t, regs.Get(registers.IP).Uint(), uint32(0x0000))
	test.ExpectSuccess(t, sig.rd)
	test.ExpectSuccess(t, sig.wr)
	test.ExpectFailure(t, sig.ale)
	test.ExpectFailure(t, b.Waiting())
}

func TestReset(t *testing.T) {
	b, regs, sig := newBIU()
	expectReset(t, b, regs, sig)

	// reset from the middle of a fetch with RD asserted
	clocks(b, 2)
	test.ExpectFailure(t, sig.rd)
	b.Reset()
	expectReset(t, b, regs, sig)

	// reset from a wait state with an entry in the queue
	sig.ready = false
	clocks(b, 2)
	b.Queue.Push(bitvector.FromUint(0x12, 8))
	clocks(b, 3)
	test.ExpectSuccess(t, b.Waiting())
	b.Reset()
	expectReset(t, b, regs, sig)

	// reset from the middle of a write with WR asserted
	sig.ready = true
	clocks(b, 6)
	test.ExpectEquality(t, b.Active().String(), "write")
	test.ExpectFailure(t, sig.wr)
	b.Reset()
	expectReset(t, b, regs, sig)

	// reset twice is the same as reset once
	b.Reset()
	expectReset(t, b, regs, sig)
}

func TestWaitState(t *testing.T) {
	b, _, sig := newBIU()
	sig.ready = false
	sig.data = 0x99

	clocks(b, 2)
	test.ExpectEquality(t, b.State(), biu.T3)
	address := sig.address

	for i := 0; i < 10; i++ {
		b.Clock()
		test.ExpectEquality(t, b.State(), biu.T3, i)
		test.ExpectEquality(t, sig.address, address, i)
		test.ExpectSuccess(t, b.Waiting(), i)
		test.ExpectFailure(t, sig.rd, i)
		test.ExpectEquality(t, b.Queue.Len(), 0, i)
	}
	test.ExpectEquality(t, b.Stats.WaitStates, 10)
	test.ExpectEquality(t, b.Stats.Cycles, 12)

	sig.ready = true
	b.Clock()
	test.ExpectEquality(t, b.State(), biu.T4)
	test.ExpectFailure(t, b.Waiting())
	test.ExpectSuccess(t, sig.rd)
	test.ExpectEquality(t, b.Queue.Len(), 1)
}

func TestWriteWaitState(t *testing.T) {
	b, _, sig := newBIU()

	// complete the fetch and move to T3 of the write
	clocks(b, 6)
	test.ExpectEquality(t, b.Active().String(), "write")
	test.ExpectEquality(t, b.State(), biu.T3)

	sig.ready = false
	clocks(b, 4)
	test.ExpectEquality(t, b.State(), biu.T3)
	test.ExpectFailure(t, sig.wr)

	sig.ready = true
	b.Clock()
	test.ExpectEquality(t, b.State(), biu.T4)
	test.ExpectSuccess(t, sig.wr)
}

func TestFetchWriteHandoff(t *testing.T) {
	b, regs, sig := newBIU()
	sig.data = 0x5a

	// T1 of the fetch drives CS:IP
	b.Clock()
	test.ExpectEquality(t, sig.address, uint32(0xffff0))

	clocks(b, 2)
	test.ExpectEquality(t, b.Queue.Len(), 1)

	// T4 of the fetch
	b.Clock()
	test.ExpectEquality(t, regs.Get(registers.IP).Uint(), uint32(0x0001))
	test.ExpectEquality(t, b.Queue.Len(), 0)
	test.ExpectEquality(t, b.Active().String(), "write")
	test.ExpectEquality(t, b.State(), biu.T1)
	test.ExpectEquality(t, b.Parameters().Constant.Uint(), uint32(0x5a))
	test.ExpectEquality(t, b.Stats.Fetches, 1)

	// T1 of the write drives DS:DI
	b.Clock()
	test.ExpectEquality(t, sig.address, uint32(0x00000))
	test.ExpectSuccess(t, sig.ale)

	// fetched byte is on the data lines for T2 and T3
	b.Clock()
	test.ExpectEquality(t, sig.address&0xff, uint32(0x5a))
	test.ExpectFailure(t, sig.wr)
	b.Clock()
	test.ExpectEquality(t, sig.address&0xff, uint32(0x5a))
	test.ExpectSuccess(t, sig.wr)

	// T4 of the write
	b.Clock()
	test.ExpectEquality(t, b.Active().String(), "fetch")
	test.ExpectEquality(t, b.State(), biu.T1)
	test.ExpectEquality(t, b.Queue.Len(), 0)
	test.ExpectEquality(t, b.Stats.Writes, 1)

	// the next fetch is from the incremented IP
	b.Clock()
	test.ExpectEquality(t, sig.address, uint32(0xffff1))
}

func TestEmptyQueueHandoff(t *testing.T) {
	b, _, sig := newBIU()
	sig.data = 0x77

	// empty the queue behind the fetch's back before T4
	clocks(b, 3)
	_, ok := b.Queue.Pop()
	test.ExpectSuccess(t, ok)

	b.Clock()
	test.ExpectEquality(t, b.Active().String(), "write")
	test.ExpectEquality(t, b.Parameters().Constant.Uint(), uint32(0x00))
}

func TestALEFraming(t *testing.T) {
	b, _, sig := newBIU()

	for i := 0; i < 64; i++ {
		// introduce some wait states
		sig.ready = i%5 != 0

		state := b.State()
		b.Clock()
		test.ExpectEquality(t, sig.ale, state == biu.T1, i, state, b.Active())
	}
}

func TestString(t *testing.T) {
	b, _, sig := newBIU()
	test.ExpectEquality(t, b.String(), "fetch T1")
	sig.ready = false
	clocks(b, 3)
	test.ExpectEquality(t, b.String(), "fetch T3 (Tw)")
}

func TestQueue(t *testing.T) {
	var q biu.Queue
	test.ExpectEquality(t, q.String(), "empty")

	for _, v := range []uint32{0x01, 0x02, 0x03} {
		q.Push(bitvector.FromUint(v, 8))
	}
	test.ExpectEquality(t, q.Len(), 3)
	test.ExpectEquality(t, q.String(), "01 02 03")

	for _, v := range []uint32{0x01, 0x02, 0x03} {
		e, ok := q.Pop()
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, e.Uint(), v)
	}
	_, ok := q.Pop()
	test.ExpectFailure(t, ok)

	q.Push(bitvector.FromUint(0xff, 8))
	q.Clear()
	test.ExpectEquality(t, q.Len(), 0)
}

func TestTState(t *testing.T) {
	test.ExpectEquality(t, biu.T1.String(), "T1")
	test.ExpectEquality(t, biu.T4.String(), "T4")
	test.ExpectEquality(t, biu.Tw.String(), "Tw")
	test.ExpectEquality(t, biu.Ti.String(), "Ti")
	test.ExpectEquality(t, biu.TState(99).String(), "T(99)")
}
