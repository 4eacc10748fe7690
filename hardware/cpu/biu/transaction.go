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

package biu

import (
	"github.com/gopher8088/gopher8088/hardware/cpu/addressing"
	"github.com/gopher8088/gopher8088/hardware/cpu/bitvector"
	"github.com/gopher8088/gopher8088/hardware/cpu/registers"
)

// Transaction is implemented by each type of bus transaction. Only one
// transaction is active at any time.
type Transaction interface {
	// Advance performs the work for the current T-state. Returns true if the
	// sequencer should move to the next T-state and false if the transaction
	// must hold at the current T-state (a wait state).
	//
	// The parameters are those handed over by the previous transaction.
	Advance(params *Parameters) bool

	String() string
}

// FetchNextInstruction reads the byte at CS:IP into the instruction queue.
type FetchNextInstruction struct {
	biu *BIU
}

func (fetch *FetchNextInstruction) String() string {
	return "fetch"
}

// Advance implements the Transaction interface.
func (fetch *FetchNextInstruction) Advance(params *Parameters) bool {
	b := fetch.biu

	switch b.state {
	case T1:
		b.sig.DriveAddress(b.regs.Address(registers.CS, registers.IP))
		b.sig.SetALE(true)

	case T2:
		b.sig.SetALE(false)
		b.sig.DriveData(bitvector.New(dataWidth))
		b.sig.SetRD(false)

	case T3:
		if !b.sig.Ready() {
			return false
		}
		b.Queue.Push(b.sig.DataIn().Truncate(dataWidth))
		b.sig.SetRD(true)

	case T4:
		b.regs.Load(registers.IP, bitvector.Increment(b.regs.Get(registers.IP), registers.Width))

		// the write that follows every fetch is to DS:DI, both of which are
		// zeroed for the purpose
		b.regs.Load(registers.DS, bitvector.New(registers.Width))
		b.regs.Load(registers.DI, bitvector.New(registers.Width))

		constant, ok := b.Queue.Pop()
		if !ok {
			constant = bitvector.New(dataWidth)
		}

		*params = Parameters{
			DestSegment: b.regs.Get(registers.DS),
			DestOffset:  b.regs.Get(registers.DI),
			Constant:    constant,
		}

		b.handoff(&WriteMainMemory{biu: b})
	}

	return true
}

// WriteMainMemory writes the parameter constant to the address made from the
// parameter destination segment and offset.
type WriteMainMemory struct {
	biu *BIU
}

func (write *WriteMainMemory) String() string {
	return "write"
}

// Advance implements the Transaction interface.
func (write *WriteMainMemory) Advance(params *Parameters) bool {
	b := write.biu

	switch b.state {
	case T1:
		b.sig.DriveAddress(addressing.Compose(params.DestSegment, params.DestOffset))
		b.sig.SetALE(true)

	case T2:
		b.sig.SetALE(false)
		b.sig.DriveData(params.Constant.Truncate(dataWidth))
		b.sig.SetWR(false)

	case T3:
		if !b.sig.Ready() {
			return false
		}
		b.sig.SetWR(true)

	case T4:
		b.handoff(&FetchNextInstruction{biu: b})
	}

	return true
}
