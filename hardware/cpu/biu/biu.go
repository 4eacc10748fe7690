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
	"fmt"

	"github.com/gopher8088/gopher8088/environment"
	"github.com/gopher8088/gopher8088/hardware/cpu/registers"
	"github.com/gopher8088/gopher8088/logger"
)

// the number of data lines
const dataWidth = 8

// Stats records activity since the last reset.
type Stats struct {
	// number of clock edges accepted
	Cycles int

	// number of clock edges on which a transaction declined to advance
	WaitStates int

	// number of completed transactions of each type
	Fetches int
	Writes  int
}

// BIU sequences bus transactions one T-state per clock edge.
type BIU struct {
	env  *environment.Environment
	regs *registers.Registers
	sig  Signals

	// the instruction queue
	Queue *Queue

	// parameters handed from one transaction to the next
	params Parameters

	// the active transaction and the transaction that will replace it once
	// the current advance has completed
	active  Transaction
	pending Transaction

	state TState

	// whether the most recent clock edge resulted in a wait state
	waiting bool

	Stats Stats
}

// NewBIU is the preferred method of initialisation for the BIU type. The BIU
// is reset before being returned.
func NewBIU(env *environment.Environment, regs *registers.Registers, sig Signals) *BIU {
	b := &BIU{
		env:   env,
		regs:  regs,
		sig:   sig,
		Queue: &Queue{},
	}
	b.Reset()
	return b
}

func (b *BIU) String() string {
	if b.waiting {
		return fmt.Sprintf("%s %s (%s)", b.active, b.state, Tw)
	}
	return fmt.Sprintf("%s %s", b.active, b.state)
}

// Reset returns the BIU to its power-on state. The fetch transaction becomes
// the active transaction at T1. Reset is idempotent.
func (b *BIU) Reset() {
	b.active = &FetchNextInstruction{biu: b}
	b.pending = nil
	b.params = Parameters{}
	b.state = T1
	b.waiting = false
	b.Stats = Stats{}

	b.sig.SetRD(true)
	b.sig.SetWR(true)
	b.sig.SetALE(false)

	b.Queue.Clear()
	b.regs.Reset()
}

// Clock advances the active transaction by one T-state, if it is able. A
// transaction that is unable to advance leaves the T-state unchanged.
func (b *BIU) Clock() {
	b.Stats.Cycles++

	if !b.active.Advance(&b.params) {
		if !b.waiting {
			logger.Logf(b.env, "biu", "%s: wait state at %s", b.active, b.state)
		}
		b.waiting = true
		b.Stats.WaitStates++
		return
	}
	b.waiting = false

	if b.state == T4 {
		switch b.active.(type) {
		case *FetchNextInstruction:
			b.Stats.Fetches++
		case *WriteMainMemory:
			b.Stats.Writes++
		}
	}

	b.state = b.state.next()

	if b.pending != nil {
		logger.Logf(b.env, "biu", "%s -> %s [%s]", b.active, b.pending, b.params)
		b.active = b.pending
		b.pending = nil
	}
}

// handoff is called by a transaction to request that another transaction
// replaces it.
func (b *BIU) handoff(next Transaction) {
	b.pending = next
}

// State returns the current T-state.
func (b *BIU) State() TState {
	return b.state
}

// Waiting returns true if the most recent clock edge was a wait state.
func (b *BIU) Waiting() bool {
	return b.waiting
}

// Active returns the currently active transaction.
func (b *BIU) Active() Transaction {
	return b.active
}

// Parameters returns a copy of the parameters that will be passed to the next
// transaction.
func (b *BIU) Parameters() Parameters {
	return b.params
}
