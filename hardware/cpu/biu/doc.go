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

// Package biu implements the bus interface unit of the 8088. The bus
// interface unit turns register state into timed sequences of address, data
// and control signals, one clock edge at a time.
//
// Every bus transaction is four T-states long:
//
//	T1	the address is driven onto the bus and ALE is asserted
//	T2	ALE is de-asserted and RD or WR is asserted
//	T3	data is transferred once the READY input is asserted
//	T4	the transaction completes
//
// If READY is not asserted during T3 then the transaction holds at T3 and
// is tried again on the next clock edge. This is a wait state. The wait
// state is not a separate stored T-state; it is the result of a transaction
// declining to advance. There is no timeout and a READY input that never
// asserts is a valid steady state.
//
// The work of a transaction is implemented by a type that satisfies the
// Transaction interface. There are currently two transactions: the fetch of
// the next instruction byte and the write of a value to main memory. Each
// transaction hands off to the other when it completes. The handoff is
// requested by the transaction but it is the sequencer (the BIU type) that
// replaces the active transaction.
//
// The BIU drives and samples the outside world through the Signals
// interface. RD and WR are active low.
package biu
