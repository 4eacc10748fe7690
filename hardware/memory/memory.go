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

package memory

import (
	"fmt"
	"strings"

	"github.com/gopher8088/gopher8088/curated"
	"github.com/gopher8088/gopher8088/environment"
	"github.com/gopher8088/gopher8088/hardware/cpu/bitvector"
	"github.com/gopher8088/gopher8088/logger"
)

// Size of memory in bytes.
const Size = 1 << 20

// mask applied to every address.
const addressMask = Size - 1

// AddressOutOfRange is returned when data cannot fit in memory.
const AddressOutOfRange = "memory: address out of range (%#x)"

// Bus defines the operations on the pins required by the Memory type.
type Bus interface {
	ALE() bool
	ReadActive() bool
	WriteActive() bool
	Address() bitvector.BitVector
	SetDataIn(data bitvector.BitVector)
	SetReady(level bool)
}

// DebuggerBus defines the meta-operations for memory. Operations outside of
// the normal operation of the machine.
type DebuggerBus interface {
	Peek(address uint32) (uint8, error)
	Poke(address uint32, value uint8) error
}

// Memory is a flat one megabyte address space.
type Memory struct {
	env  *environment.Environment
	data []uint8

	// number of wait states for every read or write transaction
	WaitStates int

	holdReady bool

	// the address latched when ALE was last high
	latched uint32

	// the number of services with RD or WR active since the address was
	// latched
	waitCount int

	// whether WR was active during the previous service
	writing bool

	// number of bytes committed by a write transaction
	Writes int
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(env *environment.Environment) *Memory {
	return &Memory{
		env:  env,
		data: make([]uint8, Size),
	}
}

// Reset the bus state of the memory. The contents of memory are not changed.
func (mem *Memory) Reset() {
	mem.latched = 0
	mem.waitCount = 0
	mem.writing = false
	mem.Writes = 0
}

// HoldReady forces READY low when hold is true.
func (mem *Memory) HoldReady(hold bool) {
	mem.holdReady = hold
}

// Holding returns true if READY is being held low.
func (mem *Memory) Holding() bool {
	return mem.holdReady
}

// Latched returns the most recently latched address.
func (mem *Memory) Latched() uint32 {
	return mem.latched
}

// Service the bus. Should be called after every change to the output pins.
func (mem *Memory) Service(bus Bus) {
	if bus.ALE() {
		mem.latched = bus.Address().Uint() & addressMask
		mem.waitCount = 0
	}

	reading := bus.ReadActive()
	writing := bus.WriteActive()

	if reading {
		bus.SetDataIn(bitvector.FromUint(uint32(mem.data[mem.latched]), 8))
	}

	if reading || writing {
		bus.SetReady(!mem.holdReady && mem.waitCount >= mem.WaitStates)
		mem.waitCount++
	} else {
		bus.SetReady(!mem.holdReady)
	}

	// the write is committed when WR is de-asserted
	if mem.writing && !writing {
		v := uint8(bus.Address().Truncate(8).Uint())
		mem.data[mem.latched] = v
		mem.Writes++
		logger.Logf(mem.env, "memory", "write %02x to %05x", v, mem.latched)
	}
	mem.writing = writing
}

// Peek implements the DebuggerBus interface.
func (mem *Memory) Peek(address uint32) (uint8, error) {
	if address > addressMask {
		return 0, curated.Errorf(AddressOutOfRange, address)
	}
	return mem.data[address], nil
}

// Poke implements the DebuggerBus interface.
func (mem *Memory) Poke(address uint32, value uint8) error {
	if address > addressMask {
		return curated.Errorf(AddressOutOfRange, address)
	}
	mem.data[address] = value
	return nil
}

// Load data into memory at the origin address. The data must fit in memory
// without wrapping.
func (mem *Memory) Load(origin uint32, data []uint8) error {
	if origin > addressMask || uint64(origin)+uint64(len(data)) > Size {
		return curated.Errorf(AddressOutOfRange, uint64(origin)+uint64(len(data)))
	}
	copy(mem.data[origin:], data)
	return nil
}

// Dump returns a hex dump of the sixteen byte lines that contain the address
// range.
func (mem *Memory) Dump(from uint32, to uint32) string {
	from &= addressMask &^ 0x0f
	to &= addressMask

	s := strings.Builder{}
	s.WriteString("        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	for a := from; a <= to; a += 16 {
		s.WriteString(fmt.Sprintf("%05x | ", a))
		for x := uint32(0); x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[a+x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}
