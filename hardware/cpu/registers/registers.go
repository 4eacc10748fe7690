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

package registers

import (
	"fmt"
	"strings"

	"github.com/gopher8088/gopher8088/hardware/cpu/addressing"
	"github.com/gopher8088/gopher8088/hardware/cpu/bitvector"
)

// Width is the number of bits in every register.
const Width = 16

// Name identifies a register in the register file.
type Name int

// List of valid Name values.
const (
	AX Name = iota
	BX
	CX
	DX
	SP
	BP
	SI
	DI
	ES
	CS
	SS
	DS
	IP
	FLAGS

	// the number of registers in the register file
	NumRegisters
)

var names = [NumRegisters]string{
	"AX", "BX", "CX", "DX",
	"SP", "BP", "SI", "DI",
	"ES", "CS", "SS", "DS",
	"IP", "FLAGS",
}

func (n Name) String() string {
	if n < 0 || n >= NumRegisters {
		return fmt.Sprintf("register(%d)", int(n))
	}
	return names[n]
}

// ParseName returns the register with the specified name. The comparison is
// case insensitive.
func ParseName(s string) (Name, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return Name(i), true
		}
	}
	return AX, false
}

// The boot address loaded into CS:IP on reset.
const (
	BootSegment = 0xffff
	BootOffset  = 0x0000
)

// Registers is the register file of the CPU.
type Registers struct {
	regs [NumRegisters]bitvector.BitVector
}

// NewRegisters is the preferred method of initialisation for the Registers
// type. All registers are zero.
func NewRegisters() *Registers {
	r := &Registers{}
	for i := range r.regs {
		r.regs[i] = bitvector.New(Width)
	}
	return r
}

// Reset loads the boot address into CS and IP. Other registers are not
// affected.
func (r *Registers) Reset() {
	r.regs[CS] = bitvector.FromUint(BootSegment, Width)
	r.regs[IP] = bitvector.FromUint(BootOffset, Width)
}

// Get returns a copy of the named register.
func (r *Registers) Get(n Name) bitvector.BitVector {
	return r.regs[n].Clone()
}

// Load a value into the named register. The value is copied and truncated or
// padded to the width of the register.
func (r *Registers) Load(n Name, v bitvector.BitVector) {
	r.regs[n] = v.Truncate(Width)
}

// Address returns the physical address formed by the two named registers.
func (r *Registers) Address(segment Name, offset Name) bitvector.BitVector {
	return addressing.Compose(r.regs[segment], r.regs[offset])
}

func (r *Registers) String() string {
	s := strings.Builder{}
	for i := range r.regs {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%s=%s", Name(i), r.regs[i].Hex()))
	}
	return s.String()
}
