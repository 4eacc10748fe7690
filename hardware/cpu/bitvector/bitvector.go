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

package bitvector

import (
	"fmt"
	"strings"
)

type bit bool

// BitVector is an ordered sequence of bits. Index zero is the least
// significant bit. A BitVector can grow as a result of some operations (XOR
// and ShiftLeft) but arithmetic functions always return a vector of the
// declared length.
//
// BitVector has reference semantics like any other slice type. Clone() must
// be used when the original value must be preserved.
type BitVector []bit

// New returns a zeroed BitVector of the specified length.
func New(length int) BitVector {
	return make(BitVector, length)
}

// FromUint creates a BitVector of the specified length from the low bits of
// an unsigned integer.
func FromUint(val uint32, length int) BitVector {
	v := New(length)
	for i := range v {
		v[i] = val&1 == 1
		val >>= 1
	}
	return v
}

// Uint returns the value of the BitVector as an unsigned integer. Bits beyond
// the 32nd are ignored.
func (v BitVector) Uint() uint32 {
	var val uint32
	for i := len(v) - 1; i >= 0; i-- {
		val <<= 1
		if v[i] {
			val |= 1
		}
	}
	return val
}

// String returns the bits of the vector, most significant first.
func (v BitVector) String() string {
	s := strings.Builder{}
	for i := len(v) - 1; i >= 0; i-- {
		if v[i] {
			s.WriteRune('1')
		} else {
			s.WriteRune('0')
		}
	}
	return s.String()
}

// Hex returns the value of the vector formatted as hexadecimal with enough
// digits for the length of the vector.
func (v BitVector) Hex() string {
	digits := (len(v) + 3) / 4
	if digits == 0 {
		digits = 1
	}
	return fmt.Sprintf("%0*x", digits, v.Uint())
}

// Len returns the number of bits in the vector, significant or not.
func (v BitVector) Len() int {
	return len(v)
}

// Bit returns the state of the numbered bit. Bits beyond the length of the
// vector are always false.
func (v BitVector) Bit(i int) bool {
	if i < 0 || i >= len(v) {
		return false
	}
	return bool(v[i])
}

// SetBit sets the numbered bit to the specified state. The vector is grown if
// necessary.
func (v *BitVector) SetBit(i int, b bool) {
	if i < 0 {
		return
	}
	v.grow(i + 1)
	(*v)[i] = bit(b)
}

// grow the vector so that it is at least length bits long.
func (v *BitVector) grow(length int) {
	if len(*v) < length {
		*v = append(*v, make(BitVector, length-len(*v))...)
	}
}

// Clone returns a copy of the vector that shares no storage with the
// original.
func (v BitVector) Clone() BitVector {
	c := make(BitVector, len(v))
	copy(c, v)
	return c
}

// AND the vector with another. Bits missing from the other vector are
// treated as zero. The length of the vector does not change.
func (v *BitVector) AND(b BitVector) {
	for i := range *v {
		(*v)[i] = (*v)[i] && bit(b.Bit(i))
	}
}

// XOR the vector with another. The vector grows to the length of the other
// vector if necessary.
func (v *BitVector) XOR(b BitVector) {
	v.grow(len(b))
	for i := range b {
		(*v)[i] = (*v)[i] != b[i]
	}
}

// ShiftLeft moves every bit up by one position. Bits that arrive at or beyond
// the modulus position are discarded. The vector grows as necessary to hold
// the bits below the modulus position.
func (v *BitVector) ShiftLeft(modulus int) {
	if modulus <= 0 {
		v.clear(0)
		return
	}

	v.grow(modulus)
	if len(*v) > modulus {
		v.clear(modulus)
	}

	copy((*v)[1:modulus], (*v)[:modulus-1])
	(*v)[0] = false
}

// clear all bits from position n upwards.
func (v *BitVector) clear(n int) {
	for i := n; i < len(*v); i++ {
		(*v)[i] = false
	}
}

// IsZero returns true if no bits are set.
func (v BitVector) IsZero() bool {
	for _, b := range v {
		if b {
			return false
		}
	}
	return true
}

// Equal returns true if both vectors represent the same value. The length of
// the vectors does not matter, only the set bits.
func (v BitVector) Equal(b BitVector) bool {
	n := len(v)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if v.Bit(i) != b.Bit(i) {
			return false
		}
	}
	return true
}

// Truncate returns a copy of the vector that is exactly length bits long.
// Bits at or beyond the length are discarded and missing bits are zero.
func (v BitVector) Truncate(length int) BitVector {
	if length < 0 {
		length = 0
	}
	t := New(length)
	copy(t, v)
	return t
}
