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

// Package addressing implements the physical address unit of the bus
// interface unit. A physical address is formed from a 16 bit segment and a 16
// bit offset:
//
//	physical = (segment * 16 + offset) mod 2^20
//
// The multiplication is performed by four single bit shifts of the segment,
// the modulus of each shift being wide enough to keep the bits being shifted
// out of the 16 bit range. The addition uses the carry propagating adder in
// the bitvector package.
package addressing

import (
	"github.com/gopher8088/gopher8088/hardware/cpu/bitvector"
)

// Width is the number of bits in a physical address.
const Width = 20

// SegmentShift is the number of bits the segment is shifted before the offset
// is added.
const SegmentShift = 4

// Compose combines a segment and an offset into a 20 bit physical address.
// The segment and offset vectors are not modified.
func Compose(segment bitvector.BitVector, offset bitvector.BitVector) bitvector.BitVector {
	address := segment.Truncate(Width - SegmentShift)
	for i := 1; i <= SegmentShift; i++ {
		address.ShiftLeft(Width - SegmentShift + i)
	}
	return bitvector.Add(address, offset, Width)
}
