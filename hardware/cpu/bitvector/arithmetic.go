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

// Add two vectors modulo 2^length. The result is exactly length bits long and
// shares no storage with either argument.
func Add(a BitVector, b BitVector, length int) BitVector {
	sum := a.Truncate(length)
	sum.XOR(b.Truncate(length))

	carry := a.Truncate(length)
	carry.AND(b)

	for !carry.IsZero() {
		carry.ShiftLeft(length)
		oldSum := sum.Clone()
		sum.XOR(carry)
		carry.AND(oldSum)
	}

	return sum.Truncate(length)
}

// one is the vector used by Increment().
var one = BitVector{true}

// Increment returns the vector plus one, modulo 2^length.
func Increment(v BitVector, length int) BitVector {
	return Add(v, one, length)
}
