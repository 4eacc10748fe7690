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

// Package bitvector implements the fixed-width arithmetic used by the bus
// interface unit. Values are held as a slice of bits, the bit at index zero
// being the least significant, and every operation is built from boolean
// operations on those bits. There is no reliance on the native integer types
// of the host for any arithmetic.
//
// The Add() function is the most important function in the package. It adds
// two vectors using iterative carry propagation:
//
//	sum = a XOR b
//	carry = a AND b
//	while carry is not zero:
//		shift carry left by one, discarding bits at or beyond length
//		newSum = sum XOR carry
//		carry = carry AND sum
//		sum = newSum
//
// Every pass of the loop moves the surviving carry bits at least one place
// closer to the discard position so the loop always terminates, in the worst
// case after length passes.
//
// Overflow is silent. A result is always reduced modulo 2^length and this is
// the defined behaviour for addresses as well as for data.
//
// Conversion to and from the host integer types is provided by FromUint() and
// Uint() for the benefit of the host program and tests. The conversion
// functions are not used by the arithmetic.
package bitvector
