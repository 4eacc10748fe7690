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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package but the pattern is remembered and
// the formatting is deferred until the Error() function is called. The
// pattern is used to differentiate curated errors. For example:
//
//	const UnexpectedPinCount = "pins: expecting %d inputs and %d outputs"
//
//	e := curated.Errorf(UnexpectedPinCount, 11, 23)
//
//	if curated.Is(e, UnexpectedPinCount) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("motherboard: %v", e)
//
//	curated.Has(f, UnexpectedPinCount) // true
//	curated.Is(f, UnexpectedPinCount)  // false
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not begin with
// duplicate adjacent parts. For the purposes of this package we think of
// chains as being composed of parts separated by the sub-string ': '. For
// example:
//
//	part 1: part 2: part 3
//
// Sentinel patterns should be stored as a const string, suitably named and
// commented, in the package that returns them.
package curated
