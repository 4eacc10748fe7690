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

import "github.com/gopher8088/gopher8088/hardware/cpu/bitvector"

// Signals is the external boundary of the BIU. Functions that drive outputs
// take the pin level rather than whether the signal is asserted. In
// particular, RD and WR are active low so SetRD(false) asserts the read
// signal.
type Signals interface {
	// drive the 20 bit address onto the address lines
	DriveAddress(address bitvector.BitVector)

	// drive the data onto the data lines. the data lines are shared with the
	// low eight address lines
	DriveData(data bitvector.BitVector)

	SetALE(level bool)
	SetRD(level bool)
	SetWR(level bool)

	// the current state of the eight data input lines
	DataIn() bitvector.BitVector

	// the current state of the READY input
	Ready() bool
}
