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

// Package cpu emulates the bus side of the 8088 microprocessor. The CPU type
// owns the register file and the bus interface unit (see the biu package) and
// reacts to changes of the CLK and RESET inputs.
//
// The CPU is driven entirely by rising edges. A rising edge of CLK advances
// the BIU by one T-state. A rising edge of RESET returns the BIU and the
// registers to their boot state. If both inputs rise at the same time then
// reset takes priority and the clock edge is ignored:
//
//	mc := cpu.NewCPU(env, cpu.Min, sig)
//
//	// one clock edge
//	mc.InputChange(false, true)
//
//	// a reset and a clock edge together is just a reset
//	mc.InputChange(true, true)
//
// The sig argument is an implementation of the biu.Signals interface. The
// hardware/pins package provides a suitable implementation.
//
// The CPU can be constructed in one of two modes. In Max mode the 8088 is
// intended to be used with an external bus controller but the mode does not
// currently change the behaviour of the CPU in any way. The mode survives a
// reset.
package cpu
