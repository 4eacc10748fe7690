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

// Package memory implements a one megabyte memory device that answers the
// bus transactions of the 8088.
//
// The memory is not clocked. Instead, the Service() function should be called
// once after every change to the output pins of the CPU (in practice, after
// every rising clock edge). The memory reacts to the current state of the bus:
//
//   - when ALE is high the address lines are latched
//   - when RD is low the byte at the latched address is driven onto the data
//     input lines
//   - when RD or WR is low, READY is raised once the configured number of wait
//     states have passed
//   - when WR goes from low to high the byte on the data output lines is
//     committed to the latched address
//
// The HoldReady() function keeps READY low regardless of the number of wait
// states. This is useful for exercising indefinite wait states.
//
// The DebuggerBus functions, Peek() and Poke(), access memory outside of the
// normal operation of the bus.
package memory
