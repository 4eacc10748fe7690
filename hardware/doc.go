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

// Package hardware is the base package for the 8088 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Motherboard type is the root of the emulation and contains external
// references to all the components: the CPU, the pins and the memory. The
// CPU only sees the pins. The memory is serviced by the motherboard after
// every clock edge and responds by driving the data and READY inputs.
//
// A clock pulse is a rising edge followed by a falling edge of the CLK input.
// Only the rising edge has an effect on the CPU:
//
//	mb, _ := hardware.NewMotherboard(env, cpu.Min)
//	mb.Pulse()
//
// Reset() pulses the RESET input in the same way.
package hardware
