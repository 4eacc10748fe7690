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

// Package registers implements the register file of the 8088. There are
// fourteen registers, each sixteen bits wide:
//
//	general purpose:  AX BX CX DX
//	pointer & index:  SP BP SI DI
//	segment:          ES CS SS DS
//	special:          IP FLAGS
//
// Register values are held as bitvector.BitVector values. The register file
// never hands out references to its storage: Get() returns a copy and Load()
// stores a copy, truncated or padded to sixteen bits.
package registers
