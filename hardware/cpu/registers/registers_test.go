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

package registers_test

import (
	"testing"

	"github.com/gopher8088/gopher8088/hardware/cpu/bitvector"
	"github.com/gopher8088/gopher8088/hardware/cpu/registers"
	"github.com/gopher8088/gopher8088/test"
)

func TestNewRegisters(t *testing.T) {
	r := registers.NewRegisters()
	for n := registers.AX; n < registers.NumRegisters; n++ {
		v := r.Get(n)
		test.ExpectEquality(t, v.Len(), registers.Width, n)
		test.ExpectSuccess(t, v.IsZero(), n)
	}
}

func TestReset(t *testing.T) {
	r := registers.NewRegisters()
	r.Load(registers.AX, bitvector.FromUint(0x1234, 16))
	r.Load(registers.IP, bitvector.FromUint(0x0042, 16))
	r.Reset()
	test.ExpectEquality(t, r.Get(registers.CS).Uint(), uint32(0xffff))
	test.ExpectEquality(t, r.Get(registers.IP).Uint(), uint32(0x0000))

	// other registers are not affected by reset
	test.ExpectEquality(t, r.Get(registers.AX).Uint(), uint32(0x1234))

	test.ExpectEquality(t, r.Address(registers.CS, registers.IP).Uint(), uint32(0xffff0))
}

func TestLoadWidth(t *testing.T) {
	r := registers.NewRegisters()

	// wider values are truncated
	r.Load(registers.BX, bitvector.FromUint(0xabcde, 20))
	test.ExpectEquality(t, r.Get(registers.BX).Uint(), uint32(0xbcde))
	test.ExpectEquality(t, r.Get(registers.BX).Len(), registers.Width)

	// narrower values are padded
	r.Load(registers.CX, bitvector.FromUint(0xff, 8))
	test.ExpectEquality(t, r.Get(registers.CX).Uint(), uint32(0x00ff))
	test.ExpectEquality(t, r.Get(registers.CX).Len(), registers.Width)
}

func TestNoAliasing(t *testing.T) {
	r := registers.NewRegisters()
	v := bitvector.FromUint(0x00ff, 16)
	r.Load(registers.DX, v)

	// changing the loaded vector does not change the register
	v.SetBit(15, true)
	test.ExpectEquality(t, r.Get(registers.DX).Uint(), uint32(0x00ff))

	// changing the returned vector does not change the register
	g := r.Get(registers.DX)
	g.SetBit(14, true)
	test.ExpectEquality(t, r.Get(registers.DX).Uint(), uint32(0x00ff))
}

func TestNames(t *testing.T) {
	test.ExpectEquality(t, registers.FLAGS.String(), "FLAGS")
	test.ExpectEquality(t, registers.Name(99).String(), "register(99)")

	n, ok := registers.ParseName("ds")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, registers.DS)

	_, ok = registers.ParseName("XX")
	test.ExpectFailure(t, ok)
}

func TestString(t *testing.T) {
	r := registers.NewRegisters()
	r.Reset()
	test.ExpectEquality(t, r.String(),
		"AX=0000 BX=0000 CX=0000 DX=0000 SP=0000 BP=0000 SI=0000 DI=0000 "+
			"ES=0000 CS=ffff SS=0000 DS=0000 IP=0000 FLAGS=0000")
}
