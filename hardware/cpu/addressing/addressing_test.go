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

package addressing_test

import (
	"testing"

	"github.com/gopher8088/gopher8088/hardware/cpu/addressing"
	"github.com/gopher8088/gopher8088/hardware/cpu/bitvector"
	"github.com/gopher8088/gopher8088/test"
)

func compose(segment, offset uint32) uint32 {
	a := addressing.Compose(bitvector.FromUint(segment, 16), bitvector.FromUint(offset, 16))
	return a.Uint()
}

func TestBootAddress(t *testing.T) {
	test.ExpectEquality(t, compose(0xffff, 0x0000), uint32(0xffff0))
}

func TestCompose(t *testing.T) {
	tests := []struct {
		segment, offset uint32
		physical        uint32
	}{
		{0x0000, 0x0000, 0x00000},
		{0x0000, 0xffff, 0x0ffff},
		{0x1234, 0x5678, 0x179b8},
		{0xb800, 0x0010, 0xb8010},
		{0xffff, 0x000f, 0xfffff},

		// wraps around the top of the 1MiB address space
		{0xffff, 0x0010, 0x00000},
		{0xffff, 0xffff, 0x0ffef},
	}

	for _, tst := range tests {
		test.ExpectEquality(t, compose(tst.segment, tst.offset), tst.physical, tst.segment, tst.offset)
	}
}

func TestComposeLength(t *testing.T) {
	a := addressing.Compose(bitvector.FromUint(0xffff, 16), bitvector.FromUint(0xffff, 16))
	test.ExpectEquality(t, a.Len(), addressing.Width)
}

func TestComposeArgumentsPreserved(t *testing.T) {
	seg := bitvector.FromUint(0x1234, 16)
	off := bitvector.FromUint(0x5678, 16)
	_ = addressing.Compose(seg, off)
	test.ExpectEquality(t, seg.Uint(), uint32(0x1234))
	test.ExpectEquality(t, seg.Len(), 16)
	test.ExpectEquality(t, off.Uint(), uint32(0x5678))
}

func TestComposeReference(t *testing.T) {
	for segment := uint32(0); segment <= 0xffff; segment += 0x00f1 {
		for offset := uint32(0); offset <= 0xffff; offset += 0x0e03 {
			want := (segment*16 + offset) % (1 << addressing.Width)
			if got := compose(segment, offset); got != want {
				t.Fatalf("compose(%#04x, %#04x) = %#05x, want %#05x", segment, offset, got, want)
			}
		}
	}
}
