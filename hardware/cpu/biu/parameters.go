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

import (
	"fmt"
	"strings"

	"github.com/gopher8088/gopher8088/hardware/cpu/bitvector"
	"github.com/gopher8088/gopher8088/hardware/cpu/registers"
)

// Parameters is the information passed from one transaction to the next.
// Only the fields relevant to the next transaction are populated and a
// transaction must not read any other field. A nil BitVector indicates an
// unpopulated field.
type Parameters struct {
	SourceSegment bitvector.BitVector
	SourceOffset  bitvector.BitVector
	DestSegment   bitvector.BitVector
	DestOffset    bitvector.BitVector

	SourceRegister registers.Name
	DestRegister   registers.Name

	Constant bitvector.BitVector
}

func (p Parameters) String() string {
	s := strings.Builder{}
	field := func(label string, v bitvector.BitVector) {
		if v == nil {
			return
		}
		if s.Len() > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%s=%s", label, v.Hex()))
	}
	field("src", p.SourceSegment)
	field("srcoff", p.SourceOffset)
	field("dst", p.DestSegment)
	field("dstoff", p.DestOffset)
	field("const", p.Constant)
	if s.Len() == 0 {
		return "none"
	}
	return s.String()
}
