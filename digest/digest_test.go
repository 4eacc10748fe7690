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

package digest_test

import (
	"testing"

	"github.com/gopher8088/gopher8088/digest"
	"github.com/gopher8088/gopher8088/hardware"
	"github.com/gopher8088/gopher8088/hardware/cpu"
	"github.com/gopher8088/gopher8088/test"
)

func run(t *testing.T, clocks int, waitStates int, image []uint8) string {
	t.Helper()

	mb, err := hardware.NewMotherboard(nil, cpu.Min)
	test.DemandSuccess(t, err)
	mb.Mem.WaitStates = waitStates
	test.DemandSuccess(t, mb.Mem.Load(0xffff0, image))

	dig := digest.NewDigest()
	mb.AddRecorder(dig)
	test.DemandSuccess(t, mb.Run(clocks, nil))
	test.DemandSuccess(t, mb.EndRecording())

	return dig.Hash()
}

func TestDigest(t *testing.T) {
	image := []uint8{0x01, 0x02, 0x03, 0x04}

	// same run produces the same digest. the number of clocks is large
	// enough for more than one block
	a := run(t, 1000, 0, image)
	b := run(t, 1000, 0, image)
	test.ExpectEquality(t, a, b)
	test.ExpectEquality(t, len(a), 40)

	// different memory, wait states and lengths all produce a different digest
	test.ExpectInequality(t, a, run(t, 1000, 0, []uint8{0x01, 0x02, 0x03, 0x05}))
	test.ExpectInequality(t, a, run(t, 1000, 1, image))
	test.ExpectInequality(t, a, run(t, 999, 0, image))
}

func TestEmptyDigest(t *testing.T) {
	dig := digest.NewDigest()
	test.ExpectEquality(t, dig.Hash(), "0000000000000000000000000000000000000000")

	// hashing twice with no new data is the same
	test.DemandSuccess(t, dig.RecordState(hardware.State{Address: 0xffff0}))
	h := dig.Hash()
	test.ExpectEquality(t, dig.Hash(), h)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), "0000000000000000000000000000000000000000")
}
