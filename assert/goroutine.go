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

// Package assert contains functions for checking the invariants of the
// emulation at runtime. The checks are only performed when the assertions
// build tag is present.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identifier for a goroutine. It returns a result
// that is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner is the goroutine that is allowed to change a value.
type Owner uint64

// NewOwner returns an Owner for the current goroutine. If assertions are not
// enabled then the Owner is zero and checks will always pass.
func NewOwner() Owner {
	if !Enabled {
		return 0
	}
	return Owner(GetGoRoutineID())
}

// Check that the current goroutine is the owner. Panics if it is not.
func (o Owner) Check(context string) {
	if !Enabled || o == 0 {
		return
	}
	if id := GetGoRoutineID(); uint64(o) != id {
		panic(fmt.Sprintf("%s: accessed from goroutine %d but owned by goroutine %d", context, id, uint64(o)))
	}
}
