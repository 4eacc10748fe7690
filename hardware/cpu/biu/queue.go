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
	"strings"

	"github.com/gopher8088/gopher8088/hardware/cpu/bitvector"
)

// Queue is the instruction queue. Bytes are consumed in the order they were
// fetched.
type Queue struct {
	entries []bitvector.BitVector
}

// Push a copy of the value onto the end of the queue.
func (q *Queue) Push(v bitvector.BitVector) {
	q.entries = append(q.entries, v.Clone())
}

// Pop the value at the front of the queue. Returns false if the queue is
// empty.
func (q *Queue) Pop() (bitvector.BitVector, bool) {
	if len(q.entries) == 0 {
		return nil, false
	}
	v := q.entries[0]
	q.entries[0] = nil
	q.entries = q.entries[1:]
	return v, true
}

// Len returns the number of entries in the queue.
func (q *Queue) Len() int {
	return len(q.entries)
}

// Clear the queue of all entries.
func (q *Queue) Clear() {
	q.entries = q.entries[:0]
}

func (q *Queue) String() string {
	if len(q.entries) == 0 {
		return "empty"
	}
	s := make([]string, len(q.entries))
	for i, v := range q.entries {
		s[i] = v.Hex()
	}
	return strings.Join(s, " ")
}
