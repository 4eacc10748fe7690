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

import "fmt"

// TState is one phase of a bus transaction.
type TState int

// List of valid TState values. Tw and Ti are named for completeness but are
// never stored as the current state: a wait state is a T3 that didn't advance
// and the idle state is unreachable.
const (
	T1 TState = iota
	T2
	T3
	T4
	Tw
	Ti
)

func (t TState) String() string {
	switch t {
	case T1:
		return "T1"
	case T2:
		return "T2"
	case T3:
		return "T3"
	case T4:
		return "T4"
	case Tw:
		return "Tw"
	case Ti:
		return "Ti"
	}
	return fmt.Sprintf("T(%d)", int(t))
}

// next returns the state that follows a successful advance. T4 wraps to T1.
func (t TState) next() TState {
	if t >= T4 {
		return T1
	}
	return t + 1
}
