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

package terminal_test

import (
	"testing"

	"github.com/gopher8088/gopher8088/debugger/terminal"
	"github.com/gopher8088/gopher8088/test"
)

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{Content: " fetch T1 "}
	test.ExpectEquality(t, p.String(), "[ fetch T1 ] >> ")
	p.Waiting = true
	test.ExpectEquality(t, p.String(), "[ fetch T1 ] .. ")
}
