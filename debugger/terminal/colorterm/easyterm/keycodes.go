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

package easyterm

// list of ASCII codes for non-alphanumeric characters
const (
	KeyInterrupt      = 3  // end-of-text character
	KeyEOF            = 4  // end-of-transmission character
	KeyBackspace      = 8  // backspace
	KeyTab            = 9  // horizontal tab
	KeyLineFeed       = 10 // line feed
	KeyCarriageReturn = 13 // carriage return
	KeySuspend        = 26 // substitute character
	KeyEsc            = 27 // escape
	KeyDelete         = 127
)
