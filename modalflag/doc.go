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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of the flag package's Parse() function, Modes.Parse()
// returns a ParseResult which tells the caller whether help was printed, an
// error occurred or whether processing should continue.
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "TRACE")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Printf("* error: %v\n", err)
//		return
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		clocks := md.AddInt("clocks", 100, "number of clocks")
//		...
//	}
//
// The first sub-mode in the list is the default and is selected when the
// first non-flag argument is not a recognised sub-mode. Sub-mode comparisons
// are case insensitive. The Path() function returns the list of modes
// encountered so far, separated by a forward slash.
package modalflag
