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

// Package logger is the central log repository for gopher8088. There is a
// single central log, accessed through the package level functions. Separate
// instances of the Logger type can be created with NewLogger() but this is
// mostly useful for testing.
//
// Every log call takes a Permission argument. The environment.Environment
// type implements the Permission interface and should be used whenever
// possible. The Allow value can be used where an environment is not
// available.
//
// Adjacent entries with the same tag and detail are folded into a single
// entry with a repeat count. The log has a maximum number of entries, after
// which the oldest entries are discarded.
package logger
