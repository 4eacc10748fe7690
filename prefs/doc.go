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

// Package prefs facilitates the storage of preferential values in the
// Gopher8088 system. It is intended to be used to store user preferences
// but can be used for any value that needs to be stored on disk between
// sessions.
//
// The Disk type collates values of the Bool, Int and String types. Each
// value is associated with a key and saved to a file in the following
// format:
//
//	key :: value
//
// Keys are saved in alphabetical order. Entries in the file that have not
// been added to the Disk instance are preserved when Save() is called. This
// means that more than one Disk instance can share the same preferences file.
//
// Values can have pre and post hooks. These are functions that are called
// just before and just after the value is changed. A pre hook can prevent
// the value from changing by returning an error.
package prefs
