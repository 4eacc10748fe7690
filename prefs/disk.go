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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gopher8088/gopher8088/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separates key and value in the preferences file.
const keySep = " :: "

// Sentinel errors returned by the Disk type.
const (
	NoPrefsFile     = "prefs: no preferences file (%v)"
	DuplicateKey    = "prefs: key already exists (%s)"
	PrefsFileFailed = "prefs: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load to/from disk.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all values to their defaults.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(PrefsFileFailed, err)
		}
	}
	return nil
}

// read all entries in the preferences file. the file not existing is not an
// error condition and an empty map will be returned.
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return data, curated.Errorf(PrefsFileFailed, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// first line must be the boiler plate
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return data, curated.Errorf(PrefsFileFailed, "not a valid preferences file")
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) != 2 {
			continue
		}
		data[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	if err := scanner.Err(); err != nil {
		return data, curated.Errorf(PrefsFileFailed, err)
	}

	return data, nil
}

// Save current preference values to disk. Entries in the file that are not
// part of this Disk instance are preserved.
func (dsk *Disk) Save() (rerr error) {
	data, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(PrefsFileFailed, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = curated.Errorf(PrefsFileFailed, err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, data[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(PrefsFileFailed, err)
	}

	return nil
}

// Load preference values from disk. If limit is true then values that fail
// to set are ignored rather than causing an error.
func (dsk *Disk) Load(limit bool) error {
	data, err := dsk.read()
	if err != nil {
		return err
	}

	for _, k := range dsk.keys() {
		v, ok := data[k]
		if !ok {
			continue
		}
		if err := dsk.entries[k].Set(v); err != nil && !limit {
			return curated.Errorf(PrefsFileFailed, err)
		}
	}

	return nil
}
