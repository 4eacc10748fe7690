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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopher8088/gopher8088/curated"
	"github.com/gopher8088/gopher8088/prefs"
	"github.com/gopher8088/gopher8088/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("error reading prefs file: %v", err)
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	test.ExpectFailure(t, v.Set(10))
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "foo :: bar\n")
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	var v, w prefs.Bool
	test.ExpectSuccess(t, dsk.Add("key", &v))
	err = dsk.Add("key", &w)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))
}

func TestLoadAndPreserve(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	// loading from a missing file reports NoPrefsFile
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var mode prefs.String
	test.ExpectSuccess(t, dsk.Add("hardware.mode", &mode))
	err = dsk.Load(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, mode.Set("max"))
	test.DemandSuccess(t, dsk.Save())

	// a second disk sharing the same file
	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var wait prefs.Int
	test.ExpectSuccess(t, dskB.Add("hardware.waitstates", &wait))
	test.ExpectSuccess(t, wait.Set(3))
	test.DemandSuccess(t, dskB.Save())

	cmpFile(t, fn, "hardware.mode :: max\nhardware.waitstates :: 3\n")

	// reload into fresh values
	dskC, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var modeC prefs.String
	var waitC prefs.Int
	test.ExpectSuccess(t, dskC.Add("hardware.mode", &modeC))
	test.ExpectSuccess(t, dskC.Add("hardware.waitstates", &waitC))
	test.DemandSuccess(t, dskC.Load(false))
	test.ExpectEquality(t, modeC.String(), "max")
	test.ExpectEquality(t, waitC.Get().(int), 3)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// pre hook prevents the change
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
}
