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

package preferences

import (
	"fmt"
	"strings"

	"github.com/gopher8088/gopher8088/curated"
	"github.com/gopher8088/gopher8088/paths"
	"github.com/gopher8088/gopher8088/prefs"
)

// Sentinel errors returned when a preference is set to an unusable value.
const (
	InvalidModePref      = "preferences: invalid mode (%s)"
	InvalidWaitStatePref = "preferences: wait states must be between 0 and %d (got %d)"
)

// MaxWaitStates is the largest number of wait states that can be requested
// through the preferences system.
const MaxWaitStates = 255

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the mode the CPU is constructed in. either "min" or "max"
	Mode prefs.String

	// the number of wait states inserted by main memory on every bus
	// transaction
	WaitStates prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the preferences file in the resource path.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesAt(pth)
}

// NewPreferencesAt is the same as NewPreferences except that the location of
// the preferences file is specified.
func NewPreferencesAt(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Mode.SetHookPre(func(v prefs.Value) error {
		switch strings.ToLower(fmt.Sprintf("%v", v)) {
		case "min", "max":
			return nil
		}
		return curated.Errorf(InvalidModePref, v)
	})

	p.WaitStates.SetHookPre(func(v prefs.Value) error {
		n := v.(int)
		if n < 0 || n > MaxWaitStates {
			return curated.Errorf(InvalidWaitStatePref, MaxWaitStates, n)
		}
		return nil
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.mode", &p.Mode)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.waitstates", &p.WaitStates)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware settings to default values.
func (p *Preferences) SetDefaults() {
	// hooks are not set when SetDefaults() is called from NewPreferencesAt()
	// and the default values are valid in any case
	_ = p.Mode.Set("min")
	_ = p.WaitStates.Set(0)
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
