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

package environment_test

import (
	"path/filepath"
	"testing"

	"github.com/gopher8088/gopher8088/environment"
	"github.com/gopher8088/gopher8088/hardware/preferences"
	"github.com/gopher8088/gopher8088/logger"
	"github.com/gopher8088/gopher8088/test"
)

func TestEnvironment(t *testing.T) {
	prefs, err := preferences.NewPreferencesAt(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	main, err := environment.NewEnvironment(environment.MainEmulation, prefs)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, main.IsMainEmulation())
	test.ExpectSuccess(t, main.AllowLogging())

	trace, err := environment.NewEnvironment("trace", prefs)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, trace.IsMainEmulation())
	test.ExpectSuccess(t, trace.IsEmulation("trace"))
	test.ExpectFailure(t, trace.AllowLogging())

	// the two environments share preferences
	test.DemandSuccess(t, main.Prefs.WaitStates.Set(3))
	test.ExpectEquality(t, trace.Prefs.WaitStates.Get().(int), 3)

	main.Normalise()
	test.ExpectEquality(t, trace.Prefs.WaitStates.Get().(int), 0)
	test.ExpectEquality(t, trace.Prefs.Mode.String(), "min")

	var nilEnv *environment.Environment
	var perm logger.Permission = nilEnv
	test.ExpectSuccess(t, perm.AllowLogging())
}
