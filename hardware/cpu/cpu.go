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

package cpu

import (
	"fmt"
	"strings"

	"github.com/gopher8088/gopher8088/curated"
	"github.com/gopher8088/gopher8088/environment"
	"github.com/gopher8088/gopher8088/hardware/cpu/biu"
	"github.com/gopher8088/gopher8088/hardware/cpu/registers"
	"github.com/gopher8088/gopher8088/logger"
)

// Mode is the mode the CPU was constructed in.
type Mode int

// List of valid Mode values.
const (
	Min Mode = iota
	Max
)

func (m Mode) String() string {
	switch m {
	case Min:
		return "min"
	case Max:
		return "max"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// InvalidMode is returned by ParseMode when the string does not name a mode.
const InvalidMode = "cpu: invalid mode (%s)"

// ParseMode converts a string to a Mode. An empty string is the same as Min.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "min":
		return Min, nil
	case "max":
		return Max, nil
	}
	return Min, curated.Errorf(InvalidMode, s)
}

// CPU implements the bus interface of the 8088.
type CPU struct {
	env  *environment.Environment
	mode Mode

	Regs *registers.Registers
	BIU  *biu.BIU
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// will be in its reset state.
func NewCPU(env *environment.Environment, mode Mode, sig biu.Signals) *CPU {
	mc := &CPU{
		env:  env,
		mode: mode,
		Regs: registers.NewRegisters(),
	}
	mc.BIU = biu.NewBIU(env, mc.Regs, sig)
	return mc
}

func (mc *CPU) String() string {
	return mc.Regs.String()
}

// Mode returns the mode the CPU was constructed in.
func (mc *CPU) Mode() Mode {
	return mc.mode
}

// Reset the CPU to the boot state. CS:IP will point to the boot address and
// the next transaction will be an instruction fetch.
func (mc *CPU) Reset() {
	mc.BIU.Reset()
	logger.Logf(mc.env, "cpu", "reset (%s mode)", mc.mode)
}

// Clock advances the CPU by one T-state. In the case of a wait state the
// T-state will not change.
func (mc *CPU) Clock() {
	mc.BIU.Clock()
}

// InputChange should be called with the rising edges of the RESET and CLK
// inputs. A rising RESET is handled first and if it is present then the clock
// edge is discarded.
func (mc *CPU) InputChange(reset bool, clock bool) {
	if reset {
		mc.Reset()
		return
	}
	if clock {
		mc.Clock()
	}
}
