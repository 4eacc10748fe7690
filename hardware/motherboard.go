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

package hardware

import (
	"github.com/gopher8088/gopher8088/assert"
	"github.com/gopher8088/gopher8088/environment"
	"github.com/gopher8088/gopher8088/hardware/cpu"
	"github.com/gopher8088/gopher8088/hardware/memory"
	"github.com/gopher8088/gopher8088/hardware/pins"
	"github.com/gopher8088/gopher8088/logger"
)

// Recorder implementations are sent the state of the motherboard after every
// clock pulse.
type Recorder interface {
	RecordState(State) error
	EndRecording() error
}

// Motherboard is the main container for the emulated components.
type Motherboard struct {
	env *environment.Environment

	CPU  *cpu.CPU
	Pins *pins.Pins
	Mem  *memory.Memory

	// number of clock pulses since the last reset
	Clocks uint64

	recorders []Recorder

	// the goroutine that created the motherboard. input changes are only
	// allowed from this goroutine
	owner assert.Owner
}

// NewMotherboard creates a new motherboard and everything associated with the
// hardware. The number of wait states for the memory is taken from the
// environment's preferences.
func NewMotherboard(env *environment.Environment, mode cpu.Mode) (*Motherboard, error) {
	err := pins.Validate(pins.NumInputs, pins.NumOutputs)
	if err != nil {
		return nil, err
	}

	mb := &Motherboard{
		env:   env,
		Pins:  pins.NewPins(),
		Mem:   memory.NewMemory(env),
		owner: assert.NewOwner(),
	}

	mb.CPU = cpu.NewCPU(env, mode, mb.Pins)
	mb.Pins.Attach(mb.CPU)

	if env != nil && env.Prefs != nil {
		mb.Mem.WaitStates = env.Prefs.WaitStates.Get().(int)
	}

	mb.Reset()

	return mb, nil
}

// AddRecorder adds a Recorder to the motherboard. The Recorder will receive
// the motherboard state after every clock pulse.
func (mb *Motherboard) AddRecorder(r Recorder) {
	mb.recorders = append(mb.recorders, r)
}

// EndRecording calls EndRecording() on every attached Recorder. The recorders
// are then removed from the motherboard.
func (mb *Motherboard) EndRecording() error {
	var err error
	for _, r := range mb.recorders {
		if rerr := r.EndRecording(); rerr != nil && err == nil {
			err = rerr
		}
	}
	mb.recorders = mb.recorders[:0]
	return err
}

// Reset pulses the RESET input. The contents of memory are not changed.
func (mb *Motherboard) Reset() {
	mb.owner.Check("motherboard")
	mb.Pins.Set(pins.Change{Pin: pins.RESET, Level: true})
	mb.Mem.Reset()
	mb.Mem.Service(mb.Pins)
	mb.Pins.Set(pins.Change{Pin: pins.RESET, Level: false})
	mb.Clocks = 0
	logger.Log(mb.env, "motherboard", "reset")
}

// Pulse the CLK input once. The memory is serviced between the rising and
// falling edges.
func (mb *Motherboard) Pulse() error {
	mb.owner.Check("motherboard")
	mb.Pins.Set(pins.Change{Pin: pins.CLK, Level: true})
	mb.Mem.Service(mb.Pins)
	mb.Pins.Set(pins.Change{Pin: pins.CLK, Level: false})
	mb.Clocks++

	if len(mb.recorders) > 0 {
		s := mb.State()
		for _, r := range mb.recorders {
			if err := r.RecordState(s); err != nil {
				return err
			}
		}
	}

	return nil
}

// Run the motherboard for the number of clock pulses. If numClocks is less
// than zero then the motherboard will run until the continueCheck function
// returns false or an error.
//
// The continueCheck function can be nil.
func (mb *Motherboard) Run(numClocks int, continueCheck func(State) (bool, error)) error {
	for i := 0; numClocks < 0 || i < numClocks; i++ {
		if err := mb.Pulse(); err != nil {
			return err
		}
		if continueCheck != nil {
			ok, err := continueCheck(mb.State())
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	}
	return nil
}
