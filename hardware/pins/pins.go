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

// Package pins models the numbered input and output pins of the 8088 as seen
// by the host. The Pins type implements the biu.Signals interface for the
// CPU side and provides level and edge delivery for the host side.
package pins

import (
	"fmt"
	"strings"

	"github.com/gopher8088/gopher8088/curated"
	"github.com/gopher8088/gopher8088/hardware/cpu/bitvector"
)

// Input pin numbers.
const (
	DataIn0 = 0
	CLK     = 8
	RESET   = 9
	READY   = 10

	NumInputs = 11
)

// Output pin numbers. The data output lines share the low eight address
// lines.
const (
	A0       = 0
	DataOut0 = 0
	RD       = 20
	WR       = 21
	ALE      = 22

	NumOutputs = 23
)

// Bus widths.
const (
	AddressWidth = 20
	DataWidth    = 8
)

// UnexpectedPinCount is returned by Validate.
const UnexpectedPinCount = "pins: expecting %d inputs and %d outputs (got %d and %d)"

// Validate the number of inputs and outputs a host intends to connect.
func Validate(numInputs int, numOutputs int) error {
	if numInputs != NumInputs || numOutputs != NumOutputs {
		return curated.Errorf(UnexpectedPinCount, NumInputs, NumOutputs, numInputs, numOutputs)
	}
	return nil
}

// Handler is notified of the rising edges of the RESET and CLK inputs.
type Handler interface {
	InputChange(reset bool, clock bool)
}

// Change is a new level for an input pin.
type Change struct {
	Pin   int
	Level bool
}

// Pins is the current level of every input and output pin.
type Pins struct {
	inputs  bitvector.BitVector
	outputs bitvector.BitVector

	handler Handler
}

// NewPins is the preferred method of initialisation for the Pins type. Output
// pins are in their power-up state: RD and WR high and everything else low.
func NewPins() *Pins {
	p := &Pins{
		inputs:  bitvector.New(NumInputs),
		outputs: bitvector.New(NumOutputs),
	}
	p.outputs.SetBit(RD, true)
	p.outputs.SetBit(WR, true)
	return p
}

// Attach the handler that will receive edges.
func (p *Pins) Attach(h Handler) {
	p.handler = h
}

func (p *Pins) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("A=%05x", p.Address().Uint()))
	level := func(label string, b bool) {
		if b {
			s.WriteString(fmt.Sprintf(" %s=1", label))
		} else {
			s.WriteString(fmt.Sprintf(" %s=0", label))
		}
	}
	level("ALE", p.outputs.Bit(ALE))
	level("RD", p.outputs.Bit(RD))
	level("WR", p.outputs.Bit(WR))
	s.WriteString(fmt.Sprintf(" D=%02x", p.DataIn().Uint()))
	level("CLK", p.inputs.Bit(CLK))
	level("RESET", p.inputs.Bit(RESET))
	level("READY", p.inputs.Bit(READY))
	return s.String()
}

// Set the level of one or more input pins. All changes are applied before
// the handler is notified and so changes made in the same call are
// simultaneous. Only rising edges of RESET and CLK are passed to the handler.
//
// Out of range pin numbers are ignored.
func (p *Pins) Set(changes ...Change) {
	var reset, clock bool

	for _, c := range changes {
		if c.Pin < 0 || c.Pin >= NumInputs {
			continue
		}
		if p.inputs.Bit(c.Pin) == c.Level {
			continue
		}
		p.inputs.SetBit(c.Pin, c.Level)
		switch c.Pin {
		case RESET:
			reset = c.Level
		case CLK:
			clock = c.Level
		}
	}

	if p.handler != nil && (reset || clock) {
		p.handler.InputChange(reset, clock)
	}
}

// Input returns the level of the input pin.
func (p *Pins) Input(pin int) bool {
	return p.inputs.Bit(pin)
}

// Output returns the level of the output pin.
func (p *Pins) Output(pin int) bool {
	return p.outputs.Bit(pin)
}

// Outputs returns a copy of all output levels.
func (p *Pins) Outputs() bitvector.BitVector {
	return p.outputs.Clone()
}

// Address returns the levels of the 20 address lines. The low eight lines
// are also the data output lines.
func (p *Pins) Address() bitvector.BitVector {
	return p.outputs.Truncate(AddressWidth)
}

// SetDataIn sets the eight data input lines. These pins are not edge
// sensitive and so the handler is never notified.
func (p *Pins) SetDataIn(data bitvector.BitVector) {
	for i := 0; i < DataWidth; i++ {
		p.inputs.SetBit(DataIn0+i, data.Bit(i))
	}
}

// SetReady sets the READY input. This pin is not edge sensitive.
func (p *Pins) SetReady(level bool) {
	p.inputs.SetBit(READY, level)
}

// ALE returns the level of the ALE output.
func (p *Pins) ALE() bool {
	return p.outputs.Bit(ALE)
}

// ReadActive returns true if RD is asserted (low).
func (p *Pins) ReadActive() bool {
	return !p.outputs.Bit(RD)
}

// WriteActive returns true if WR is asserted (low).
func (p *Pins) WriteActive() bool {
	return !p.outputs.Bit(WR)
}

// DriveAddress implements the biu.Signals interface.
func (p *Pins) DriveAddress(address bitvector.BitVector) {
	for i := 0; i < AddressWidth; i++ {
		p.outputs.SetBit(A0+i, address.Bit(i))
	}
}

// DriveData implements the biu.Signals interface.
func (p *Pins) DriveData(data bitvector.BitVector) {
	for i := 0; i < DataWidth; i++ {
		p.outputs.SetBit(DataOut0+i, data.Bit(i))
	}
}

// SetALE implements the biu.Signals interface.
func (p *Pins) SetALE(level bool) {
	p.outputs.SetBit(ALE, level)
}

// SetRD implements the biu.Signals interface.
func (p *Pins) SetRD(level bool) {
	p.outputs.SetBit(RD, level)
}

// SetWR implements the biu.Signals interface.
func (p *Pins) SetWR(level bool) {
	p.outputs.SetBit(WR, level)
}

// DataIn implements the biu.Signals interface.
func (p *Pins) DataIn() bitvector.BitVector {
	return p.inputs.Truncate(DataWidth)
}

// Ready implements the biu.Signals interface.
func (p *Pins) Ready() bool {
	return p.inputs.Bit(READY)
}
