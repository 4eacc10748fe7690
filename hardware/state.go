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
	"fmt"

	"github.com/gopher8088/gopher8088/hardware/cpu/biu"
	"github.com/gopher8088/gopher8088/hardware/cpu/registers"
	"github.com/gopher8088/gopher8088/hardware/pins"
)

// State is a snapshot of the observable state of the motherboard.
type State struct {
	Clock uint64

	TState      biu.TState
	Waiting     bool
	Transaction string

	CS       uint16
	IP       uint16
	QueueLen int

	// 20 bit address bus. the low eight bits are also the data output lines
	Address uint32

	ALE bool
	RD  bool
	WR  bool

	DataIn uint8
	CLK    bool
	RESET  bool
	READY  bool

	Stats biu.Stats
}

// State returns a snapshot of the current state of the motherboard.
func (mb *Motherboard) State() State {
	return State{
		Clock:       mb.Clocks,
		TState:      mb.CPU.BIU.State(),
		Waiting:     mb.CPU.BIU.Waiting(),
		Transaction: mb.CPU.BIU.Active().String(),
		CS:          uint16(mb.CPU.Regs.Get(registers.CS).Uint()),
		IP:          uint16(mb.CPU.Regs.Get(registers.IP).Uint()),
		QueueLen:    mb.CPU.BIU.Queue.Len(),
		Address:     mb.Pins.Address().Uint(),
		ALE:         mb.Pins.Output(pins.ALE),
		RD:          mb.Pins.Output(pins.RD),
		WR:          mb.Pins.Output(pins.WR),
		DataIn:      uint8(mb.Pins.DataIn().Uint()),
		CLK:         mb.Pins.Input(pins.CLK),
		RESET:       mb.Pins.Input(pins.RESET),
		READY:       mb.Pins.Input(pins.READY),
		Stats:       mb.CPU.BIU.Stats,
	}
}

func level(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (s State) String() string {
	wait := ""
	if s.Waiting {
		wait = " " + biu.Tw.String()
	}
	return fmt.Sprintf("%6d %s%s %-5s ALE=%d RD=%d WR=%d A=%05x CS:IP=%04x:%04x Q=%d",
		s.Clock, s.TState, wait, s.Transaction, level(s.ALE), level(s.RD), level(s.WR),
		s.Address, s.CS, s.IP, s.QueueLen)
}
