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

// Package digest is used to create a fingerprint of the bus activity of the
// emulation. A digest is a SHA-1 hash chained over the state of the bus after
// every clock pulse. Two runs with the same memory image, mode and wait
// states will produce the same digest.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/gopher8088/gopher8088/hardware"
)

// the digest of the previous block is included at the start of the next
// block so the length of the buffer is the size of the digest plus the size
// of the bus data
const busBufferStart = sha1.Size

// number of bytes used to record a single clock pulse
const pulseLength = 5

// number of clock pulses recorded before the digest is updated
const pulsesPerBlock = 256

const busBufferLength = busBufferStart + pulseLength*pulsesPerBlock

// Digest is an implementation of the hardware.Recorder interface.
type Digest struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewDigest is the preferred method of initialisation for the Digest type.
func NewDigest() *Digest {
	dig := &Digest{
		buffer: make([]uint8, busBufferLength),
	}
	dig.ResetDigest()
	return dig
}

// Hash returns the current digest value as a string. Any pending bus data is
// included in the value.
func (dig *Digest) Hash() string {
	dig.flush()
	return fmt.Sprintf("%x", dig.digest)
}

func (dig *Digest) String() string {
	return dig.Hash()
}

// ResetDigest resets the current digest value to zero.
func (dig *Digest) ResetDigest() {
	clear(dig.digest[:])
	dig.bufferCt = busBufferStart
}

// RecordState implements the hardware.Recorder interface.
func (dig *Digest) RecordState(s hardware.State) error {
	var ctrl uint8
	if s.ALE {
		ctrl |= 0x01
	}
	if s.RD {
		ctrl |= 0x02
	}
	if s.WR {
		ctrl |= 0x04
	}
	if s.READY {
		ctrl |= 0x08
	}
	if s.Waiting {
		ctrl |= 0x10
	}
	ctrl |= uint8(s.TState) << 5

	dig.buffer[dig.bufferCt] = uint8(s.Address)
	dig.buffer[dig.bufferCt+1] = uint8(s.Address >> 8)
	dig.buffer[dig.bufferCt+2] = uint8(s.Address >> 16)
	dig.buffer[dig.bufferCt+3] = ctrl
	dig.buffer[dig.bufferCt+4] = s.DataIn
	dig.bufferCt += pulseLength

	if dig.bufferCt >= busBufferLength {
		dig.flush()
	}

	return nil
}

// EndRecording implements the hardware.Recorder interface.
func (dig *Digest) EndRecording() error {
	dig.flush()
	return nil
}

// flush the buffered bus data into the digest.
func (dig *Digest) flush() {
	if dig.bufferCt == busBufferStart {
		return
	}
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	dig.bufferCt = busBufferStart
}
