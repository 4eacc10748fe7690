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

// Package wavwriter allows the signals of the bus to be written to disk as a
// multi-channel WAV file, suitable for viewing in audio editing or logic
// analyser software. Note that the data is buffered in memory in its
// entirety, and written to disk when recording ends. It is therefore probably
// only suitable for short runs.
//
// Every clock pulse produces two frames, one with CLK high and one with CLK
// low. The channels in each frame are listed by the Channels variable. Single
// pins are recorded as either zero or MaxLevel. The Bus channel is the value
// of the low eight address lines, which are also the data output lines.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopher8088/gopher8088/curated"
	"github.com/gopher8088/gopher8088/environment"
	"github.com/gopher8088/gopher8088/hardware"
	"github.com/gopher8088/gopher8088/logger"
)

// SampleRate of the WAV file. The value has no relation to the speed of the
// emulated clock.
const SampleRate = 44100

// BitDepth of every sample.
const BitDepth = 8

// MaxLevel is the sample value of a pin that is high.
const MaxLevel = 255

// Channels lists the names of the channels in the order they appear in each
// frame.
var Channels = []string{"CLK", "RESET", "READY", "ALE", "RD", "WR", "Bus"}

// WavWriter implements the hardware.Recorder interface.
type WavWriter struct {
	env      *environment.Environment
	filename string
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(env *environment.Environment, filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename specified")
	}

	ww := &WavWriter{
		env:      env,
		filename: filename,
		buffer:   make([]int, 0),
	}

	return ww, nil
}

func level(b bool) int {
	if b {
		return MaxLevel
	}
	return 0
}

// RecordState implements the hardware.Recorder interface.
func (ww *WavWriter) RecordState(s hardware.State) error {
	bus := int(s.Address & 0xff)

	// the state is recorded after the falling edge so the RESET and READY
	// levels are the same for both frames
	for _, clk := range []bool{true, false} {
		ww.buffer = append(ww.buffer,
			level(clk),
			level(s.RESET),
			level(s.READY),
			level(s.ALE),
			level(s.RD),
			level(s.WR),
			bus,
		)
	}

	return nil
}

// Frames returns the number of frames recorded so far.
func (ww *WavWriter) Frames() int {
	return len(ww.buffer) / len(Channels)
}

// EndRecording implements the hardware.Recorder interface.
func (ww *WavWriter) EndRecording() (rerr error) {
	f, err := os.Create(ww.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, BitDepth, len(Channels), 1)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: len(Channels),
			SampleRate:  SampleRate,
		},
		Data:           ww.buffer,
		SourceBitDepth: BitDepth,
	}

	logger.Logf(ww.env, "wavwriter", "writing %d frames to %s", ww.Frames(), ww.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
