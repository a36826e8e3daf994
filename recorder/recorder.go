// This file is part of Gopheradvance.
//
// Gopheradvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopheradvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopheradvance.  If not, see <https://www.gnu.org/licenses/>.

// Package recorder writes the APU's direct-sound output to a WAV file. Like
// the teacher's wavwriter, samples are buffered in memory for the whole run
// and only encoded on Close, which makes this fit for capturing test runs
// rather than long unattended sessions.
package recorder

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/logger"
)

// sampleFreq is the rate direct-sound FIFOs are drained at when both
// timer 0 and timer 1 are configured for the FIFO's usual 32.768kHz pop
// rate. Recordings made at a different timer configuration will still
// decode correctly, just at the wrong pitch, the same caveat the
// teacher's own wavwriter carries for its TIA sample rate.
const sampleFreq = 32768

// Recorder implements apu.Sink, buffering one interleaved stereo sample
// per PlaySample call.
type Recorder struct {
	filename string
	samples  []int
}

// New is the preferred method of initialisation for a Recorder.
func New(filename string) *Recorder {
	return &Recorder{filename: filename}
}

// PlaySample implements apu.Sink, appending one interleaved stereo frame
// derived from the two FIFO channels' raw signed 8-bit output.
func (r *Recorder) PlaySample(fifoA, fifoB int8) {
	r.samples = append(r.samples, int(fifoA)<<8, int(fifoB)<<8)
}

// Close encodes every buffered sample to filename as a 16-bit stereo WAV
// file and releases the buffer.
func (r *Recorder) Close() (rerr error) {
	f, err := os.Create(r.filename)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("recorder: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, sampleFreq, 16, 2, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: sampleFreq},
		Data:   r.samples,
	}
	if err := enc.Write(buf); err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	logger.Logf(logger.Allow, "recorder", "wrote %d samples to %s", len(r.samples)/2, r.filename)
	r.samples = nil

	return nil
}
