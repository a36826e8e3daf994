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

package apu

// IORange is the size, in bytes, of the sound register block claimed by
// this package, starting at system address 0x04000060. It covers the
// legacy PSG channels (read/write, otherwise inert) as well as the two
// FIFO channels and SOUNDCNT/SOUNDBIAS.
const IORange = 0x50

const (
	offFIFOA     = 0xa0 - 0x60
	offFIFOB     = 0xa4 - 0x60
	offSoundCntH = 0x82 - 0x60
)

// fifo is a 32-entry signed-byte ring buffer, matching the real hardware's
// FIFO A/B depth (`fifoCopy`'s `size + 4 > 32` bound in the original).
type fifo struct {
	buf   [32]int8
	head  int
	count int
}

func (f *fifo) push(samples [4]int8) {
	for _, s := range samples {
		if f.count == len(f.buf) {
			return
		}
		f.buf[(f.head+f.count)%len(f.buf)] = s
		f.count++
	}
}

func (f *fifo) pop() int8 {
	if f.count == 0 {
		return 0
	}
	s := f.buf[f.head]
	f.head = (f.head + 1) % len(f.buf)
	f.count--
	return s
}

func (f *fifo) reset() {
	*f = fifo{}
}

// Sink receives one PCM sample per FIFO A/B pop, in the -128..127 range of
// the raw hardware DAC.
type Sink interface {
	PlaySample(fifoA, fifoB int8)
}

// APU owns the two direct-sound FIFOs and the small slice of SOUNDCNT
// state needed to route timer overflows and DMA refills to them. The four
// PSG tone/noise/wave channels are not emulated; their registers are
// backed by regs purely so reads return whatever was last written.
type APU struct {
	fifoA, fifoB fifo
	soundCntH    uint16
	regs         [IORange]byte

	sink Sink
}

// NewAPU returns an APU with both FIFOs empty.
func NewAPU() *APU {
	return &APU{}
}

// Plumb attaches the sample sink samples are delivered to as they are
// popped from the FIFOs.
func (a *APU) Plumb(sink Sink) {
	a.sink = sink
}

// FIFOAddress returns the system bus address DMA channels 1 and 2 must be
// targeted at to feed FIFO A or FIFO B.
func FIFOAddress(fifoB bool) uint32 {
	if fifoB {
		return 0x040000a4
	}
	return 0x040000a0
}

// FIFOLen reports the current fill level, in bytes, of FIFO A (fifoB false)
// or FIFO B (fifoB true). DMA consults this before refilling: spec.md
// requires a refill only once the matching FIFO has drained to 16 bytes or
// fewer.
func (a *APU) FIFOLen(fifoB bool) int {
	if fifoB {
		return a.fifoB.count
	}
	return a.fifoA.count
}

// FIFOTimer reports which timer (0 or 1) SOUNDCNT_H selects to drive FIFO A
// (fifoB false) or FIFO B (fifoB true), the same bit TimerOverflow itself
// checks before popping a sample.
func (a *APU) FIFOTimer(fifoB bool) int {
	if fifoB {
		return int(a.soundCntH >> 14 & 1)
	}
	return int(a.soundCntH >> 10 & 1)
}

// TimerOverflow implements timer.Overflower. Firing of the timer bound to
// FIFO A (SOUNDCNT_H bit 10 clear) or FIFO B (bit 14 clear) pops one
// sample and hands both channels' current output to the sink.
func (a *APU) TimerOverflow(n int) {
	fifoATimer := int(a.soundCntH >> 10 & 1)
	fifoBTimer := int(a.soundCntH >> 14 & 1)

	var sa, sb int8
	popped := false
	if fifoATimer == n {
		sa = a.fifoA.pop()
		popped = true
	}
	if fifoBTimer == n {
		sb = a.fifoB.pop()
		popped = true
	}
	if popped && a.sink != nil {
		a.sink.PlaySample(sa, sb)
	}
}

// Advance is the scheduler's per-scanline hook. It is a no-op: sample
// output is entirely driven by TimerOverflow, and the four PSG channels
// this APU declines to emulate have no periodic state that a cycle count
// would advance. It exists so the scheduler has a call to make at the
// point real hardware would be clocking the PSG forward, without the
// scheduler needing to know that nothing happens there yet.
func (a *APU) Advance(cycles int) {}

// WriteFIFO appends four bytes, as delivered by a 32-bit CPU or DMA write
// to REG_FIFO_A/REG_FIFO_B, to the addressed FIFO.
func (a *APU) WriteFIFO(fifoB bool, v uint32) {
	samples := [4]int8{int8(v), int8(v >> 8), int8(v >> 16), int8(v >> 24)}
	if fifoB {
		a.fifoB.push(samples)
	} else {
		a.fifoA.push(samples)
	}
}
