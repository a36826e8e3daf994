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

// ReadIO8 implements the byte-addressable read side of the sound register
// block. The FIFO data ports read back as zero, matching real hardware.
func (a *APU) ReadIO8(off uint32) (v uint8, ok bool) {
	if off >= IORange {
		return 0, false
	}
	if off >= offFIFOA && off < offFIFOA+4 || off >= offFIFOB && off < offFIFOB+4 {
		return 0, true
	}
	if off == offSoundCntH || off == offSoundCntH+1 {
		return byteOf(a.soundCntH, off-offSoundCntH), true
	}
	return a.regs[off], true
}

// WriteIO8 implements the byte-addressable write side of the sound
// register block. A four-byte write landing on a FIFO's data port is
// pushed to that FIFO one byte (one sample) at a time; SOUNDCNT_H's
// FIFO-reset bits immediately clear the addressed FIFO.
func (a *APU) WriteIO8(off uint32, v uint8) (ok bool) {
	if off >= IORange {
		return false
	}
	a.regs[off] = v

	switch {
	case off >= offFIFOA && off < offFIFOA+4:
		a.fifoA.push([4]int8{int8(v), 0, 0, 0})
		return true
	case off >= offFIFOB && off < offFIFOB+4:
		a.fifoB.push([4]int8{int8(v), 0, 0, 0})
		return true
	case off == offSoundCntH:
		a.soundCntH = a.soundCntH&0xff00 | uint16(v)
		a.applyFIFOReset(v)
		return true
	case off == offSoundCntH+1:
		a.soundCntH = a.soundCntH&0x00ff | uint16(v)<<8
		return true
	}
	return true
}

// WriteIO32 is called directly by the bus for a 32-bit write landing on a
// FIFO data port (the common case: a CPU STR or a DMA word transfer),
// pushing all four sample bytes in address order rather than the
// byte-at-a-time fallback WriteIO8 performs for narrower accesses.
func (a *APU) WriteIO32(off uint32, v uint32) (ok bool) {
	switch off {
	case offFIFOA:
		a.WriteFIFO(false, v)
		return true
	case offFIFOB:
		a.WriteFIFO(true, v)
		return true
	}
	return false
}

func (a *APU) applyFIFOReset(v uint8) {
	if v&0x08 != 0 {
		a.fifoA.reset()
	}
	if v&0x80 != 0 {
		a.fifoB.reset()
	}
}

func byteOf(v uint16, i uint32) uint8 {
	if i == 0 {
		return uint8(v)
	}
	return uint8(v >> 8)
}
