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

package ppu

import "github.com/jetsetilly/gopheradvance/hardware/interrupt"

// BeginScanline performs the housekeeping due at the start of scanline
// line (0-227): latching VCOUNT, updating the VBlank/VCount-match status
// bits, raising the VBlank and VCount interrupts when they're due, and
// advancing the affine background reference points. The scheduler calls
// this once per line, before handing control back to the CPU for the
// visible or HBlank-free portion of the line.
func (p *PPU) BeginScanline(line int) {
	p.VCount = uint16(line)
	p.lineCycle = 0

	p.dispstat &^= dispstatHBlank

	wasVBlank := p.dispstat&dispstatVBlank != 0
	inVBlank := line >= VBlankStart && line != LinesPerFrame-1
	if inVBlank {
		p.dispstat |= dispstatVBlank
	} else {
		p.dispstat &^= dispstatVBlank
	}
	if inVBlank && !wasVBlank && p.dispstat&dispstatVBlankIRQ != 0 {
		p.raise(interrupt.VBlank)
	}

	target := uint16(p.dispstat >> 8)
	if p.VCount == target {
		p.dispstat |= dispstatVCountMatch
		if p.dispstat&dispstatVCountIRQ != 0 {
			p.raise(interrupt.VCount)
		}
	} else {
		p.dispstat &^= dispstatVCountMatch
	}

	if line == VBlankStart {
		p.bg2X, p.bg2Y = p.bg2RefX, p.bg2RefY
		p.bg3X, p.bg3Y = p.bg3RefX, p.bg3RefY
	} else if line < VBlankStart {
		p.bg2X += int32(int16(p.regs[regBG2PB>>1]))
		p.bg2Y += int32(int16(p.regs[regBG2PD>>1]))
		p.bg3X += int32(int16(p.regs[regBG3PB>>1]))
		p.bg3Y += int32(int16(p.regs[regBG3PD>>1]))
	}
}

// BeginHBlank marks the start of the horizontal blank period of the
// current scanline and raises the HBlank interrupt if enabled. The
// scheduler calls this after the visible portion of a line has been
// rendered, HBlankStart cycles into the line.
func (p *PPU) BeginHBlank() {
	if p.dispstat&dispstatHBlank != 0 {
		return
	}
	p.dispstat |= dispstatHBlank
	if p.dispstat&dispstatHBlankIRQ != 0 {
		p.raise(interrupt.HBlank)
	}
}

func (p *PPU) raise(src interrupt.Source) {
	if p.irq != nil {
		p.irq.Raise(src)
	}
}
