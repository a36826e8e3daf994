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

// ReadVRAM8 returns the byte at offset off in VRAM, mirroring the 96 KiB
// region across its 128 KiB address window as real hardware does.
func (p *PPU) ReadVRAM8(off uint32) uint8 {
	return p.VRAM[mirrorVRAM(off)]
}

// WriteVRAM8 stores v at offset off in VRAM.
func (p *PPU) WriteVRAM8(off uint32, v uint8) {
	p.VRAM[mirrorVRAM(off)] = v
}

// ReadVRAM16 returns the halfword at offset off in VRAM.
func (p *PPU) ReadVRAM16(off uint32) uint16 {
	off = mirrorVRAM(off) &^ 1
	return uint16(p.VRAM[off]) | uint16(p.VRAM[off+1])<<8
}

// WriteVRAM16 stores a halfword at offset off in VRAM.
func (p *PPU) WriteVRAM16(off uint32, v uint16) {
	off = mirrorVRAM(off) &^ 1
	p.VRAM[off] = uint8(v)
	p.VRAM[off+1] = uint8(v >> 8)
}

// mirrorVRAM folds the 128 KiB VRAM address window down to the 96 KiB of
// backing storage: the last 32 KiB bank is a repeat of the 16 KiB bank
// before it.
func mirrorVRAM(off uint32) uint32 {
	off &= 0x1ffff
	if off >= vramSize {
		off -= 0x8000
	}
	return off
}

// ReadOAM8 returns the byte at offset off in OAM.
func (p *PPU) ReadOAM8(off uint32) uint8 {
	return p.OAM[off&(oamSize-1)]
}

// WriteOAM8 stores v at offset off in OAM.
func (p *PPU) WriteOAM8(off uint32, v uint8) {
	p.OAM[off&(oamSize-1)] = v
}

// ReadOAM16 returns the halfword at offset off in OAM.
func (p *PPU) ReadOAM16(off uint32) uint16 {
	off = off & (oamSize - 1) &^ 1
	return uint16(p.OAM[off]) | uint16(p.OAM[off+1])<<8
}

// WriteOAM16 stores a halfword at offset off in OAM.
func (p *PPU) WriteOAM16(off uint32, v uint16) {
	off = off & (oamSize - 1) &^ 1
	p.OAM[off] = uint8(v)
	p.OAM[off+1] = uint8(v >> 8)
}
