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

// ReadPalette8 returns the byte at offset off in palette RAM.
func (p *PPU) ReadPalette8(off uint32) uint8 {
	return p.PAL[off&(palSize-1)]
}

// WritePalette8 stores v at offset off in palette RAM and invalidates the
// cached native-pixel entry it belongs to. Palette RAM is 16-bit
// addressable on real hardware; a byte write updates both bytes of the
// containing halfword, matching the documented "byte writes are promoted
// to halfword writes" behaviour for BG palette entries.
func (p *PPU) WritePalette8(off uint32, v uint8) {
	off &= palSize - 1
	p.PAL[off] = v
	p.PAL[off^1] = v
	p.paletteDirty[(off>>1)&0x1ff] = true
}

// WritePalette16 stores a halfword in palette RAM.
func (p *PPU) WritePalette16(off uint32, v uint16) {
	off &= palSize - 1
	off &^= 1
	p.PAL[off] = uint8(v)
	p.PAL[off+1] = uint8(v >> 8)
	p.paletteDirty[(off>>1)&0x1ff] = true
}

// bgColour returns the native-pixel colour for background palette entry
// index (0-255 for a 256-colour bank, or 0-15 within bank pal for a
// 16-colour bank).
func (p *PPU) bgColour(index int) uint32 {
	return p.paletteEntry(index)
}

// objColour returns the native-pixel colour for object palette entry
// index, drawn from the second half of palette RAM (entries 256-511).
func (p *PPU) objColour(index int) uint32 {
	return p.paletteEntry(256 + index)
}

// paletteEntry returns the cached, expanded colour for 15-bit BGR palette
// slot n (0-511), rebuilding the cache entry from PAL if it has been
// written to since it was last read.
func (p *PPU) paletteEntry(n int) uint32 {
	n &= 0x1ff
	if p.paletteDirty[n] {
		lo := p.PAL[n*2]
		hi := p.PAL[n*2+1]
		p.palette[n] = expandBGR555(uint16(lo)|uint16(hi)<<8)
		p.paletteDirty[n] = false
	}
	return p.palette[n]
}

// expandBGR555 converts a 15-bit BGR555 colour, as stored in palette RAM,
// to a 32-bit host-native RGBA pixel (0xAARRGGBB with alpha fully opaque).
// Each 5-bit channel is replicated into its top 3 bits to spread the value
// across the full 0-255 range, the same expansion real LCD panels perform.
func expandBGR555(c uint16) uint32 {
	r := uint32(c & 0x1f)
	g := uint32(c >> 5 & 0x1f)
	b := uint32(c >> 10 & 0x1f)

	r = r<<3 | r>>2
	g = g<<3 | g>>2
	b = b<<3 | b>>2

	return 0xff000000 | b<<16 | g<<8 | r
}
