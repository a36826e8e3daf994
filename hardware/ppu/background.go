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

// pixel is one candidate contribution to a scanline's compositing, either
// from a background layer or, in object.go, from a sprite.
type pixel struct {
	colour   uint32
	priority int
	opaque   bool
}

// textLayerSizes gives, in tiles, the (width, height) of a text-mode
// background for each of the four DISPCNT screen-size codes.
var textLayerSizes = [4][2]int{
	{32, 32},
	{64, 32},
	{32, 64},
	{64, 64},
}

// bgControlAt returns the decoded BGxCNT for background bg (0-3).
func (p *PPU) bgControlAt(bg int) bgControl {
	off := uint32(regBG0CNT + 2*bg)
	return decodeBGCNT(p.regs[off>>1])
}

// renderTextBG fills row with background bg's contribution using the
// tile-map/tile-set text rendering scheme used by modes 0-2 for
// non-affine layers.
func (p *PPU) renderTextBG(bg int, line int, row *[ScreenWidth]pixel) {
	ctl := p.bgControlAt(bg)

	hofsOff := uint32(regBG0HOFS + 4*bg)
	vofsOff := uint32(regBG0VOFS + 4*bg)
	hofs := int(p.regs[hofsOff>>1] & 0x1ff)
	vofs := int(p.regs[vofsOff>>1] & 0x1ff)

	dims := textLayerSizes[ctl.screenSize&3]
	mapWidthPx := dims[0] * 8
	mapHeightPx := dims[1] * 8

	y := (line + vofs) % mapHeightPx
	tileRow := y / 8
	fineY := y % 8

	bytesPerTile := 32
	if ctl.pal256 {
		bytesPerTile = 64
	}

	for x := 0; x < ScreenWidth; x++ {
		sx := (x + hofs) % mapWidthPx
		tileCol := sx / 8
		fineX := sx % 8

		// a 64-wide map is stored as two side-by-side 32x32 screen blocks;
		// a 64-tall map stacks them, and 64x64 combines both.
		blockCol := tileCol / 32
		blockRow := tileRow / 32
		block := blockRow*(dims[0]/32) + blockCol
		if dims[0] == 32 {
			block = blockRow
		}
		localCol := tileCol % 32
		localRow := tileRow % 32

		mapOff := ctl.screenBase + uint32(block)*0x800 + uint32(localRow*32+localCol)*2
		entry := p.ReadVRAM16(mapOff)

		tileIdx := uint32(entry & 0x3ff)
		flipH := entry&0x0400 != 0
		flipV := entry&0x0800 != 0
		palBank := int(entry >> 12 & 0xf)

		px, py := fineX, fineY
		if flipH {
			px = 7 - px
		}
		if flipV {
			py = 7 - py
		}

		tileOff := ctl.charBase + tileIdx*uint32(bytesPerTile)
		var idx int
		var opaque bool
		if ctl.pal256 {
			b := p.ReadVRAM8(tileOff + uint32(py*8+px))
			idx = int(b)
			opaque = b != 0
		} else {
			b := p.ReadVRAM8(tileOff + uint32(py*4+px/2))
			if px&1 != 0 {
				idx = int(b >> 4)
			} else {
				idx = int(b & 0xf)
			}
			opaque = idx != 0
			idx += palBank * 16
		}

		row[x] = pixel{colour: p.bgColour(idx), priority: ctl.priority, opaque: opaque}
	}
}

// renderAffineBG fills row with background bg's contribution (bg must be 2
// or 3) using the rotation/scaling addressing scheme used by modes 1-2.
func (p *PPU) renderAffineBG(bg int, row *[ScreenWidth]pixel) {
	ctl := p.bgControlAt(bg)

	sizeTiles := 16 << uint(ctl.screenSize&3)
	sizePx := int32(sizeTiles * 8)

	var refX, refY, pa, pc int32
	if bg == 2 {
		refX, refY = p.bg2X, p.bg2Y
		pa = int32(int16(p.regs[regBG2PA>>1]))
		pc = int32(int16(p.regs[regBG2PC>>1]))
	} else {
		refX, refY = p.bg3X, p.bg3Y
		pa = int32(int16(p.regs[regBG3PA>>1]))
		pc = int32(int16(p.regs[regBG3PC>>1]))
	}

	for x := 0; x < ScreenWidth; x++ {
		tx := (refX + int32(x)*pa) >> 8
		ty := (refY + int32(x)*pc) >> 8

		if ctl.wrap {
			tx = ((tx % sizePx) + sizePx) % sizePx
			ty = ((ty % sizePx) + sizePx) % sizePx
		} else if tx < 0 || ty < 0 || tx >= sizePx || ty >= sizePx {
			row[x] = pixel{priority: ctl.priority}
			continue
		}

		tileCol := tx / 8
		tileRow := ty / 8
		fineX := tx % 8
		fineY := ty % 8

		mapOff := ctl.screenBase + uint32(tileRow*int32(sizeTiles)+tileCol)
		tileIdx := uint32(p.ReadVRAM8(mapOff))

		tileOff := ctl.charBase + tileIdx*64
		b := p.ReadVRAM8(tileOff + uint32(fineY*8+fineX))

		row[x] = pixel{colour: p.bgColour(int(b)), priority: ctl.priority, opaque: b != 0}
	}
}

// renderBitmap fills row from one of the three direct bitmap modes (3, 4,
// 5). mode3 is a full-resolution 15-bit-colour frame; mode4 is an 8-bit
// paletted frame with page flipping; mode5 is a reduced-resolution
// 15-bit-colour frame, also page-flipped.
func (p *PPU) renderBitmap(mode int, line int, row *[ScreenWidth]pixel) {
	frame := uint32(p.FrameSelect())

	switch mode {
	case 3:
		base := uint32(line * ScreenWidth * 2)
		for x := 0; x < ScreenWidth; x++ {
			c := p.ReadVRAM16(base + uint32(x)*2)
			row[x] = pixel{colour: expandBGR555(c), opaque: true}
		}
	case 4:
		base := frame*0xa000 + uint32(line*ScreenWidth)
		for x := 0; x < ScreenWidth; x++ {
			idx := p.ReadVRAM8(base + uint32(x))
			row[x] = pixel{colour: p.bgColour(int(idx)), opaque: idx != 0}
		}
	case 5:
		const w, h = 160, 128
		if line >= h {
			return
		}
		base := frame*0xa000 + uint32(line*w*2)
		for x := 0; x < w; x++ {
			c := p.ReadVRAM16(base + uint32(x)*2)
			row[x] = pixel{colour: expandBGR555(c), opaque: true}
		}
	}
}
