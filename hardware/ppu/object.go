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

// objSizes maps [shape][size] to an object's (width, height) in pixels.
var objSizes = [3][4][2]int{
	{{8, 8}, {16, 16}, {32, 32}, {64, 64}},
	{{16, 8}, {32, 8}, {32, 16}, {64, 32}},
	{{8, 16}, {8, 32}, {16, 32}, {32, 64}},
}

const objCharBase = 0x10000

// objAttrs unpacks the three attribute halfwords of OAM entry n.
type objAttrs struct {
	y, x              int
	affine            bool
	doubleSizeOrHide  bool
	mode              int
	mosaic            bool
	pal256            bool
	shape             int
	size              int
	affineParamSelect int
	hflip, vflip      bool
	tileIndex         uint32
	priority          int
	palBank           int
}

func (p *PPU) objAttrsAt(n int) objAttrs {
	base := uint32(n * 8)
	a0 := p.ReadOAM16(base)
	a1 := p.ReadOAM16(base + 2)
	a2 := p.ReadOAM16(base + 4)

	a := objAttrs{
		y:                 int(a0 & 0xff),
		affine:            a0&0x0100 != 0,
		doubleSizeOrHide:  a0&0x0200 != 0,
		mode:              int(a0 >> 10 & 0x3),
		mosaic:            a0&0x1000 != 0,
		pal256:            a0&0x2000 != 0,
		shape:             int(a0 >> 14 & 0x3),
		x:                 signExtend9(a1 & 0x1ff),
		affineParamSelect: int(a1 >> 9 & 0x1f),
		hflip:             a1&0x1000 != 0,
		vflip:             a1&0x2000 != 0,
		size:              int(a1 >> 14 & 0x3),
		tileIndex:         uint32(a2 & 0x3ff),
		priority:          int(a2 >> 10 & 0x3),
		palBank:           int(a2 >> 12 & 0xf),
	}
	return a
}

func signExtend9(v uint16) int {
	x := int(v)
	if x&0x100 != 0 {
		x -= 0x200
	}
	return x
}

// affineParam returns one of the four fixed-point parameters (PA-PD) of
// affine group n, stored in the otherwise-unused fourth halfword of OAM
// entries 4n..4n+3.
func (p *PPU) affineParam(n, which int) int32 {
	off := uint32(n*4+which)*8 + 6
	return int32(int16(p.ReadOAM16(off)))
}

// renderObjects composites the visible sprites for scanline line into row,
// processing OAM back-to-front (index 127 down to 0) so that a later
// (lower-index) write wins ties, and lower priority numbers only ever
// overwrite an equal-or-higher (numerically) priority pixel already there.
func (p *PPU) renderObjects(line int, row *[ScreenWidth]pixel) {
	if !p.ObjEnabled() {
		return
	}

	// set marks a column as permanently decided once a priority-0 sprite
	// has drawn there: priority 0 is the best a sprite can have, so no
	// later (lower-index) sprite could ever legally replace it, and
	// skipping the comparison for it is a pure optimisation, not a
	// shortcut around the priority rule.
	set := [ScreenWidth]bool{}

	for n := 127; n >= 0; n-- {
		a := p.objAttrsAt(n)
		if !a.affine && a.doubleSizeOrHide {
			continue
		}
		if a.mode == 2 {
			// OBJ-window entries do not contribute pixels directly.
			continue
		}

		dims := objSizes[a.shape][a.size]
		w, h := dims[0], dims[1]
		boundW, boundH := w, h
		if a.affine && a.doubleSizeOrHide {
			boundW, boundH = w*2, h*2
		}

		y := a.y
		if y+boundH > 256 {
			y -= 256
		}
		if line < y || line >= y+boundH {
			continue
		}

		// in 1D character mapping the tile stride for a sprite's own rows
		// is its own width in tiles; in 2D mapping every sprite indexes
		// into the same 32-tile-wide character sheet.
		tilesPerRow := w / 8
		if !p.ObjCharMap1D() {
			tilesPerRow = 32
		}

		relY := line - y

		var pa, pb, pc, pd int32
		if a.affine {
			pa = p.affineParam(a.affineParamSelect, 0)
			pb = p.affineParam(a.affineParamSelect, 1)
			pc = p.affineParam(a.affineParamSelect, 2)
			pd = p.affineParam(a.affineParamSelect, 3)
		} else {
			pa, pd = 0x100, 0x100
		}

		cx, cy := int32(w/2), int32(h/2)
		originX, originY := int32(boundW/2), int32(boundH/2)

		for sx := 0; sx < boundW; sx++ {
			screenX := a.x + sx
			if screenX < 0 || screenX >= ScreenWidth {
				continue
			}
			if set[screenX] {
				// priority 0 already claimed this column; nothing can
				// outrank it, so there is no need to run the comparison
				// below for the remaining, lower-priority sprites.
				continue
			}

			dx := int32(sx) - originX
			dy := int32(relY) - originY

			var tx, ty int32
			if a.affine {
				tx = ((pa*dx + pb*dy) >> 8) + cx
				ty = ((pc*dx + pd*dy) >> 8) + cy
			} else {
				tx = dx + cx
				ty = dy + cy
				if a.hflip {
					tx = int32(w) - 1 - tx
				}
				if a.vflip {
					ty = int32(h) - 1 - ty
				}
			}
			if tx < 0 || ty < 0 || tx >= int32(w) || ty >= int32(h) {
				continue
			}

			tileCol := int(tx) / 8
			tileRow := int(ty) / 8
			fineX := int(tx) % 8
			fineY := int(ty) % 8

			// a tile map index always advances in 32-byte (4bpp) units,
			// even for 8bpp sprites, where each visible tile spans two
			// consecutive indices.
			tileStride := uint32(1)
			if a.pal256 {
				tileStride = 2
			}
			tileNum := a.tileIndex + uint32(tileRow*tilesPerRow+tileCol)*tileStride
			tileOff := uint32(objCharBase) + tileNum*32

			var idx int
			var opaque bool
			if a.pal256 {
				b := p.ReadVRAM8(tileOff + uint32(fineY*8+fineX))
				idx = int(b)
				opaque = b != 0
			} else {
				b := p.ReadVRAM8(tileOff + uint32(fineY*4+fineX/2))
				if fineX&1 != 0 {
					idx = int(b >> 4)
				} else {
					idx = int(b & 0xf)
				}
				opaque = idx != 0
				idx += a.palBank * 16
			}
			if !opaque {
				continue
			}

			if row[screenX].opaque && row[screenX].priority < a.priority {
				continue
			}
			row[screenX] = pixel{colour: p.objColour(idx), priority: a.priority, opaque: true}
			if a.priority == 0 {
				set[screenX] = true
			}
		}
	}
}
