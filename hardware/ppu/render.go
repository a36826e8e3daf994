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

// backgroundOrder lists, for each display mode, which background layers
// (in DISPCNT-enable-bit order) are text layers versus affine layers or a
// direct bitmap. Object rendering runs unconditionally in every mode.
//
// mode 0: BG0-3 all text.
// mode 1: BG0-1 text, BG2 affine.
// mode 2: BG2-3 affine.
// mode 3-5: a single direct bitmap layer, drawn as if it were BG2.

// RenderScanline composites one full scanline (background layers plus
// sprites, in priority order) into the Framebuffer at row line.
func (p *PPU) RenderScanline(line int) {
	if line < 0 || line >= ScreenHeight {
		return
	}

	out := &p.Framebuffer
	rowOff := line * ScreenWidth

	if p.ForceBlank() {
		for x := 0; x < ScreenWidth; x++ {
			out[rowOff+x] = 0xffffffff
		}
		return
	}

	backdrop := p.bgColour(0)
	var composite [ScreenWidth]pixel
	for x := range composite {
		composite[x] = pixel{colour: backdrop, priority: 4, opaque: true}
	}

	mode := p.Mode()
	switch mode {
	case 0:
		for bg := 3; bg >= 0; bg-- {
			if !p.BGEnabled(bg) {
				continue
			}
			var row [ScreenWidth]pixel
			p.renderTextBG(bg, line, &row)
			mergeBG(&composite, &row)
		}
	case 1:
		if p.BGEnabled(2) {
			var row [ScreenWidth]pixel
			p.renderAffineBG(2, &row)
			mergeBG(&composite, &row)
		}
		for bg := 1; bg >= 0; bg-- {
			if !p.BGEnabled(bg) {
				continue
			}
			var row [ScreenWidth]pixel
			p.renderTextBG(bg, line, &row)
			mergeBG(&composite, &row)
		}
	case 2:
		for bg := 3; bg >= 2; bg-- {
			if !p.BGEnabled(bg) {
				continue
			}
			var row [ScreenWidth]pixel
			p.renderAffineBG(bg, &row)
			mergeBG(&composite, &row)
		}
	case 3, 4, 5:
		if p.BGEnabled(2) {
			var row [ScreenWidth]pixel
			p.renderBitmap(mode, line, &row)
			mergeBG(&composite, &row)
		}
	}

	var objRow [ScreenWidth]pixel
	p.renderObjects(line, &objRow)
	for x := 0; x < ScreenWidth; x++ {
		if objRow[x].opaque && objRow[x].priority <= composite[x].priority {
			composite[x] = objRow[x]
		}
	}

	for x := 0; x < ScreenWidth; x++ {
		out[rowOff+x] = composite[x].colour
	}
}

// mergeBG folds one background layer's row into the running composite,
// keeping whichever pixel has numerically lower (higher on-screen)
// priority; ties keep the pixel already present, matching the layer
// iteration order (higher-numbered backgrounds drawn first, so a lower
// bg index wins a tie).
func mergeBG(composite, row *[ScreenWidth]pixel) {
	for x := 0; x < ScreenWidth; x++ {
		if row[x].opaque && row[x].priority <= composite[x].priority {
			composite[x] = row[x]
		}
	}
}
