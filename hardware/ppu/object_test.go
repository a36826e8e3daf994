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

package ppu_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/ppu"
	"github.com/jetsetilly/gopheradvance/test"
)

// objCharBase mirrors the unexported constant in object.go: OBJ tile data
// starts at VRAM offset 0x10000.
const objCharBase = 0x10000

// placeObject writes an 8x8, 4bpp, non-affine object at OAM index n,
// (x, y) = (0, 0), whose every pixel is palette entry colourIdx (bank 0)
// at priority.
func placeObject(p *ppu.PPU, n, tileIndex, priority, colourIdx int) {
	base := uint32(n * 8)
	p.WriteOAM16(base, 0)   // y=0, shape=0 (square), mode=0
	p.WriteOAM16(base+2, 0) // x=0, size=0 (8x8)
	p.WriteOAM16(base+4, uint16(tileIndex|priority<<10))

	tileOff := uint32(objCharBase + tileIndex*32)
	for i := 0; i < 32; i++ {
		p.WriteVRAM8(tileOff+uint32(i), uint8(colourIdx)|uint8(colourIdx)<<4)
	}

	p.WritePalette16(uint32((256+colourIdx)*2), uint16(0x1000+colourIdx)) // distinct, non-zero BGR555
}

func enableObjects(p *ppu.PPU) {
	p.WriteIO8(0x00, 0x00)
	p.WriteIO8(0x01, 0x10) // DISPCNT bit 12: OBJ enable
}

func TestObjectPriorityWinsOverOAMIndexOrder(t *testing.T) {
	// A is drawn first (higher OAM index, processed 127->0 first) but has
	// the numerically worse (higher) priority; B is drawn later but has
	// the better (lower) priority. B must end up on top regardless of
	// which one the renderer reached first.
	both := ppu.NewPPU()
	enableObjects(both)
	placeObject(both, 10, 1, 3, 5) // A: index 10, priority 3, colour 5
	placeObject(both, 3, 2, 0, 7)  // B: index 3, priority 0, colour 7
	var rowBoth [ppu.ScreenWidth]uint32
	both.RenderScanline(0)
	copy(rowBoth[:], both.Framebuffer[:ppu.ScreenWidth])

	bOnly := ppu.NewPPU()
	enableObjects(bOnly)
	placeObject(bOnly, 3, 2, 0, 7)
	bOnly.RenderScanline(0)

	aOnly := ppu.NewPPU()
	enableObjects(aOnly)
	placeObject(aOnly, 10, 1, 3, 5)
	aOnly.RenderScanline(0)

	test.Equate(t, rowBoth[0], bOnly.Framebuffer[0])
	if rowBoth[0] == aOnly.Framebuffer[0] {
		t.Fatalf("column 0 rendered A's colour (%#08x) instead of the higher-priority B's (%#08x)", aOnly.Framebuffer[0], bOnly.Framebuffer[0])
	}
}

func TestObjectIndexBreaksTiesWithinSamePriority(t *testing.T) {
	// Same priority tier: the later-processed (lower-index) sprite wins,
	// per spec.md's per-tier, index-decides-the-winner rule.
	p := ppu.NewPPU()
	enableObjects(p)
	placeObject(p, 10, 1, 2, 5) // processed first
	placeObject(p, 3, 2, 2, 7)  // processed second, same priority

	winner := ppu.NewPPU()
	enableObjects(winner)
	placeObject(winner, 3, 2, 2, 7)
	winner.RenderScanline(0)

	p.RenderScanline(0)
	test.Equate(t, p.Framebuffer[0], winner.Framebuffer[0])
}
