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

// screen geometry, in native GBA pixels.
const (
	ScreenWidth  = 240
	ScreenHeight = 160

	// VBlankStart is the first scanline of the vertical blank period.
	VBlankStart = 160

	// LinesPerFrame is the total scanline count, including the 68 lines of
	// vertical blank.
	LinesPerFrame = 228

	// CyclesPerLine is the CPU-cycle length of a single scanline (1006
	// cycles of the H-draw budget plus 226 of the H-blank budget).
	CyclesPerLine = 1232

	// HBlankStart is the cycle offset, within a scanline, at which HBlank
	// begins.
	HBlankStart = 1006
)

// storage sizes, in bytes.
const (
	vramSize = 0x18000
	oamSize  = 0x400
	palSize  = 0x400
)

// PPU is the scanline-based pixel processing unit. It owns the raw VRAM,
// OAM and palette RAM storage, the display-list registers described in
// registers.go, and the per-scanline rendering pipeline in background.go
// and object.go.
//
// PPU does not know how it is clocked. The top-level scheduler advances it
// one scanline at a time by calling StartLine/EndLine at the appropriate
// points in the CPU's cycle count, keeping the video timing state machine
// and its host-facing driver in separate places.
type PPU struct {
	VRAM [vramSize]byte
	OAM  [oamSize]byte
	PAL  [palSize]byte

	// Palette is a cache of the 512 15-bit BGR entries in PAL, expanded to
	// 32-bit RGBA host-native pixels. Rebuilt lazily by paletteColour
	// whenever the backing PAL bytes are written.
	palette      [512]uint32
	paletteDirty [512]bool

	// Framebuffer holds one composited RGBA frame, row-major,
	// ScreenWidth*ScreenHeight pixels.
	Framebuffer [ScreenWidth * ScreenHeight]uint32

	dispcnt  uint16
	dispstat uint16
	VCount   uint16

	// regs backs every I/O register in registers.go's offset table except
	// DISPCNT, DISPSTAT and VCOUNT, which are held in the named fields
	// above so that their read/write masking rules stay next to them.
	regs [0x30]uint16

	// affine background reference points, latched from BGxX/BGxY at the
	// start of every frame and incremented by BGxPB/BGxPD once per line
	// thereafter. See background.go.
	bg2RefX, bg2RefY int32
	bg3RefX, bg3RefY int32
	bg2X, bg2Y       int32
	bg3X, bg3Y       int32

	irq interrupt.Raiser

	// lineCycle is the CPU-cycle offset into the current scanline, used only
	// to decide when HBlank status/IRQ housekeeping is due.
	lineCycle int
}

// NewPPU returns a PPU in its power-on state.
func NewPPU() *PPU {
	p := &PPU{}
	for i := range p.paletteDirty {
		p.paletteDirty[i] = true
	}
	return p
}

// Plumb attaches the interrupt controller the PPU raises VBlank, HBlank and
// VCount-match interrupts on.
func (p *PPU) Plumb(irq interrupt.Raiser) {
	p.irq = irq
}

// Reset returns the PPU to its power-on state, without discarding the
// interrupt raiser attached by Plumb.
func (p *PPU) Reset() {
	irq := p.irq
	*p = PPU{}
	p.irq = irq
	for i := range p.paletteDirty {
		p.paletteDirty[i] = true
	}
}

// InVBlank reports whether the PPU is currently in the vertical blank
// period (scanlines 160-227 inclusive).
func (p *PPU) InVBlank() bool {
	return p.dispstat&dispstatVBlank != 0
}

// InHBlank reports whether the PPU is currently in the horizontal blank
// period of the current scanline.
func (p *PPU) InHBlank() bool {
	return p.dispstat&dispstatHBlank != 0
}
