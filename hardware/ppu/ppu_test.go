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

	"github.com/jetsetilly/gopheradvance/hardware/interrupt"
	"github.com/jetsetilly/gopheradvance/hardware/ppu"
	"github.com/jetsetilly/gopheradvance/test"
)

func writeIO16(p *ppu.PPU, off uint32, v uint16) {
	p.WriteIO8(off, uint8(v))
	p.WriteIO8(off+1, uint8(v>>8))
}

func readIO16(t *testing.T, p *ppu.PPU, off uint32) uint16 {
	t.Helper()
	lo, ok := p.ReadIO8(off)
	test.Equate(t, ok, true)
	hi, ok := p.ReadIO8(off + 1)
	test.Equate(t, ok, true)
	return uint16(lo) | uint16(hi)<<8
}

func TestDISPCNTModeAndFlags(t *testing.T) {
	p := ppu.NewPPU()
	writeIO16(p, 0x00, 0x0480|0x03) // mode 3, BG2 enable, force blank

	test.Equate(t, p.Mode(), 3)
	test.Equate(t, p.BGEnabled(2), true)
	test.Equate(t, p.BGEnabled(0), false)
	test.Equate(t, p.ForceBlank(), true)
}

func TestOutOfRangeIOAccessFails(t *testing.T) {
	p := ppu.NewPPU()
	_, ok := p.ReadIO8(ppu.IORange)
	test.Equate(t, ok, false)

	ok = p.WriteIO8(ppu.IORange, 0xff)
	test.Equate(t, ok, false)
}

func TestDISPSTATStatusBitsAreReadOnly(t *testing.T) {
	p := ppu.NewPPU()
	// attempt to set VBlank/HBlank/VCount-match bits directly; only the
	// IRQ-enable bits and the VCount-match target byte should take
	writeIO16(p, 0x04, 0xffff)

	got := readIO16(t, p, 0x04)
	test.Equate(t, got&0x0001, uint16(0)) // VBlank
	test.Equate(t, got&0x0002, uint16(0)) // HBlank
	test.Equate(t, got&0x0004, uint16(0)) // VCount match
	test.Equate(t, got&0x0008, uint16(0x0008))
}

func TestBeginScanlineRaisesVBlankOnce(t *testing.T) {
	p := ppu.NewPPU()
	irq := &interrupt.Controller{}
	p.Plumb(irq)

	writeIO16(p, 0x04, 0x0008) // enable VBlank IRQ

	for line := 0; line < ppu.VBlankStart; line++ {
		p.BeginScanline(line)
	}
	test.Equate(t, irq.IF, uint16(0))
	test.Equate(t, p.InVBlank(), false)

	p.BeginScanline(ppu.VBlankStart)
	test.Equate(t, p.InVBlank(), true)
	test.Equate(t, irq.IF, uint16(interrupt.VBlank))
}

func TestVBlankFlagClearsOnFinalLine(t *testing.T) {
	p := ppu.NewPPU()
	p.BeginScanline(ppu.LinesPerFrame - 1)
	test.Equate(t, p.InVBlank(), false)
}

func TestBeginHBlankRaisesOnceUntilNextScanline(t *testing.T) {
	p := ppu.NewPPU()
	irq := &interrupt.Controller{}
	p.Plumb(irq)
	writeIO16(p, 0x04, 0x0010) // enable HBlank IRQ

	p.BeginHBlank()
	test.Equate(t, p.InHBlank(), true)
	test.Equate(t, irq.IF, uint16(interrupt.HBlank))

	irq.AckIF(uint16(interrupt.HBlank))
	p.BeginHBlank() // already in HBlank this line, no second raise
	test.Equate(t, irq.IF, uint16(0))

	p.BeginScanline(1)
	test.Equate(t, p.InHBlank(), false)
}

func TestVCountMatchRaisesInterrupt(t *testing.T) {
	p := ppu.NewPPU()
	irq := &interrupt.Controller{}
	p.Plumb(irq)

	writeIO16(p, 0x04, 0x0020|42<<8) // enable VCount IRQ, target line 42

	p.BeginScanline(41)
	test.Equate(t, irq.IF, uint16(0))

	p.BeginScanline(42)
	test.Equate(t, irq.IF, uint16(interrupt.VCount))
}

func TestPaletteByteWritePromotesToHalfword(t *testing.T) {
	p := ppu.NewPPU()
	p.WritePalette8(0, 0xff)
	test.Equate(t, p.ReadPalette8(0), uint8(0xff))
	test.Equate(t, p.ReadPalette8(1), uint8(0xff))
}

func TestPaletteHalfwordWriteAlignsDown(t *testing.T) {
	p := ppu.NewPPU()
	p.WritePalette16(1, 0xbeef) // off&^1 aligns to 0
	test.Equate(t, p.ReadPalette8(0), uint8(0xef))
	test.Equate(t, p.ReadPalette8(1), uint8(0xbe))
}

func TestReset(t *testing.T) {
	p := ppu.NewPPU()
	irq := &interrupt.Controller{}
	p.Plumb(irq)

	writeIO16(p, 0x00, 0xffff)
	p.WritePalette8(0, 0xaa)

	p.Reset()

	test.Equate(t, p.Mode(), 0)
	test.Equate(t, p.ReadPalette8(0), uint8(0))

	// interrupt raiser survives the reset
	writeIO16(p, 0x04, 0x0008)
	p.BeginScanline(ppu.VBlankStart)
	test.Equate(t, irq.IF, uint16(interrupt.VBlank))
}
