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

package hardware

import (
	"github.com/jetsetilly/gopheradvance/hardware/dma"
	"github.com/jetsetilly/gopheradvance/hardware/ppu"
)

// step executes exactly one CPU instruction (or, while halted, one tick of
// noticing an interrupt) and performs the bookkeeping every instruction
// boundary needs: the BIOS latch has to see the fetch address before the
// CPU consumes it, and the timers have to see the actual cycle cost
// afterwards so an overflow lands on the instruction boundary it belongs
// to, not the next one.
func (g *GBA) step() int {
	g.Mem.NotifyPC(g.CPU.PC())
	used := g.CPU.Step()
	g.Timer.Step(used)
	return used
}

// runBudget drives the CPU until at least budget cycles have been spent,
// returning the actual total. The final instruction of a budget may
// overshoot it: the scheduler is cycle-counted at instruction boundaries,
// not cycle-interruptible mid-instruction.
func (g *GBA) runBudget(budget int) int {
	spent := 0
	for spent < budget {
		spent += g.step()
	}
	return spent
}

// runLine executes one scanline: clear the H-blank and V-count-match
// flags, run the V-blank housekeeping when entering V-blank, spend the
// H-draw budget, render and run H-blank DMA for visible lines, mark
// H-blank, then spend the H-blank budget. vcount itself is line, passed
// in by the caller rather than tracked here so RunFrame stays the single
// place that owns the 0..227 wraparound.
func (g *GBA) runLine(line int) {
	g.PPU.BeginScanline(line)

	if line == ppu.VBlankStart {
		g.DMA.Check(dma.VBlank)
	}

	g.runBudget(ppu.HBlankStart)

	if line < ppu.VBlankStart {
		g.PPU.RenderScanline(line)
		g.DMA.Check(dma.HBlank)
	}
	g.PPU.BeginHBlank()

	g.runBudget(ppu.CyclesPerLine - ppu.HBlankStart)

	g.APU.Advance(ppu.CyclesPerLine)
}
