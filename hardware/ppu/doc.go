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

// Package ppu implements the scanline-based pixel processing unit: the
// display list of registers (DISPCNT/DISPSTAT/BGxCNT/...), the raw VRAM/
// OAM/palette RAM storage, the derived native-pixel palette cache, and the
// per-scanline background and object compositing described for modes 0-4.
//
// The scanline state machine itself (the vcount==160/vblank transitions,
// the flag/IRQ housekeeping at the top and bottom of each line) lives here
// as methods on PPU. The line-to-line orchestration - interleaving CPU
// execution, DMA triggers and APU advance around those methods - belongs
// to the top-level scheduler in the hardware package, matching the split
// between hardware/tia (the chip) and hardware/run.go and hardware/step.go
// (the loop that drives it) in the reference architecture this is modelled
// on.
package ppu
