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

// Package memory implements the address bus: region dispatch across BIOS,
// EWRAM, IWRAM, the I/O register file, palette, VRAM, OAM, cartridge ROM
// and cartridge backup, plus the waitstate-derived cycle cost the CPU
// charges for each access. Every other hardware package is reached only
// through the narrow capability it declares (dma.MemoryAccessor,
// cpu.Bus); Bus is the one type that knows the whole memory map.
package memory
