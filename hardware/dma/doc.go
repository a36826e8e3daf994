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

// Package dma implements the four-channel DMA controller: SAD/DAD/CNT_L/
// CNT_H register decoding, the four trigger conditions (immediate, VBlank,
// HBlank, and the sound FIFO's special-case channels 1 and 2), and the
// fixed channel-0-highest priority arbitration between them.
//
// A channel does not touch memory itself. Controller.Step is driven by the
// top-level scheduler once a trigger condition is satisfied, and reads and
// writes through the narrow MemoryAccessor capability rather than holding a
// reference to the whole bus, mirroring the Plumb-a-capability idiom used
// throughout this codebase.
package dma
