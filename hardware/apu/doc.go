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

// Package apu implements the two direct-sound FIFO channels (A and B): the
// eight-entry sample queues fed by CPU writes or channel-1/2 DMA, and the
// timer-overflow hook that pops one sample per firing of whichever timer a
// FIFO is bound to.
//
// The four legacy tone/noise/wave channels are outside this project's
// scope; SOUNDCNT_H's FIFO-reset and enable bits are honoured, everything
// else in the PSG register range reads back as it was last written and has
// no audible effect.
package apu
