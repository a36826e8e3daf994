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

// Package interrupt implements the IE/IF/IME register trio shared by every
// other subsystem. It is deliberately narrow: the CPU/Bus/DMA/PPU/Timer
// cycle would otherwise be tangled into a single dependency knot, so each of
// those packages is given only the Raiser capability they need rather than
// a reference to the whole Controller.
package interrupt

// Source identifies one of the fourteen interrupt sources documented at
// REG_IE / REG_IF (I/O offset 0x200/0x202).
type Source uint16

// The fourteen documented interrupt sources, in bit order.
const (
	VBlank Source = 1 << iota
	HBlank
	VCount
	Timer0
	Timer1
	Timer2
	Timer3
	Serial
	DMA0
	DMA1
	DMA2
	DMA3
	Keypad
	GamePak
)

// Raiser is the narrow capability handed to the PPU, DMA and Timer
// subsystems so that they can signal an interrupt without holding a
// reference to the whole Controller (or, transitively, to the CPU).
type Raiser interface {
	Raise(src Source)
}

// Controller owns REG_IE, REG_IF and REG_IME.
type Controller struct {
	// IE: per-source enable mask, fully read/write.
	IE uint16

	// IF: per-source pending flags. Hardware semantics: a source sets its
	// bit by ORing in; the CPU (or DMA/host) clears a bit by writing a 1 to
	// it, never by writing a 0.
	IF uint16

	// IME: master interrupt enable.
	IME bool
}

// Raise implements interrupt.Raiser.
func (c *Controller) Raise(src Source) {
	c.IF |= uint16(src)
}

// Pending reports whether the CPU should take an IRQ exception: master
// enable set, and at least one enabled source has its flag set.
func (c *Controller) Pending() bool {
	return c.IME && c.IE&c.IF != 0
}

// AckIF applies a write-1-to-clear write to REG_IF.
func (c *Controller) AckIF(v uint16) {
	c.IF &^= v
}

// Reset returns the controller to its power-on state.
func (c *Controller) Reset() {
	c.IE = 0
	c.IF = 0
	c.IME = false
}
