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

package interrupt_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/interrupt"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestPendingRequiresIMEAndMatchingEnable(t *testing.T) {
	c := &interrupt.Controller{}

	c.Raise(interrupt.VBlank)
	test.Equate(t, c.Pending(), false)

	c.IME = true
	test.Equate(t, c.Pending(), false)

	c.IE = uint16(interrupt.VBlank)
	test.Equate(t, c.Pending(), true)
}

func TestPendingIgnoresUnrelatedSource(t *testing.T) {
	c := &interrupt.Controller{IME: true, IE: uint16(interrupt.Timer0)}
	c.Raise(interrupt.DMA1)
	test.Equate(t, c.Pending(), false)
}

func TestAckIFOnlyClearsWrittenBits(t *testing.T) {
	c := &interrupt.Controller{}
	c.Raise(interrupt.VBlank)
	c.Raise(interrupt.HBlank)

	c.AckIF(uint16(interrupt.VBlank))
	test.Equate(t, c.IF, uint16(interrupt.HBlank))
}

func TestReset(t *testing.T) {
	c := &interrupt.Controller{IE: 0xffff, IF: 0xffff, IME: true}
	c.Reset()
	test.Equate(t, c.IE, uint16(0))
	test.Equate(t, c.IF, uint16(0))
	test.Equate(t, c.IME, false)
}
