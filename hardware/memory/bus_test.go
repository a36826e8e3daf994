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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/apu"
	"github.com/jetsetilly/gopheradvance/hardware/dma"
	"github.com/jetsetilly/gopheradvance/hardware/interrupt"
	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/hardware/ppu"
	"github.com/jetsetilly/gopheradvance/hardware/timer"
	"github.com/jetsetilly/gopheradvance/test"
)

func newTestBus() (*memory.Bus, *interrupt.Controller) {
	irq := &interrupt.Controller{}
	cart := memory.NewCartridge(make([]byte, 0x1000), memory.BackupSRAM)
	b := memory.NewBus(cart, ppu.NewPPU(), apu.NewAPU(), dma.NewController(), timer.NewController(), irq)
	return b, irq
}

func TestEWRAMAndIWRAMRoundTrip(t *testing.T) {
	b, _ := newTestBus()

	b.Write8(0x02000010, 0xab)
	test.Equate(t, b.Read8(0x02000010), uint8(0xab))

	b.Write8(0x03000020, 0xcd)
	test.Equate(t, b.Read8(0x03000020), uint8(0xcd))
}

func TestBIOSReadPermittedAtBootPC(t *testing.T) {
	b, _ := newTestBus()
	b.LoadBIOS([]byte{0x11, 0x22, 0x33, 0x44})
	// PC defaults to 0, inside the BIOS region, so a direct read succeeds
	test.Equate(t, b.Read8(0x00000000), uint8(0x11))
	test.Equate(t, b.Read8(0x00000001), uint8(0x22))
}

func TestBIOSReadOutsideProgramCounterReturnsLatch(t *testing.T) {
	b, _ := newTestBus()
	b.LoadBIOS([]byte{0x11, 0x22, 0x33, 0x44})
	b.Read32(0x00000000) // legitimate fetch while pc==0, latches the word

	b.NotifyPC(0x08000000) // execution has left the BIOS
	test.Equate(t, b.Read8(0x00000000), uint8(0x11))
	test.Equate(t, b.Read8(0x00000001), uint8(0x22))
}

func TestRead16RotatesOnMisalignedAddress(t *testing.T) {
	b, _ := newTestBus()
	b.Write16(0x02000000, 0xabcd)
	test.Equate(t, b.Read16(0x02000001), uint16(0xcdab))
}

func TestRead32RotatesOnMisalignedAddress(t *testing.T) {
	b, _ := newTestBus()
	b.Write32(0x02000000, 0x11223344)
	test.Equate(t, b.Read32(0x02000002), uint32(0x33441122))
}

func TestKeypadIRQFiresOnMatchingSelection(t *testing.T) {
	b, irq := newTestBus()
	irq.IME = true
	irq.IE = uint16(interrupt.Keypad)

	b.SetKeyState(0x03ff) // nothing pressed
	test.Equate(t, irq.Pending(), false)

	// KEYCNT: enable IRQ (bit14), OR mode, select button A (bit0)
	b.Write8(0x04000132, 0x01)
	b.Write8(0x04000133, 0x40)

	b.SetKeyState(0x03fe) // button A pressed (bit0 low)
	test.Equate(t, irq.Pending(), true)
}

func TestWAITCNTRoundTrip(t *testing.T) {
	b, _ := newTestBus()
	b.Write8(0x04000204, 0x5a)
	b.Write8(0x04000205, 0x01)
	test.Equate(t, b.Read8(0x04000204), uint8(0x5a))
	test.Equate(t, b.Read8(0x04000205), uint8(0x01))
}

func TestCartridgeROMAndBackupRouting(t *testing.T) {
	b, _ := newTestBus()

	b.Write8(0x0e000000, 0x42)
	test.Equate(t, b.Read8(0x0e000000), uint8(0x42))

	// ROM region reads back whatever NewCartridge's zeroed image holds
	test.Equate(t, b.Read8(0x08000000), uint8(0x00))
}

func TestUnmappedIORegionReadsZero(t *testing.T) {
	b, _ := newTestBus()
	test.Equate(t, b.Read8(0x04000120), uint8(0)) // serial, unimplemented
}
