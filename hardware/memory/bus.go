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

// Palette, VRAM and OAM storage themselves live inside PPU, which also has
// to reach them from its rendering pipeline; Bus only routes CPU/DMA
// accesses there.
package memory

import (
	"math/bits"

	"github.com/jetsetilly/gopheradvance/hardware/apu"
	"github.com/jetsetilly/gopheradvance/hardware/dma"
	"github.com/jetsetilly/gopheradvance/hardware/interrupt"
	"github.com/jetsetilly/gopheradvance/hardware/ppu"
	"github.com/jetsetilly/gopheradvance/hardware/timer"
)

const (
	ewramSize = 0x40000
	iwramSize = 0x8000
)

// Haltable is the capability HALTCNT needs from the CPU: the ability to
// stop fetching until an enabled interrupt becomes pending. Memory takes
// this rather than a cpu.CPU reference so the dependency runs one way.
type Haltable interface {
	Halt()
}

// Bus is the GBA's 32-bit address space, addressed by the top byte of a
// 32-bit address into one of BIOS, EWRAM, IWRAM, I/O, palette, VRAM, OAM,
// cartridge ROM (mirrored across three wait-state regions) or cartridge
// backup.
type Bus struct {
	bios   biosState
	ewram  [ewramSize]byte
	iwram  [iwramSize]byte
	keypad *keypadState
	wait   *waitTables

	cart  *Cartridge
	ppu   *ppu.PPU
	apu   *apu.APU
	dma   *dma.Controller
	timer *timer.Controller
	irq   *interrupt.Controller

	postflg byte
	halt    Haltable
}

// NewBus wires the subsystems together: DMA and the CPU both reach every
// region only through Bus itself, since Bus's Read/Write methods already
// have the exact shape dma.MemoryAccessor and cpu.Bus need. Timer is left
// for the caller to plumb: the top-level scheduler wraps APU in an adapter
// that also notifies DMA of a FIFO refill, and Bus has no business knowing
// about that wiring.
func NewBus(cart *Cartridge, p *ppu.PPU, a *apu.APU, d *dma.Controller, t *timer.Controller, irq *interrupt.Controller) *Bus {
	b := &Bus{
		cart:   cart,
		ppu:    p,
		apu:    a,
		dma:    d,
		timer:  t,
		irq:    irq,
		keypad: newKeypadState(),
		wait:   newWaitTables(),
	}
	b.keypad.irq = irq
	d.Plumb(b, irq)
	p.Plumb(irq)
	return b
}

// SetHalt attaches the CPU's halt callback; called once during setup.
func (b *Bus) SetHalt(h Haltable) {
	b.halt = h
}

// NotifyDMATransferLength satisfies dma.TransferLengthNotifier. An EEPROM
// access always runs over the 0x0d cartridge mirror, in one direction or
// the other depending on whether the game is reading or writing; either
// address landing there is enough to forward the transfer's total unit
// count to the cartridge's backup.
func (b *Bus) NotifyDMATransferLength(srcAddr, dstAddr uint32, count uint32) {
	if srcAddr>>24 == 0x0d || dstAddr>>24 == 0x0d {
		b.cart.NotifyEEPROMTransferLength(count)
	}
}

// SetKeyState reports the current button state to the keypad register, 0
// for pressed and 1 for released in the ten documented bit positions.
func (b *Bus) SetKeyState(v uint16) {
	b.keypad.SetInput(v)
}

// LoadBIOS copies data into the BIOS region, up to its 16 KiB capacity.
func (b *Bus) LoadBIOS(data []byte) {
	b.bios.load(data)
}

// NotifyPC forwards the CPU's current program counter to the BIOS read
// latch, which needs to know whether execution is still inside the boot
// ROM without the cpu.Bus interface growing a PC-reporting method every
// other implementer would have to satisfy too.
func (b *Bus) NotifyPC(pc uint32) {
	b.bios.NotifyPC(pc)
}

func (b *Bus) readByte(addr uint32) uint8 {
	switch addr >> 24 {
	case 0x00:
		return b.bios.Read8(addr)
	case 0x02:
		return b.ewram[addr&(ewramSize-1)]
	case 0x03:
		return b.iwram[addr&(iwramSize-1)]
	case 0x04:
		off := addr & 0xffffff
		if off >= 0x400 {
			return 0
		}
		return b.readIO8(off)
	case 0x05:
		return b.ppu.ReadPalette8(addr)
	case 0x06:
		return b.ppu.ReadVRAM8(addr)
	case 0x07:
		return b.ppu.ReadOAM8(addr)
	case 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d:
		return b.cart.ReadROM8(addr & 0x01ffffff)
	case 0x0e, 0x0f:
		return b.cart.ReadBackup8(addr & 0xffff)
	}
	return 0
}

func (b *Bus) writeByte(addr uint32, v uint8) {
	switch addr >> 24 {
	case 0x00:
		// BIOS is read-only from the bus.
	case 0x02:
		b.ewram[addr&(ewramSize-1)] = v
	case 0x03:
		b.iwram[addr&(iwramSize-1)] = v
	case 0x04:
		off := addr & 0xffffff
		if off < 0x400 {
			b.writeIO8(off, v)
		}
	case 0x05:
		b.ppu.WritePalette8(addr, v)
	case 0x06:
		b.ppu.WriteVRAM8(addr, v)
	case 0x07:
		// OAM ignores byte writes; the object attribute fields it holds
		// are only ever meaningful as halfwords.
	case 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d:
		b.cart.WriteROM8(addr&0x01ffffff, v)
	case 0x0e, 0x0f:
		b.cart.WriteBackup8(addr&0xffff, v)
	}
}

// Read8 satisfies cpu.Bus and dma.MemoryAccessor.
func (b *Bus) Read8(addr uint32) uint8 {
	return b.readByte(addr)
}

// readHalf reads the halfword at an already-aligned address. The backup
// and cartridge ROM regions are special-cased to call through to the
// cartridge's own Read16, since an EEPROM-equipped cartridge's backend
// advances a bit-stream state machine one step per halfword access:
// assembling the result from two Read8 calls would step it twice. VRAM is
// routed to PPU's own Read16 rather than PPU.ReadVRAM8 twice purely to
// avoid computing the mirrored offset twice.
func (b *Bus) readHalf(aligned uint32) uint16 {
	switch aligned >> 24 {
	case 0x05:
		return uint16(b.ppu.ReadPalette8(aligned)) | uint16(b.ppu.ReadPalette8(aligned+1))<<8
	case 0x06:
		return b.ppu.ReadVRAM16(aligned)
	case 0x07:
		return b.ppu.ReadOAM16(aligned)
	case 0x0e, 0x0f:
		return b.cart.ReadBackup16(aligned & 0xffff)
	case 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d:
		return b.cart.ReadROM16(aligned & 0x01ffffff)
	}
	return uint16(b.readByte(aligned)) | uint16(b.readByte(aligned+1))<<8
}

// Read16 reads an aligned halfword, rotating the result if addr itself is
// misaligned: the ARM7TDMI's data bus always fetches at halfword or word
// boundaries and rotates the fetched value into place for the requester.
func (b *Bus) Read16(addr uint32) uint16 {
	aligned := addr &^ 1
	v := b.readHalf(aligned)
	if rot := 8 * (addr & 1); rot != 0 {
		v = bits.RotateLeft16(v, -int(rot))
	}
	return v
}

// Read32 is Read16's word-sized counterpart.
func (b *Bus) Read32(addr uint32) uint32 {
	aligned := addr &^ 3
	v := uint32(b.readHalf(aligned)) | uint32(b.readHalf(aligned+2))<<16
	if rot := 8 * (addr & 3); rot != 0 {
		v = bits.RotateLeft32(v, -int(rot))
	}
	return v
}

// Write8 satisfies cpu.Bus and dma.MemoryAccessor.
func (b *Bus) Write8(addr uint32, v uint8) {
	b.writeByte(addr, v)
}

// writeHalf writes the halfword v at an already-aligned address. OAM only
// ignores byte-sized stores: a genuine halfword store is the normal way
// object attributes are written, so it is routed to PPU.WriteOAM16 rather
// than through writeByte. PAL, ROM and the cartridge backup need their own
// halfword paths for the same reason readHalf does.
func (b *Bus) writeHalf(aligned uint32, v uint16) {
	switch aligned >> 24 {
	case 0x05:
		b.ppu.WritePalette16(aligned, v)
	case 0x06:
		b.ppu.WriteVRAM16(aligned, v)
	case 0x07:
		b.ppu.WriteOAM16(aligned, v)
	case 0x0e, 0x0f:
		b.cart.WriteBackup16(aligned&0xffff, v)
	case 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d:
		b.cart.WriteROM16(aligned&0x01ffffff, v)
	default:
		b.writeByte(aligned, uint8(v))
		b.writeByte(aligned+1, uint8(v>>8))
	}
}

// Write16 forces addr to a halfword boundary before writing, matching the
// bus's behaviour of ignoring the low address bit on a halfword access.
func (b *Bus) Write16(addr uint32, v uint16) {
	b.writeHalf(addr&^1, v)
}

// Write32 forces addr to a word boundary before writing.
func (b *Bus) Write32(addr uint32, v uint32) {
	aligned := addr &^ 3

	if aligned>>24 == 0x04 {
		off := aligned & 0xffffff
		if off < 0x400 && b.writeIO32(off, v) {
			return
		}
	}

	b.writeHalf(aligned, uint16(v))
	b.writeHalf(aligned+2, uint16(v>>16))
}

func (b *Bus) regionFor(addr uint32) region {
	switch addr >> 24 {
	case 0x00:
		return regionBIOS
	case 0x02:
		return regionEWRAM
	case 0x03:
		return regionIWRAM
	case 0x04:
		return regionIO
	case 0x05:
		return regionPAL
	case 0x06:
		return regionVRAM
	case 0x07:
		return regionOAM
	case 0x08, 0x09:
		return regionROM0
	case 0x0a, 0x0b:
		return regionROM1
	case 0x0c, 0x0d:
		return regionROM2
	case 0x0e, 0x0f:
		return regionSRAM
	}
	return regionIWRAM
}

// Cycles satisfies cpu.Bus: the wait-state cost of an access of width bits
// (8, 16 or 32) at addr, honouring sequential.
func (b *Bus) Cycles(addr uint32, width int, sequential bool) int {
	return b.wait.cycles(b.regionFor(addr), width, sequential)
}
