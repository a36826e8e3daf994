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

package dma_test

import (
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/dma"
	"github.com/jetsetilly/gopheradvance/hardware/interrupt"
	"github.com/jetsetilly/gopheradvance/test"
)

// flatMemory is a MemoryAccessor over one contiguous byte slice, addresses
// used directly as indices.
type flatMemory struct {
	buf [0x10000]byte
}

func (m *flatMemory) Read8(addr uint32) uint8  { return m.buf[addr] }
func (m *flatMemory) Write8(addr uint32, v uint8) { m.buf[addr] = v }

func (m *flatMemory) Read16(addr uint32) uint16 {
	return binary.LittleEndian.Uint16(m.buf[addr:])
}
func (m *flatMemory) Write16(addr uint32, v uint16) {
	binary.LittleEndian.PutUint16(m.buf[addr:], v)
}

func (m *flatMemory) Read32(addr uint32) uint32 {
	return binary.LittleEndian.Uint32(m.buf[addr:])
}
func (m *flatMemory) Write32(addr uint32, v uint32) {
	binary.LittleEndian.PutUint32(m.buf[addr:], v)
}

func writeReg32(c *dma.Controller, base uint32, v uint32) {
	for i := uint32(0); i < 4; i++ {
		c.WriteIO8(base+i, uint8(v>>(i*8)))
	}
}

func writeReg16(c *dma.Controller, base uint32, v uint16) {
	c.WriteIO8(base, uint8(v))
	c.WriteIO8(base+1, uint8(v>>8))
}

const channelStride = 12

func TestImmediateTransferRunsOnEnable(t *testing.T) {
	mem := &flatMemory{}
	binary.LittleEndian.PutUint16(mem.buf[0x1000:], 0x1234)
	binary.LittleEndian.PutUint16(mem.buf[0x1002:], 0x5678)
	binary.LittleEndian.PutUint16(mem.buf[0x1004:], 0x9abc)
	binary.LittleEndian.PutUint16(mem.buf[0x1006:], 0xdef0)

	c := dma.NewController()
	c.Plumb(mem, &interrupt.Controller{})

	writeReg32(c, 0, 0x1000)          // SAD
	writeReg32(c, 4, 0x2000)          // DAD
	writeReg16(c, 8, 4)               // CNT_L: 4 units
	writeReg16(c, 10, 0x8000)         // CNT_H: enable, immediate, 16-bit, increment

	test.Equate(t, mem.Read16(0x2000), uint16(0x1234))
	test.Equate(t, mem.Read16(0x2002), uint16(0x5678))
	test.Equate(t, mem.Read16(0x2004), uint16(0x9abc))
	test.Equate(t, mem.Read16(0x2006), uint16(0xdef0))
}

func TestVBlankTransferWaitsForMatchingTrigger(t *testing.T) {
	mem := &flatMemory{}
	mem.Write16(0x3000, 0xbeef)

	c := dma.NewController()
	c.Plumb(mem, &interrupt.Controller{})

	base := uint32(channelStride) // channel 1
	writeReg32(c, base, 0x3000)
	writeReg32(c, base+4, 0x4000)
	writeReg16(c, base+8, 1)
	writeReg16(c, base+10, 0x9000) // enable, VBlank timing

	c.Check(dma.HBlank)
	test.Equate(t, mem.Read16(0x4000), uint16(0))

	c.Check(dma.VBlank)
	test.Equate(t, mem.Read16(0x4000), uint16(0xbeef))

	// non-repeating channel disables itself after the transfer
	mem.Write16(0x3000, 0x0bad)
	c.Check(dma.VBlank)
	test.Equate(t, mem.Read16(0x4000), uint16(0xbeef))
}

func TestFIFODMAIgnoresChannelsNotConfiguredForIt(t *testing.T) {
	mem := &flatMemory{}
	mem.Write32(0x1000, 0xcafef00d)

	c := dma.NewController()
	c.Plumb(mem, &interrupt.Controller{})

	// channel 0 never responds to NotifyFIFO, even armed with a Special
	// timing and a DAD matching the FIFO address
	writeReg32(c, 0, 0x1000)
	writeReg32(c, 4, 0x5000)
	writeReg16(c, 8, 1)
	writeReg16(c, 10, 0xb000) // enable, Special timing

	c.NotifyFIFO(0x5000, 0)
	test.Equate(t, mem.Read32(0x5000), uint32(0))
}

func TestFIFODMASkipsRefillAboveFillLevelThreshold(t *testing.T) {
	mem := &flatMemory{}
	mem.Write32(0x1000, 0xcafef00d)

	c := dma.NewController()
	c.Plumb(mem, &interrupt.Controller{})

	writeReg32(c, channelStride, 0x1000)
	writeReg32(c, channelStride+4, 0x5000)
	writeReg16(c, channelStride+8, 1)
	writeReg16(c, channelStride+10, 0xb000) // enable, Special timing

	c.NotifyFIFO(0x5000, 17)
	test.Equate(t, mem.Read32(0x5000), uint32(0))

	c.NotifyFIFO(0x5000, 16)
	test.Equate(t, mem.Read32(0x5000), uint32(0xcafef00d))
}
