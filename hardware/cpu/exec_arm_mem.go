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

package cpu

import "math/bits"

// armSingleDataTransfer implements LDR/STR/LDRB/STRB, in every combination
// of pre/post-indexing, up/down and immediate/shifted-register offset.
func (c *CPU) armSingleDataTransfer(instr uint32) int {
	preIndex := instr&(1<<24) != 0
	up := instr&(1<<23) != 0
	byteAccess := instr&(1<<22) != 0
	writeBack := instr&(1<<21) != 0
	load := instr&(1<<20) != 0
	rn := int(instr >> 16 & 0xf)
	rd := int(instr >> 12 & 0xf)

	var offset uint32
	if instr&(1<<25) == 0 {
		offset = instr & 0xfff
	} else {
		rm := int(instr & 0xf)
		shiftType := ShiftType(instr >> 5 & 0x3)
		amount := instr >> 7 & 0x1f
		offset, _ = shift(shiftType, c.readReg(rm), amount, c.cpsr.Carry, true)
	}

	base := c.readReg(rn)
	addr := base
	if preIndex {
		if up {
			addr = base + offset
		} else {
			addr = base - offset
		}
	}

	cycles := 1
	if load {
		var v uint32
		if byteAccess {
			v = uint32(c.bus.Read8(addr))
		} else {
			v = readUnalignedWord(c, addr)
		}
		cycles += c.bus.Cycles(addr, 32, false)
		c.writeReg(rd, v)
		if rd == 15 {
			cycles += 2
		}
	} else {
		v := c.readReg(rd)
		if rd == 15 {
			v += 4
		}
		if byteAccess {
			c.bus.Write8(addr, uint8(v))
		} else {
			c.bus.Write32(addr&^3, v)
		}
		cycles += c.bus.Cycles(addr, 32, false)
	}

	if !preIndex {
		if up {
			addr = base + offset
		} else {
			addr = base - offset
		}
		c.SetR(rn, addr)
	} else if writeBack {
		c.SetR(rn, addr)
	}

	return cycles
}

// readUnalignedWord implements the documented LDR behaviour for a
// non-word-aligned address: the word at the aligned address is read, then
// rotated right by 8 times the misalignment.
func readUnalignedWord(c *CPU, addr uint32) uint32 {
	v := c.bus.Read32(addr &^ 3)
	rot := (addr & 3) * 8
	if rot == 0 {
		return v
	}
	return bits.RotateLeft32(v, -int(rot))
}

// armHalfwordTransfer implements LDRH/STRH/LDRSB/LDRSH, sharing the
// pre/post and up/down indexing logic of the word transfer above but with
// a narrower, register-or-immediate-nibble-pair offset encoding.
func (c *CPU) armHalfwordTransfer(instr uint32) int {
	preIndex := instr&(1<<24) != 0
	up := instr&(1<<23) != 0
	immediateOffset := instr&(1<<22) != 0
	writeBack := instr&(1<<21) != 0
	load := instr&(1<<20) != 0
	rn := int(instr >> 16 & 0xf)
	rd := int(instr >> 12 & 0xf)
	sh := instr >> 5 & 0x3

	var offset uint32
	if immediateOffset {
		offset = (instr >> 8 & 0xf << 4) | (instr & 0xf)
	} else {
		rm := int(instr & 0xf)
		offset = c.readReg(rm)
	}

	base := c.readReg(rn)
	addr := base
	if preIndex {
		if up {
			addr = base + offset
		} else {
			addr = base - offset
		}
	}

	cycles := 1
	if load {
		var v uint32
		switch sh {
		case 1: // unsigned halfword
			v = uint32(c.bus.Read16(addr &^ 1))
		case 2: // signed byte
			v = uint32(int32(int8(c.bus.Read8(addr))))
		case 3: // signed halfword
			v = uint32(int32(int16(c.bus.Read16(addr &^ 1))))
		}
		cycles += c.bus.Cycles(addr, 16, false)
		c.writeReg(rd, v)
	} else {
		v := c.readReg(rd)
		c.bus.Write16(addr&^1, uint16(v))
		cycles += c.bus.Cycles(addr, 16, false)
	}

	if !preIndex {
		if up {
			addr = base + offset
		} else {
			addr = base - offset
		}
		c.SetR(rn, addr)
	} else if writeBack {
		c.SetR(rn, addr)
	}

	return cycles
}

// armBlockDataTransfer implements LDM/STM. Descending transfers are
// normalised to the ascending case by starting from base-4*count, the
// standard equivalence that lets a single loop handle all four P/U
// combinations.
func (c *CPU) armBlockDataTransfer(instr uint32) int {
	preIndex := instr&(1<<24) != 0
	up := instr&(1<<23) != 0
	forceUser := instr&(1<<22) != 0
	writeBack := instr&(1<<21) != 0
	load := instr&(1<<20) != 0
	rn := int(instr >> 16 & 0xf)
	list := uint16(instr & 0xffff)

	count := bits.OnesCount16(list)
	if count == 0 {
		count = 1
		list = 1 << 15
	}

	base := c.readReg(rn)
	var addr uint32
	if up {
		addr = base
	} else {
		addr = base - uint32(count)*4
	}

	cycles := 1
	includesR15 := list&(1<<15) != 0

	for i := 0; i < 16; i++ {
		if list&(1<<uint(i)) == 0 {
			continue
		}
		if preIndex {
			addr += 4
		}
		if load {
			v := c.bus.Read32(addr &^ 3)
			cycles += c.bus.Cycles(addr, 32, false)
			if i == 15 {
				c.writeReg(15, v)
			} else {
				c.SetR(i, v)
			}
		} else {
			v := c.R(i)
			if i == 15 {
				v = c.readReg(15) + 4
			}
			c.bus.Write32(addr&^3, v)
			cycles += c.bus.Cycles(addr, 32, false)
		}
		if !preIndex {
			addr += 4
		}
	}

	if writeBack {
		if up {
			c.SetR(rn, base+uint32(count)*4)
		} else {
			c.SetR(rn, base-uint32(count)*4)
		}
	}

	if forceUser && load && includesR15 {
		c.SetCPSR(c.SPSR())
	}

	return cycles
}
