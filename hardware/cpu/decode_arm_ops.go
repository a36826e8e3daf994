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

// executeARM decodes and executes one 32-bit ARM instruction whose
// condition has already been found true, returning the extra cycles (over
// the fetch cost already charged by stepARM) it consumed.
func (c *CPU) executeARM(instr uint32) int {
	switch {
	case instr&0x0ffffff0 == 0x012fff10:
		return c.armBX(instr)
	case instr&0x0e000000 == 0x0a000000:
		return c.armBranch(instr)
	case instr&0x0fc000f0 == 0x00000090:
		return c.armMultiply(instr)
	case instr&0x0f8000f0 == 0x00800090:
		return c.armMultiplyLong(instr)
	case instr&0x0fb00ff0 == 0x01000090:
		return c.armSwap(instr)
	case instr&0x0fbf0fff == 0x010f0000 || instr&0x0fbf0fff == 0x014f0000:
		return c.armMRS(instr)
	case instr&0x0db0f000 == 0x0120f000:
		return c.armMSR(instr)
	case instr&0x0e000090 == 0x00000090 && instr&0x60 != 0:
		return c.armHalfwordTransfer(instr)
	case instr&0x0c000000 == 0x04000000:
		return c.armSingleDataTransfer(instr)
	case instr&0x0e000000 == 0x08000000:
		return c.armBlockDataTransfer(instr)
	case instr&0x0f000000 == 0x0f000000:
		return c.softwareInterrupt()
	case instr&0x0c000000 == 0x00000000:
		return c.armDataProcessing(instr)
	}
	return c.undefinedInstruction()
}

// armOperand2 decodes a data-processing instruction's second operand,
// returning its value and the barrel shifter's carry-out (valid whenever
// a shift actually took place; callers only apply it to the C flag when
// carryValid is true, keeping an unshifted immediate operand from
// clobbering C with a stale value).
func (c *CPU) armOperand2(instr uint32) (value uint32, carryOut bool, carryValid bool) {
	if instr&(1<<25) != 0 {
		imm := instr & 0xff
		rot := (instr >> 8 & 0xf) * 2
		if rot == 0 {
			return imm, c.cpsr.Carry, false
		}
		v, carry := shiftROR(imm, rot, c.cpsr.Carry, false)
		return v, carry, true
	}

	rm := int(instr & 0xf)
	shiftType := ShiftType(instr >> 5 & 0x3)

	if instr&(1<<4) == 0 {
		amount := instr >> 7 & 0x1f
		value := c.readReg(rm)
		if amount == 0 && shiftType == LSL {
			return value, c.cpsr.Carry, false
		}
		v, carry := shift(shiftType, value, amount, c.cpsr.Carry, true)
		return v, carry, true
	}

	rs := int(instr >> 8 & 0xf)
	amount := c.readReg(rs) & 0xff
	value = c.readReg(rm)
	if rm == 15 {
		value += 4
	}
	if amount == 0 {
		return value, c.cpsr.Carry, false
	}
	v, carry := shift(shiftType, value, amount, c.cpsr.Carry, false)
	return v, carry, true
}

const (
	dpAND = iota
	dpEOR
	dpSUB
	dpRSB
	dpADD
	dpADC
	dpSBC
	dpRSC
	dpTST
	dpTEQ
	dpCMP
	dpCMN
	dpORR
	dpMOV
	dpBIC
	dpMVN
)

func (c *CPU) armDataProcessing(instr uint32) int {
	opcode := instr >> 21 & 0xf
	s := instr&(1<<20) != 0
	rn := int(instr >> 16 & 0xf)
	rd := int(instr >> 12 & 0xf)

	op2, shCarry, shCarryValid := c.armOperand2(instr)
	rnVal := c.readReg(rn)

	var result uint32
	writesResult := true

	switch opcode {
	case dpAND, dpTST:
		result = rnVal & op2
		if opcode == dpTST {
			writesResult = false
		}
	case dpEOR, dpTEQ:
		result = rnVal ^ op2
		if opcode == dpTEQ {
			writesResult = false
		}
	case dpSUB, dpCMP:
		result = rnVal - op2
		if s {
			c.setSubtractionFlags(rnVal, op2, result)
		}
		if opcode == dpCMP {
			writesResult = false
		}
	case dpRSB:
		result = op2 - rnVal
		if s {
			c.setSubtractionFlags(op2, rnVal, result)
		}
	case dpADD, dpCMN:
		wide := uint64(rnVal) + uint64(op2)
		result = uint32(wide)
		if s {
			c.setArithmeticFlags(rnVal, op2, result, wide>>32 != 0)
		}
		if opcode == dpCMN {
			writesResult = false
		}
	case dpADC:
		var carry uint64
		if c.cpsr.Carry {
			carry = 1
		}
		wide := uint64(rnVal) + uint64(op2) + carry
		result = uint32(wide)
		if s {
			c.setArithmeticFlags(rnVal, op2, result, wide>>32 != 0)
		}
	case dpSBC:
		var borrow uint64
		if !c.cpsr.Carry {
			borrow = 1
		}
		wide := uint64(rnVal) - uint64(op2) - borrow
		result = uint32(wide)
		if s {
			c.setSubtractionFlags(rnVal, op2+uint32(borrow), result)
		}
	case dpRSC:
		var borrow uint64
		if !c.cpsr.Carry {
			borrow = 1
		}
		wide := uint64(op2) - uint64(rnVal) - borrow
		result = uint32(wide)
		if s {
			c.setSubtractionFlags(op2, rnVal+uint32(borrow), result)
		}
	case dpORR:
		result = rnVal | op2
	case dpMOV:
		result = op2
	case dpBIC:
		result = rnVal &^ op2
	case dpMVN:
		result = ^op2
	}

	isLogical := opcode == dpAND || opcode == dpEOR || opcode == dpTST || opcode == dpTEQ ||
		opcode == dpORR || opcode == dpMOV || opcode == dpBIC || opcode == dpMVN
	if s && isLogical {
		c.setLogicalFlags(result, shCarryValid, shCarry)
	}

	if !writesResult {
		return 1
	}

	if rd == 15 {
		if s {
			c.SetCPSR(c.SPSR())
		}
		c.writeReg(15, result)
		return 3
	}
	c.writeReg(rd, result)
	return 1
}

func (c *CPU) armMRS(instr uint32) int {
	rd := int(instr >> 12 & 0xf)
	useSPSR := instr&(1<<22) != 0
	if useSPSR {
		c.writeReg(rd, c.SPSR().Value())
	} else {
		c.writeReg(rd, c.CPSR().Value())
	}
	return 1
}

func (c *CPU) armMSR(instr uint32) int {
	useSPSR := instr&(1<<22) != 0
	flagsOnly := instr&(1<<16) == 0

	var v uint32
	if instr&(1<<25) != 0 {
		imm := instr & 0xff
		rot := (instr >> 8 & 0xf) * 2
		v, _ = shiftROR(imm, rot, c.cpsr.Carry, false)
		if rot == 0 {
			v = imm
		}
	} else {
		rm := int(instr & 0xf)
		v = c.readReg(rm)
	}

	if useSPSR {
		s := c.SPSR()
		if flagsOnly {
			s.FromValueFlagsOnly(v)
		} else {
			s.FromValue(v)
		}
		c.SetSPSR(s)
		return 1
	}

	if flagsOnly {
		c.cpsr.FromValueFlagsOnly(v)
	} else {
		c.SetCPSR(statusFromValue(v))
	}
	return 1
}

func statusFromValue(v uint32) Status {
	var s Status
	s.FromValue(v)
	return s
}

func (c *CPU) armMultiply(instr uint32) int {
	rd := int(instr >> 16 & 0xf)
	rn := int(instr >> 12 & 0xf)
	rs := int(instr >> 8 & 0xf)
	rm := int(instr & 0xf)
	accumulate := instr&(1<<21) != 0
	s := instr&(1<<20) != 0

	result := c.readReg(rm) * c.readReg(rs)
	if accumulate {
		result += c.readReg(rn)
	}
	c.writeReg(rd, result)
	if s {
		c.setLogicalFlags(result, false, false)
	}
	return 2
}

func (c *CPU) armMultiplyLong(instr uint32) int {
	rdHi := int(instr >> 16 & 0xf)
	rdLo := int(instr >> 12 & 0xf)
	rs := int(instr >> 8 & 0xf)
	rm := int(instr & 0xf)
	signed := instr&(1<<22) != 0
	accumulate := instr&(1<<21) != 0
	s := instr&(1<<20) != 0

	var result uint64
	if signed {
		result = uint64(int64(int32(c.readReg(rm))) * int64(int32(c.readReg(rs))))
	} else {
		result = uint64(c.readReg(rm)) * uint64(c.readReg(rs))
	}
	if accumulate {
		result += uint64(c.readReg(rdHi))<<32 | uint64(c.readReg(rdLo))
	}

	c.writeReg(rdLo, uint32(result))
	c.writeReg(rdHi, uint32(result>>32))
	if s {
		c.cpsr.Negative = result&(1<<63) != 0
		c.cpsr.Zero = result == 0
	}
	return 3
}

func (c *CPU) armSwap(instr uint32) int {
	rn := int(instr >> 16 & 0xf)
	rd := int(instr >> 12 & 0xf)
	rm := int(instr & 0xf)
	byteSwap := instr&(1<<22) != 0

	addr := c.readReg(rn)
	if byteSwap {
		old := c.bus.Read8(addr)
		c.bus.Write8(addr, uint8(c.readReg(rm)))
		c.writeReg(rd, uint32(old))
	} else {
		old := c.bus.Read32(addr)
		c.bus.Write32(addr, c.readReg(rm))
		c.writeReg(rd, old)
	}
	return 3
}

func (c *CPU) armBX(instr uint32) int {
	rm := int(instr & 0xf)
	target := c.readReg(rm)
	c.cpsr.Thumb = target&1 != 0
	if c.cpsr.Thumb {
		c.SetPC(target &^ 1)
	} else {
		c.SetPC(target &^ 3)
	}
	return 3
}

func (c *CPU) armBranch(instr uint32) int {
	link := instr&(1<<24) != 0
	offset := instr & 0xffffff
	if offset&0x800000 != 0 {
		offset |= 0xff000000
	}
	target := c.readReg(15) + offset<<2
	if link {
		c.SetR(14, c.PC())
	}
	c.SetPC(target)
	return 3
}
