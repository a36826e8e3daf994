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

// executeThumb decodes and executes one 16-bit Thumb instruction,
// returning the extra cycles (over the fetch cost already charged by
// stepThumb) it consumed. The nineteen Thumb instruction formats are
// tried in order of how specific their fixed bits are, most specific
// first, mirroring the format numbering in the ARM7TDMI reference.
func (c *CPU) executeThumb(instr uint16) int {
	switch {
	case instr&0xff00 == 0xdf00:
		return c.softwareInterrupt()
	case instr&0xf800 == 0xe000:
		return c.thumbUnconditionalBranch(instr)
	case instr&0xf000 == 0xd000 && instr>>8&0xf != 0xf:
		return c.thumbConditionalBranch(instr)
	case instr&0xf000 == 0xc000:
		return c.thumbMultipleLoadStore(instr)
	case instr&0xf600 == 0xb400:
		return c.thumbPushPop(instr)
	case instr&0xff00 == 0xb000:
		return c.thumbAddOffsetToSP(instr)
	case instr&0xf000 == 0xa000:
		return c.thumbLoadAddress(instr)
	case instr&0xf000 == 0x9000:
		return c.thumbSPRelativeLoadStore(instr)
	case instr&0xf000 == 0x8000:
		return c.thumbLoadStoreHalfword(instr)
	case instr&0xe000 == 0x6000:
		return c.thumbLoadStoreImmediateOffset(instr)
	case instr&0xf200 == 0x5200:
		return c.thumbLoadStoreSignExtended(instr)
	case instr&0xf200 == 0x5000:
		return c.thumbLoadStoreRegisterOffset(instr)
	case instr&0xf800 == 0x4800:
		return c.thumbPCRelativeLoad(instr)
	case instr&0xfc00 == 0x4400:
		return c.thumbHiRegisterOps(instr)
	case instr&0xfc00 == 0x4000:
		return c.thumbALU(instr)
	case instr&0xe000 == 0x2000:
		return c.thumbImmediateOp(instr)
	case instr&0xf800 == 0x1800:
		return c.thumbAddSubtract(instr)
	case instr&0xe000 == 0x0000:
		return c.thumbMoveShifted(instr)
	}
	return c.undefinedInstruction()
}

// thumbMoveShifted implements format 1: LSL/LSR/ASR Rd, Rs, #imm5.
func (c *CPU) thumbMoveShifted(instr uint16) int {
	op := instr >> 11 & 0x3
	amount := uint32(instr >> 6 & 0x1f)
	rs := int(instr >> 3 & 0x7)
	rd := int(instr & 0x7)

	v, carry := shift(ShiftType(op), c.readReg(rs), amount, c.cpsr.Carry, true)
	c.SetR(rd, v)
	c.setLogicalFlags(v, true, carry)
	return 1
}

// thumbAddSubtract implements format 2: ADD/SUB Rd, Rs, Rn/#imm3.
func (c *CPU) thumbAddSubtract(instr uint16) int {
	immediate := instr&(1<<10) != 0
	subtract := instr&(1<<9) != 0
	rnOrImm := uint32(instr >> 6 & 0x7)
	rs := int(instr >> 3 & 0x7)
	rd := int(instr & 0x7)

	a := c.readReg(rs)
	var b uint32
	if immediate {
		b = rnOrImm
	} else {
		b = c.readReg(int(rnOrImm))
	}

	var result uint32
	if subtract {
		result = a - b
		c.setSubtractionFlags(a, b, result)
	} else {
		wide := uint64(a) + uint64(b)
		result = uint32(wide)
		c.setArithmeticFlags(a, b, result, wide>>32 != 0)
	}
	c.SetR(rd, result)
	return 1
}

// thumbImmediateOp implements format 3: MOV/CMP/ADD/SUB Rd, #imm8.
func (c *CPU) thumbImmediateOp(instr uint16) int {
	op := instr >> 11 & 0x3
	rd := int(instr >> 8 & 0x7)
	imm := uint32(instr & 0xff)

	a := c.readReg(rd)
	switch op {
	case 0: // MOV
		c.SetR(rd, imm)
		c.setLogicalFlags(imm, false, false)
	case 1: // CMP
		result := a - imm
		c.setSubtractionFlags(a, imm, result)
	case 2: // ADD
		wide := uint64(a) + uint64(imm)
		result := uint32(wide)
		c.setArithmeticFlags(a, imm, result, wide>>32 != 0)
		c.SetR(rd, result)
	case 3: // SUB
		result := a - imm
		c.setSubtractionFlags(a, imm, result)
		c.SetR(rd, result)
	}
	return 1
}

// thumbALU implements format 4: the sixteen two-operand ALU operations
// (AND, EOR, LSL, LSR, ASR, ADC, SBC, ROR, TST, NEG, CMP, CMN, ORR, MUL,
// BIC, MVN), all operating on the low eight registers.
func (c *CPU) thumbALU(instr uint16) int {
	op := instr >> 6 & 0xf
	rs := int(instr >> 3 & 0x7)
	rd := int(instr & 0x7)

	a := c.readReg(rd)
	b := c.readReg(rs)
	cycles := 1

	switch op {
	case 0: // AND
		r := a & b
		c.SetR(rd, r)
		c.setLogicalFlags(r, false, false)
	case 1: // EOR
		r := a ^ b
		c.SetR(rd, r)
		c.setLogicalFlags(r, false, false)
	case 2: // LSL
		r, carry := shift(LSL, a, b&0xff, c.cpsr.Carry, false)
		c.SetR(rd, r)
		c.setLogicalFlags(r, true, carry)
		cycles++
	case 3: // LSR
		r, carry := shift(LSR, a, b&0xff, c.cpsr.Carry, false)
		c.SetR(rd, r)
		c.setLogicalFlags(r, true, carry)
		cycles++
	case 4: // ASR
		r, carry := shift(ASR, a, b&0xff, c.cpsr.Carry, false)
		c.SetR(rd, r)
		c.setLogicalFlags(r, true, carry)
		cycles++
	case 5: // ADC
		var carry uint64
		if c.cpsr.Carry {
			carry = 1
		}
		wide := uint64(a) + uint64(b) + carry
		r := uint32(wide)
		c.SetR(rd, r)
		c.setArithmeticFlags(a, b, r, wide>>32 != 0)
	case 6: // SBC
		var borrow uint64
		if !c.cpsr.Carry {
			borrow = 1
		}
		wide := uint64(a) - uint64(b) - borrow
		r := uint32(wide)
		c.SetR(rd, r)
		c.setSubtractionFlags(a, b+uint32(borrow), r)
	case 7: // ROR
		r, carry := shift(ROR, a, b&0xff, c.cpsr.Carry, false)
		c.SetR(rd, r)
		c.setLogicalFlags(r, true, carry)
		cycles++
	case 8: // TST
		c.setLogicalFlags(a&b, false, false)
	case 9: // NEG
		r := uint32(0) - b
		c.SetR(rd, r)
		c.setSubtractionFlags(0, b, r)
	case 10: // CMP
		r := a - b
		c.setSubtractionFlags(a, b, r)
	case 11: // CMN
		wide := uint64(a) + uint64(b)
		c.setArithmeticFlags(a, b, uint32(wide), wide>>32 != 0)
	case 12: // ORR
		r := a | b
		c.SetR(rd, r)
		c.setLogicalFlags(r, false, false)
	case 13: // MUL
		r := a * b
		c.SetR(rd, r)
		c.setLogicalFlags(r, false, false)
		cycles++
	case 14: // BIC
		r := a &^ b
		c.SetR(rd, r)
		c.setLogicalFlags(r, false, false)
	case 15: // MVN
		r := ^b
		c.SetR(rd, r)
		c.setLogicalFlags(r, false, false)
	}
	return cycles
}

// thumbHiRegisterOps implements format 5: ADD/CMP/MOV across the full
// register set (including R8-R15), and BX.
func (c *CPU) thumbHiRegisterOps(instr uint16) int {
	op := instr >> 8 & 0x3
	h1 := instr&(1<<7) != 0
	h2 := instr&(1<<6) != 0
	rs := int(instr>>3&0x7) | boolToInt(h2)<<3
	rd := int(instr&0x7) | boolToInt(h1)<<3

	switch op {
	case 0: // ADD
		c.writeReg(rd, c.readReg(rd)+c.readReg(rs))
	case 1: // CMP
		a, b := c.readReg(rd), c.readReg(rs)
		c.setSubtractionFlags(a, b, a-b)
	case 2: // MOV
		c.writeReg(rd, c.readReg(rs))
	case 3: // BX
		target := c.readReg(rs)
		c.cpsr.Thumb = target&1 != 0
		if c.cpsr.Thumb {
			c.SetPC(target &^ 1)
		} else {
			c.SetPC(target &^ 3)
		}
	}
	if rd == 15 || op == 3 {
		return 3
	}
	return 1
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// thumbPCRelativeLoad implements format 6: LDR Rd, [PC, #imm8*4].
func (c *CPU) thumbPCRelativeLoad(instr uint16) int {
	rd := int(instr >> 8 & 0x7)
	imm := uint32(instr&0xff) * 4
	addr := (c.readReg(15) &^ 3) + imm
	v := c.bus.Read32(addr)
	cycles := 1 + c.bus.Cycles(addr, 32, false)
	c.SetR(rd, v)
	return cycles
}

// thumbLoadStoreRegisterOffset implements format 7: LDR/STR/LDRB/STRB Rd,
// [Rb, Ro].
func (c *CPU) thumbLoadStoreRegisterOffset(instr uint16) int {
	load := instr&(1<<11) != 0
	byteAccess := instr&(1<<10) != 0
	ro := int(instr >> 6 & 0x7)
	rb := int(instr >> 3 & 0x7)
	rd := int(instr & 0x7)

	addr := c.readReg(rb) + c.readReg(ro)
	cycles := 1
	if load {
		var v uint32
		if byteAccess {
			v = uint32(c.bus.Read8(addr))
		} else {
			v = readUnalignedWord(c, addr)
		}
		cycles += c.bus.Cycles(addr, 32, false)
		c.SetR(rd, v)
	} else {
		if byteAccess {
			c.bus.Write8(addr, uint8(c.readReg(rd)))
		} else {
			c.bus.Write32(addr&^3, c.readReg(rd))
		}
		cycles += c.bus.Cycles(addr, 32, false)
	}
	return cycles
}

// thumbLoadStoreSignExtended implements format 8: LDRH/STRH/LDSB/LDSH Rd,
// [Rb, Ro].
func (c *CPU) thumbLoadStoreSignExtended(instr uint16) int {
	hFlag := instr&(1<<11) != 0
	signExtend := instr&(1<<10) != 0
	ro := int(instr >> 6 & 0x7)
	rb := int(instr >> 3 & 0x7)
	rd := int(instr & 0x7)

	addr := c.readReg(rb) + c.readReg(ro)
	cycles := 1 + c.bus.Cycles(addr, 16, false)

	switch {
	case !signExtend && !hFlag: // STRH
		c.bus.Write16(addr&^1, uint16(c.readReg(rd)))
	case !signExtend && hFlag: // LDRH
		c.SetR(rd, uint32(c.bus.Read16(addr&^1)))
	case signExtend && !hFlag: // LDSB
		c.SetR(rd, uint32(int32(int8(c.bus.Read8(addr)))))
	case signExtend && hFlag: // LDSH
		c.SetR(rd, uint32(int32(int16(c.bus.Read16(addr&^1)))))
	}
	return cycles
}

// thumbLoadStoreImmediateOffset implements format 9: LDR/STR/LDRB/STRB Rd,
// [Rb, #imm5].
func (c *CPU) thumbLoadStoreImmediateOffset(instr uint16) int {
	byteAccess := instr&(1<<12) != 0
	load := instr&(1<<11) != 0
	imm := uint32(instr >> 6 & 0x1f)
	rb := int(instr >> 3 & 0x7)
	rd := int(instr & 0x7)

	if !byteAccess {
		imm *= 4
	}
	addr := c.readReg(rb) + imm

	cycles := 1
	if load {
		var v uint32
		if byteAccess {
			v = uint32(c.bus.Read8(addr))
		} else {
			v = readUnalignedWord(c, addr)
		}
		cycles += c.bus.Cycles(addr, 32, false)
		c.SetR(rd, v)
	} else {
		if byteAccess {
			c.bus.Write8(addr, uint8(c.readReg(rd)))
		} else {
			c.bus.Write32(addr&^3, c.readReg(rd))
		}
		cycles += c.bus.Cycles(addr, 32, false)
	}
	return cycles
}

// thumbLoadStoreHalfword implements format 10: LDRH/STRH Rd, [Rb, #imm5*2].
func (c *CPU) thumbLoadStoreHalfword(instr uint16) int {
	load := instr&(1<<11) != 0
	imm := uint32(instr>>6&0x1f) * 2
	rb := int(instr >> 3 & 0x7)
	rd := int(instr & 0x7)

	addr := c.readReg(rb) + imm
	cycles := 1 + c.bus.Cycles(addr, 16, false)
	if load {
		c.SetR(rd, uint32(c.bus.Read16(addr&^1)))
	} else {
		c.bus.Write16(addr&^1, uint16(c.readReg(rd)))
	}
	return cycles
}

// thumbSPRelativeLoadStore implements format 11: LDR/STR Rd, [SP, #imm8*4].
func (c *CPU) thumbSPRelativeLoadStore(instr uint16) int {
	load := instr&(1<<11) != 0
	rd := int(instr >> 8 & 0x7)
	imm := uint32(instr&0xff) * 4

	addr := c.readReg(13) + imm
	cycles := 1 + c.bus.Cycles(addr, 32, false)
	if load {
		c.SetR(rd, readUnalignedWord(c, addr))
	} else {
		c.bus.Write32(addr&^3, c.readReg(rd))
	}
	return cycles
}

// thumbLoadAddress implements format 12: ADD Rd, PC/SP, #imm8*4.
func (c *CPU) thumbLoadAddress(instr uint16) int {
	useSP := instr&(1<<11) != 0
	rd := int(instr >> 8 & 0x7)
	imm := uint32(instr&0xff) * 4

	var base uint32
	if useSP {
		base = c.readReg(13)
	} else {
		base = c.readReg(15) &^ 3
	}
	c.SetR(rd, base+imm)
	return 1
}

// thumbAddOffsetToSP implements format 13: ADD/SUB SP, #imm7*4.
func (c *CPU) thumbAddOffsetToSP(instr uint16) int {
	negative := instr&(1<<7) != 0
	imm := uint32(instr&0x7f) * 4
	sp := c.readReg(13)
	if negative {
		c.SetR(13, sp-imm)
	} else {
		c.SetR(13, sp+imm)
	}
	return 1
}

// thumbPushPop implements format 14: PUSH/POP {Rlist, LR/PC}.
func (c *CPU) thumbPushPop(instr uint16) int {
	load := instr&(1<<11) != 0
	includePCLR := instr&(1<<8) != 0
	list := instr & 0xff

	sp := c.readReg(13)
	cycles := 1

	if load {
		for i := 0; i < 8; i++ {
			if list&(1<<uint(i)) == 0 {
				continue
			}
			c.SetR(i, c.bus.Read32(sp))
			cycles += c.bus.Cycles(sp, 32, false)
			sp += 4
		}
		if includePCLR {
			target := c.bus.Read32(sp)
			cycles += c.bus.Cycles(sp, 32, false)
			sp += 4
			c.SetPC(target &^ 1)
		}
		c.SetR(13, sp)
		return cycles
	}

	count := 0
	for i := 0; i < 8; i++ {
		if list&(1<<uint(i)) != 0 {
			count++
		}
	}
	if includePCLR {
		count++
	}
	sp -= uint32(count) * 4
	addr := sp

	for i := 0; i < 8; i++ {
		if list&(1<<uint(i)) == 0 {
			continue
		}
		c.bus.Write32(addr, c.R(i))
		cycles += c.bus.Cycles(addr, 32, false)
		addr += 4
	}
	if includePCLR {
		c.bus.Write32(addr, c.readReg(14))
		cycles += c.bus.Cycles(addr, 32, false)
	}
	c.SetR(13, sp)
	return cycles
}

// thumbMultipleLoadStore implements format 15: LDMIA/STMIA Rb!, {Rlist}.
func (c *CPU) thumbMultipleLoadStore(instr uint16) int {
	load := instr&(1<<11) != 0
	rb := int(instr >> 8 & 0x7)
	list := instr & 0xff

	addr := c.readReg(rb)
	cycles := 1

	for i := 0; i < 8; i++ {
		if list&(1<<uint(i)) == 0 {
			continue
		}
		if load {
			c.SetR(i, c.bus.Read32(addr&^3))
		} else {
			c.bus.Write32(addr&^3, c.R(i))
		}
		cycles += c.bus.Cycles(addr, 32, false)
		addr += 4
	}
	c.SetR(rb, addr)
	return cycles
}

// thumbConditionalBranch implements format 16: Bcc label.
func (c *CPU) thumbConditionalBranch(instr uint16) int {
	cond := Condition(instr >> 8 & 0xf)
	if !c.evalCondition(cond) {
		return 1
	}
	offset := int32(int8(instr & 0xff))
	c.SetPC(uint32(int32(c.readReg(15)) + offset*2))
	return 3
}

// thumbUnconditionalBranch implements format 18: B label.
func (c *CPU) thumbUnconditionalBranch(instr uint16) int {
	offset := int32(instr&0x7ff) << 21 >> 20
	c.SetPC(uint32(int32(c.readReg(15)) + offset))
	return 3
}

// thumbLongBranchLink implements format 19: BL label, delivered as two
// consecutive 16-bit instructions.
func (c *CPU) thumbLongBranchLink(instr uint16) int {
	low := instr&(1<<11) != 0
	offset := uint32(instr & 0x7ff)

	if !low {
		target := c.readReg(15) + (offset<<21)>>9
		c.SetR(14, target)
		return 1
	}

	target := c.R(14) + offset<<1
	next := c.readReg(15) - 2
	c.SetPC(target)
	c.SetR(14, next|1)
	return 3
}
