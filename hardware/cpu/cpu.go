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

// Bus is the capability the CPU needs from the system address bus: sized
// reads and writes, and the wait-state cost of an access at a given
// address, width and sequentiality.
type Bus interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
	Write8(addr uint32, v uint8)
	Write16(addr uint32, v uint16)
	Write32(addr uint32, v uint32)
	Cycles(addr uint32, width int, sequential bool) int
}

// IRQSource is the capability the CPU needs from the interrupt controller:
// whether an IRQ exception is currently due.
type IRQSource interface {
	Pending() bool
}

// CPU is the ARM7TDMI: a 32-bit RISC core with a 3-stage pipeline, able to
// execute either its native 32-bit ARM instruction set or the compressed
// 16-bit Thumb set, switching between them with the BX instruction or on
// exception entry/return.
type CPU struct {
	Registers

	bus Bus
	irq IRQSource

	// halted is set by the HALTCNT write the BIOS's Halt SWI performs; the
	// CPU stops fetching until an enabled interrupt is pending.
	halted bool
}

// NewCPU returns a CPU wired to bus, in its power-on state.
func NewCPU(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.Reset()
	return c
}

// PlumbIRQ attaches the interrupt controller the CPU polls for a pending
// IRQ exception at each instruction boundary.
func (c *CPU) PlumbIRQ(irq IRQSource) {
	c.irq = irq
}

// Reset puts the CPU into its power-on state and loads the reset vector.
func (c *CPU) Reset() {
	c.Registers.Reset()
	c.halted = false
	c.SetPC(0x00000000)
	c.flushARM()
}

// Halt stops instruction fetch until Pending() next reports true.
func (c *CPU) Halt() {
	c.halted = true
}

// Halted reports whether the CPU is currently halted.
func (c *CPU) Halted() bool {
	return c.halted
}

// Step executes exactly one instruction (or, if halted, advances no
// further than noticing a newly pending interrupt) and returns the number
// of CPU cycles it consumed.
func (c *CPU) Step() int {
	if c.halted {
		if c.irq != nil && c.irq.Pending() {
			c.halted = false
		} else {
			return 1
		}
	}

	if !c.cpsr.IRQDisable && c.irq != nil && c.irq.Pending() {
		return c.enterException(ModeIRQ, 0x18, 4)
	}

	if c.cpsr.Thumb {
		return c.stepThumb()
	}
	return c.stepARM()
}

// flushARM aligns PC to the next ARM word boundary. Called on reset and
// whenever the CPU switches into ARM state.
func (c *CPU) flushARM() {
	c.SetPC(c.PC() &^ 3)
}

// flushThumb aligns PC to the next Thumb halfword boundary. Called
// whenever the CPU switches into Thumb state.
func (c *CPU) flushThumb() {
	c.SetPC(c.PC() &^ 1)
}

// Registers.PC always holds the address of the instruction about to be
// fetched - the "actual" program counter, not the ARM r15-reads-as-
// pc-plus-8 (or plus-4 in Thumb) value software sees when it names R15 as
// an operand. readReg/writeReg apply that offset transparently so the
// decode/exec code can treat R15 like any other register.

func (c *CPU) readReg(n int) uint32 {
	if n == 15 {
		// PC() has already been advanced past the current instruction by
		// stepARM/stepThumb, so only the remaining half of the pipeline
		// offset is added here: +4 (ARM) or +2 (Thumb) to reach the
		// documented pc-plus-8/pc-plus-4 value.
		if c.cpsr.Thumb {
			return c.PC() + 2
		}
		return c.PC() + 4
	}
	return c.R(n)
}

// writeReg stores v into register n. Writing R15 branches: PC is set to v
// (aligned to the current state's instruction size) and the pipeline is
// considered refilled from there.
func (c *CPU) writeReg(n int, v uint32) {
	if n == 15 {
		if c.cpsr.Thumb {
			c.SetPC(v &^ 1)
		} else {
			c.SetPC(v &^ 3)
		}
		return
	}
	c.SetR(n, v)
}

func (c *CPU) stepARM() int {
	addr := c.PC()
	instr := c.bus.Read32(addr)
	cycles := c.bus.Cycles(addr, 32, true)

	c.SetPC(addr + 4)

	if !c.evalCondition(Condition(instr >> 28)) {
		return cycles
	}
	return cycles + c.executeARM(instr)
}

func (c *CPU) stepThumb() int {
	addr := c.PC()
	instr := c.bus.Read16(addr)
	cycles := c.bus.Cycles(addr, 16, true)

	c.SetPC(addr + 2)

	return cycles + c.executeThumb(instr)
}

// Condition is the four-bit condition field of an ARM instruction, or of a
// Thumb conditional branch.
type Condition uint32

const (
	condEQ Condition = iota
	condNE
	condCS
	condCC
	condMI
	condPL
	condVS
	condVC
	condHI
	condLS
	condGE
	condLT
	condGT
	condLE
	condAL
	condNV
)

// evalCondition reports whether cond is satisfied by the current CPSR
// flags.
func (c *CPU) evalCondition(cond Condition) bool {
	s := c.cpsr
	switch cond {
	case condEQ:
		return s.Zero
	case condNE:
		return !s.Zero
	case condCS:
		return s.Carry
	case condCC:
		return !s.Carry
	case condMI:
		return s.Negative
	case condPL:
		return !s.Negative
	case condVS:
		return s.Overflow
	case condVC:
		return !s.Overflow
	case condHI:
		return s.Carry && !s.Zero
	case condLS:
		return !s.Carry || s.Zero
	case condGE:
		return s.Negative == s.Overflow
	case condLT:
		return s.Negative != s.Overflow
	case condGT:
		return !s.Zero && s.Negative == s.Overflow
	case condLE:
		return s.Zero || s.Negative != s.Overflow
	case condAL:
		return true
	default:
		return false
	}
}

// setLogicalFlags updates N and Z from result, and, when carryValid,
// updates C from the shifter's carry-out. Overflow is untouched: the
// logical data-processing opcodes never affect it.
func (c *CPU) setLogicalFlags(result uint32, carryValid bool, carryOut bool) {
	c.cpsr.Negative = result&(1<<31) != 0
	c.cpsr.Zero = result == 0
	if carryValid {
		c.cpsr.Carry = carryOut
	}
}

// setArithmeticFlags updates N, Z, C and V from the result of an addition
// (a + b) that produced result, and the carry the ALU reported out of bit
// 31.
func (c *CPU) setArithmeticFlags(a, b, result uint32, carryOut bool) {
	c.cpsr.Negative = result&(1<<31) != 0
	c.cpsr.Zero = result == 0
	c.cpsr.Carry = carryOut
	c.cpsr.Overflow = (a^result)&(b^result)&(1<<31) != 0
}

// setSubtractionFlags updates N, Z, C and V from the result of a
// subtraction (a - b) that produced result. C is set when no borrow
// occurred, matching the ARM convention (opposite of a plain add-with-
// carry chain).
func (c *CPU) setSubtractionFlags(a, b, result uint32) {
	c.cpsr.Negative = result&(1<<31) != 0
	c.cpsr.Zero = result == 0
	c.cpsr.Carry = a >= b
	c.cpsr.Overflow = (a^b)&(a^result)&(1<<31) != 0
}
