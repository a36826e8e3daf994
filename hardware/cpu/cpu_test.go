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

package cpu_test

import (
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/cpu"
	"github.com/jetsetilly/gopheradvance/test"
)

// flatBus is a zero-wait-state address space backing the CPU under test.
type flatBus struct {
	mem [0x10000]byte
}

func (b *flatBus) Read8(addr uint32) uint8  { return b.mem[addr&0xffff] }
func (b *flatBus) Write8(addr uint32, v uint8) { b.mem[addr&0xffff] = v }

func (b *flatBus) Read16(addr uint32) uint16 {
	return binary.LittleEndian.Uint16(b.mem[addr&0xffff:])
}
func (b *flatBus) Write16(addr uint32, v uint16) {
	binary.LittleEndian.PutUint16(b.mem[addr&0xffff:], v)
}

func (b *flatBus) Read32(addr uint32) uint32 {
	return binary.LittleEndian.Uint32(b.mem[addr&0xffff:])
}
func (b *flatBus) Write32(addr uint32, v uint32) {
	binary.LittleEndian.PutUint32(b.mem[addr&0xffff:], v)
}

func (b *flatBus) Cycles(addr uint32, width int, sequential bool) int { return 1 }

func (b *flatBus) putARM(addr uint32, instr uint32) {
	b.Write32(addr, instr)
}

func (b *flatBus) putThumb(addr uint32, instr uint16) {
	b.Write16(addr, instr)
}

type alwaysPending struct{}

func (alwaysPending) Pending() bool { return true }

type neverPending struct{}

func (neverPending) Pending() bool { return false }

func TestARMDataProcessingImmediate(t *testing.T) {
	bus := &flatBus{}
	bus.putARM(0, 0xe3a00005) // MOV R0, #5
	bus.putARM(4, 0xe2801003) // ADD R1, R0, #3

	c := cpu.NewCPU(bus)
	c.Step()
	test.Equate(t, c.R(0), uint32(5))

	c.Step()
	test.Equate(t, c.R(1), uint32(8))
	test.Equate(t, c.PC(), uint32(8))
}

func TestARMBranch(t *testing.T) {
	bus := &flatBus{}
	bus.putARM(0, 0xea00003e) // B 0x100

	c := cpu.NewCPU(bus)
	c.Step()
	test.Equate(t, c.PC(), uint32(0x100))
}

func TestARMConditionalInstructionSkippedWhenFalse(t *testing.T) {
	bus := &flatBus{}
	bus.putARM(0, 0x03a00005) // MOVEQ R0, #5 (Z clear at reset, so skipped)

	c := cpu.NewCPU(bus)
	c.Step()
	test.Equate(t, c.R(0), uint32(0))
	test.Equate(t, c.PC(), uint32(4))
}

func TestBXSwitchesToThumbState(t *testing.T) {
	bus := &flatBus{}
	bus.putARM(0, 0xe12fff10) // BX R0
	bus.putThumb(0x100, 0x2007) // MOV R0, #7

	c := cpu.NewCPU(bus)
	c.SetR(0, 0x101) // thumb bit set

	c.Step() // BX
	test.Equate(t, c.PC(), uint32(0x100))
	test.Equate(t, c.CPSR().Thumb, true)

	c.Step() // thumb MOV
	test.Equate(t, c.R(0), uint32(7))
}

func TestSoftwareInterruptEntersSupervisorMode(t *testing.T) {
	bus := &flatBus{}
	bus.putARM(0, 0xef000000) // SWI 0

	c := cpu.NewCPU(bus)
	c.Step()

	test.Equate(t, c.CPSR().Mode, cpu.ModeSupervisor)
	test.Equate(t, c.CPSR().IRQDisable, true)
	test.Equate(t, c.CPSR().Thumb, false)
	test.Equate(t, c.PC(), uint32(0x08))
	test.Equate(t, c.R(14), uint32(4)) // return address: instruction after the SWI
}

func TestPendingIRQIsTakenBeforeNextInstruction(t *testing.T) {
	bus := &flatBus{}
	bus.putARM(0, 0xe3a00005) // MOV R0, #5 - never executed
	c := cpu.NewCPU(bus)
	c.PlumbIRQ(alwaysPending{})

	c.Step()

	test.Equate(t, c.R(0), uint32(0))
	test.Equate(t, c.CPSR().Mode, cpu.ModeIRQ)
	test.Equate(t, c.PC(), uint32(0x18))
}

func TestHaltStopsFetchUntilInterruptPending(t *testing.T) {
	bus := &flatBus{}
	c := cpu.NewCPU(bus)
	c.PlumbIRQ(neverPending{})
	c.Halt()

	cycles := c.Step()
	test.Equate(t, c.Halted(), true)
	test.Equate(t, cycles, 1)
	test.Equate(t, c.PC(), uint32(0))
}
