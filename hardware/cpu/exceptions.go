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

// exception vector addresses, relative to the BIOS base at 0x00000000.
const (
	vectorReset          = 0x00
	vectorUndefined      = 0x04
	vectorSWI            = 0x08
	vectorPrefetchAbort  = 0x0c
	vectorDataAbort      = 0x10
	vectorIRQ            = 0x18
	vectorFIQ            = 0x1c
)

// enterException performs the register-bank switch, SPSR save and LR
// calculation common to every exception type, and points PC at vector. lr
// is the value to store in the new mode's LR: PC at the time of the call
// for SoftwareInterrupt/UndefinedInstruction, PC+4 for IRQ/FIQ (so that
// the handler's conventional "SUBS PC, LR, #4" lands back on the
// instruction that would otherwise have executed next).
func (c *CPU) enterException(mode Mode, vector uint32, lrAdjust uint32) int {
	returnAddr := c.PC() + lrAdjust
	spsr := c.cpsr

	c.SetMode(mode)
	c.SetR(14, returnAddr)
	c.SetSPSR(spsr)

	c.cpsr.Thumb = false
	c.cpsr.IRQDisable = true
	if mode == ModeFIQ {
		c.cpsr.FIQDisable = true
	}

	c.SetPC(vector)
	return 3
}

// SoftwareInterrupt is raised by the SWI instruction in both ARM and
// Thumb state.
func (c *CPU) softwareInterrupt() int {
	return c.enterException(ModeSupervisor, vectorSWI, 0)
}

// undefinedInstruction is raised by any encoding neither the ARM nor
// Thumb decoder recognises.
func (c *CPU) undefinedInstruction() int {
	return c.enterException(ModeUndefined, vectorUndefined, 0)
}

// exceptionReturn implements the common "restore CPSR from SPSR and branch
// to the address left in LR" tail shared by every exception handler's
// return instruction (e.g. MOVS PC, LR or an LDM with the S bit and R15 in
// the register list).
func (c *CPU) exceptionReturn(addr uint32) {
	spsr := c.SPSR()
	c.SetCPSR(spsr)
	if c.cpsr.Thumb {
		c.SetPC(addr &^ 1)
	} else {
		c.SetPC(addr &^ 3)
	}
}
