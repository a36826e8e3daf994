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

// bank indices into the per-mode SP/LR/SPSR arrays.
const (
	bankUser = iota
	bankFIQ
	bankSVC
	bankAbort
	bankIRQ
	bankUndefined
	bankCount
)

func bankOf(m Mode) int {
	switch m {
	case ModeFIQ:
		return bankFIQ
	case ModeSupervisor:
		return bankSVC
	case ModeAbort:
		return bankAbort
	case ModeIRQ:
		return bankIRQ
	case ModeUndefined:
		return bankUndefined
	default:
		return bankUser
	}
}

// Registers holds the sixteen general-purpose registers currently visible
// to the executing mode, plus the shadow copies switched in and out on a
// mode change: R8-R12 have one shadow reserved for FIQ and one shared by
// every other mode, R13/R14 and the saved program status register have a
// shadow per privileged mode.
type Registers struct {
	r [16]uint32

	fiqBank  [5]uint32 // R8-R12, FIQ mode only
	userBank [5]uint32 // R8-R12, every mode except FIQ

	spLR [bankCount][2]uint32
	spsr [bankCount]Status

	cpsr Status
}

// Reset returns the register file to its power-on state: supervisor mode,
// IRQ and FIQ disabled, PC and all GPRs zeroed.
func (r *Registers) Reset() {
	*r = Registers{}
	r.cpsr.Mode = ModeSupervisor
	r.cpsr.IRQDisable = true
	r.cpsr.FIQDisable = true
}

// R returns the current value of Rn (0-15).
func (r *Registers) R(n int) uint32 {
	return r.r[n]
}

// SetR stores v into Rn (0-15). Callers writing R15 are responsible for
// any pipeline-flush consequences; Registers itself only stores the value.
func (r *Registers) SetR(n int, v uint32) {
	r.r[n] = v
}

// PC returns the value of R15.
func (r *Registers) PC() uint32 { return r.r[15] }

// SetPC stores v into R15.
func (r *Registers) SetPC(v uint32) { r.r[15] = v }

// CPSR returns the current program status register.
func (r *Registers) CPSR() Status { return r.cpsr }

// SPSR returns the saved program status register of the current mode. In
// User or System mode, which have no SPSR, it returns the zero Status.
func (r *Registers) SPSR() Status {
	return r.spsr[bankOf(r.cpsr.Mode)]
}

// SetSPSR stores v as the saved program status register of the current
// mode.
func (r *Registers) SetSPSR(v Status) {
	r.spsr[bankOf(r.cpsr.Mode)] = v
}

// SetMode switches the visible R8-R14 (and which SPSR SetSPSR/SPSR target)
// to those of newMode, saving the outgoing mode's shadow registers first,
// and updates CPSR.Mode. It does not touch any other CPSR field; callers
// changing IRQDisable/FIQDisable/Thumb alongside a mode change set those
// separately.
func (r *Registers) SetMode(newMode Mode) {
	old := r.cpsr.Mode
	if old == newMode {
		return
	}

	if old == ModeFIQ {
		copy(r.fiqBank[:], r.r[8:13])
	} else {
		copy(r.userBank[:], r.r[8:13])
	}
	r.spLR[bankOf(old)][0] = r.r[13]
	r.spLR[bankOf(old)][1] = r.r[14]

	if newMode == ModeFIQ {
		copy(r.r[8:13], r.fiqBank[:])
	} else {
		copy(r.r[8:13], r.userBank[:])
	}
	r.r[13] = r.spLR[bankOf(newMode)][0]
	r.r[14] = r.spLR[bankOf(newMode)][1]

	r.cpsr.Mode = newMode
}

// SetCPSR replaces the whole CPSR, including switching register banks if
// the mode field differs from the current mode. Exception return (from
// SPSR) and a full-word MSR to CPSR both go through this.
func (r *Registers) SetCPSR(v Status) {
	if v.Mode != r.cpsr.Mode {
		r.SetMode(v.Mode)
	}
	r.cpsr = v
}
