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

// Mode identifies one of the ARM7TDMI's operating modes, stored in the
// bottom five bits of a Status register.
type Mode uint32

const (
	ModeUser       Mode = 0x10
	ModeFIQ        Mode = 0x11
	ModeIRQ        Mode = 0x12
	ModeSupervisor Mode = 0x13
	ModeAbort      Mode = 0x17
	ModeUndefined  Mode = 0x1b
	ModeSystem     Mode = 0x1f
)

// Status is the CPSR/SPSR: the four condition flags, the interrupt and
// state-control bits, and the current Mode. Fields are unpacked into named
// bools and a Mode, following this codebase's convention for bit-packed
// hardware registers - see Value/FromValue for the round trip to and from
// the raw 32-bit encoding.
type Status struct {
	Negative bool
	Zero     bool
	Carry    bool
	Overflow bool

	IRQDisable bool
	FIQDisable bool
	Thumb      bool

	Mode Mode
}

// Value packs the Status into its raw 32-bit CPSR/SPSR encoding.
func (s Status) Value() uint32 {
	var v uint32
	if s.Negative {
		v |= 1 << 31
	}
	if s.Zero {
		v |= 1 << 30
	}
	if s.Carry {
		v |= 1 << 29
	}
	if s.Overflow {
		v |= 1 << 28
	}
	if s.IRQDisable {
		v |= 1 << 7
	}
	if s.FIQDisable {
		v |= 1 << 6
	}
	if s.Thumb {
		v |= 1 << 5
	}
	v |= uint32(s.Mode) & 0x1f
	return v
}

// FromValue unpacks the raw 32-bit encoding v into the receiver's fields.
func (s *Status) FromValue(v uint32) {
	s.Negative = v&(1<<31) != 0
	s.Zero = v&(1<<30) != 0
	s.Carry = v&(1<<29) != 0
	s.Overflow = v&(1<<28) != 0
	s.IRQDisable = v&(1<<7) != 0
	s.FIQDisable = v&(1<<6) != 0
	s.Thumb = v&(1<<5) != 0
	s.Mode = Mode(v & 0x1f)
}

// FromValueControlOnly unpacks only the control-field bits (mode, T, I, F)
// of v, leaving the condition flags untouched. MSR with a byte-mask that
// excludes the flags field uses this.
func (s *Status) FromValueControlOnly(v uint32) {
	s.IRQDisable = v&(1<<7) != 0
	s.FIQDisable = v&(1<<6) != 0
	s.Thumb = v&(1<<5) != 0
	s.Mode = Mode(v & 0x1f)
}

// FromValueFlagsOnly unpacks only the condition-flag bits of v, leaving
// the control fields untouched. MSR with a byte-mask that excludes the
// control field (the common case, from user mode) uses this.
func (s *Status) FromValueFlagsOnly(v uint32) {
	s.Negative = v&(1<<31) != 0
	s.Zero = v&(1<<30) != 0
	s.Carry = v&(1<<29) != 0
	s.Overflow = v&(1<<28) != 0
}
