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

package memory

import "github.com/jetsetilly/gopheradvance/hardware/interrupt"

// keypadState owns REG_KEYINPUT (0-for-pressed, host-written directly) and
// REG_KEYCNT, the documented AND/OR interrupt-condition register.
type keypadState struct {
	input uint16
	cnt   uint16
	irq   interrupt.Raiser
}

func newKeypadState() *keypadState {
	return &keypadState{input: 0x03ff}
}

// SetInput is called by the host to report the current button state, 0 for
// pressed and 1 for released in the ten documented bit positions.
func (k *keypadState) SetInput(v uint16) {
	k.input = v & 0x03ff
	k.checkIRQ()
}

func (k *keypadState) checkIRQ() {
	if k.cnt&(1<<14) == 0 || k.irq == nil {
		return
	}
	selection := k.cnt & 0x3ff
	pressed := ^k.input & 0x3ff & selection
	andMode := k.cnt&(1<<15) != 0

	var fire bool
	if andMode {
		fire = pressed == selection
	} else {
		fire = pressed != 0
	}
	if fire {
		k.irq.Raise(interrupt.Keypad)
	}
}

func (k *keypadState) readIO8(off uint32) (uint8, bool) {
	switch off {
	case 0:
		return uint8(k.input), true
	case 1:
		return uint8(k.input >> 8), true
	case 2:
		return uint8(k.cnt), true
	case 3:
		return uint8(k.cnt >> 8), true
	}
	return 0, false
}

func (k *keypadState) writeIO8(off uint32, v uint8) bool {
	switch off {
	case 2:
		k.cnt = k.cnt&0xff00 | uint16(v)
	case 3:
		k.cnt = k.cnt&0x00ff | uint16(v)<<8
		k.checkIRQ()
	default:
		return false
	}
	return true
}
