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

package timer

const channelStride = 4

// ReadIO8 implements the byte-addressable read side of the timer
// registers. TMxCNT_L reads back the live counter, not the reload value
// last written to it.
func (c *Controller) ReadIO8(off uint32) (v uint8, ok bool) {
	if off >= IORange {
		return 0, false
	}
	n := int(off / channelStride)
	sub := off % channelStride
	ch := &c.ch[n]

	switch {
	case sub < 2:
		return byteOf(ch.counter, sub), true
	default:
		return byteOf(ch.control, sub-2), true
	}
}

// WriteIO8 implements the byte-addressable write side of the timer
// registers. A write to TMxCNT_L only ever updates the reload value; a
// write to TMxCNT_H that newly sets the enable bit reloads the counter and
// resets the prescaler.
func (c *Controller) WriteIO8(off uint32, v uint8) (ok bool) {
	if off >= IORange {
		return false
	}
	n := int(off / channelStride)
	sub := off % channelStride
	ch := &c.ch[n]

	switch {
	case sub < 2:
		ch.reload = setByte16(ch.reload, sub, v)
	default:
		wasEnabled := ch.enabled()
		ch.control = setByte16(ch.control, sub-2, v)
		if ch.enabled() && !wasEnabled {
			ch.counter = ch.reload
			ch.prescaler = 0
		}
	}
	return true
}

func byteOf(v uint16, i uint32) uint8 {
	if i == 0 {
		return uint8(v)
	}
	return uint8(v >> 8)
}

func setByte16(v uint16, i uint32, b uint8) uint16 {
	if i == 0 {
		return v&0xff00 | uint16(b)
	}
	return v&0x00ff | uint16(b)<<8
}
