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

package timer_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/interrupt"
	"github.com/jetsetilly/gopheradvance/hardware/timer"
	"github.com/jetsetilly/gopheradvance/test"
)

type overflowSpy struct {
	fired []int
}

func (o *overflowSpy) TimerOverflow(n int) {
	o.fired = append(o.fired, n)
}

func readCounter(t *testing.T, c *timer.Controller, n int) uint16 {
	t.Helper()
	lo, _ := c.ReadIO8(uint32(n*4 + 0))
	hi, _ := c.ReadIO8(uint32(n*4 + 1))
	return uint16(lo) | uint16(hi)<<8
}

func writeReload(c *timer.Controller, n int, v uint16) {
	c.WriteIO8(uint32(n*4+0), uint8(v))
	c.WriteIO8(uint32(n*4+1), uint8(v>>8))
}

func enable(c *timer.Controller, n int, control uint8) {
	c.WriteIO8(uint32(n*4+2), control)
	c.WriteIO8(uint32(n*4+3), 0)
}

func TestEnableLatchesReloadIntoCounter(t *testing.T) {
	c := timer.NewController()
	writeReload(c, 0, 0x1234)
	enable(c, 0, 0x80) // enable, prescaler /1
	test.Equate(t, readCounter(t, c, 0), uint16(0x1234))
}

func TestOverflowReloadsAndNotifiesOverflower(t *testing.T) {
	c := timer.NewController()
	spy := &overflowSpy{}
	c.Plumb(&interrupt.Controller{}, spy)

	writeReload(c, 0, 0xfffe)
	enable(c, 0, 0x80) // enable, prescaler /1

	c.Step(2) // two prescaler ticks: counter -> 0xffff -> overflow -> reload

	test.Equate(t, readCounter(t, c, 0), uint16(0xfffe))
	test.Equate(t, len(spy.fired), 1)
	test.Equate(t, spy.fired[0], 0)
}

func TestOverflowRaisesInterruptWhenEnabled(t *testing.T) {
	c := timer.NewController()
	irq := &interrupt.Controller{IME: true, IE: uint16(interrupt.Timer0)}
	c.Plumb(irq, nil)

	writeReload(c, 0, 0xffff)
	enable(c, 0, 0x80|0x40) // enable, irq enable, prescaler /1

	c.Step(1)

	test.Equate(t, irq.Pending(), true)
}

func TestCascadeChannelIgnoresItsOwnPrescaler(t *testing.T) {
	c := timer.NewController()
	c.Plumb(&interrupt.Controller{}, nil)

	writeReload(c, 0, 0xffff)
	enable(c, 0, 0x80) // channel 0: enable, prescaler /1

	writeReload(c, 1, 0x1234)
	enable(c, 1, 0x80|0x04) // channel 1: enable, cascade

	// a large cycle count would ordinarily overflow channel 1 many times
	// over if it were ticking its own prescaler; cascade channels only
	// advance when the channel below them overflows
	c.Step(1)

	test.Equate(t, readCounter(t, c, 1), uint16(0x1235))
}

func TestNonCascadeUnaffectedChannelDoesNotAdvance(t *testing.T) {
	c := timer.NewController()
	c.Plumb(&interrupt.Controller{}, nil)

	writeReload(c, 2, 0x0)
	enable(c, 2, 0x80|0x3) // enable, prescaler /1024

	c.Step(100) // fewer cycles than one prescaler period

	test.Equate(t, readCounter(t, c, 2), uint16(0x0))
}
