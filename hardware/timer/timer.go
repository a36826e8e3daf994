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

import "github.com/jetsetilly/gopheradvance/hardware/interrupt"

// IORange is the size, in bytes, of the four channels' register block,
// starting at system address 0x04000100.
const IORange = 0x10

// prescalerPeriods gives the CPU-cycle divisor selected by control bits
// 0-1: /1, /64, /256, /1024.
var prescalerPeriods = [4]int{1, 64, 256, 1024}

var channelIRQ = [4]interrupt.Source{interrupt.Timer0, interrupt.Timer1, interrupt.Timer2, interrupt.Timer3}

// Overflower is notified whenever timer 0 or 1 overflows, so that the APU
// can pop a byte from the corresponding sound FIFO.
type Overflower interface {
	TimerOverflow(n int)
}

type channel struct {
	reload  uint16
	counter uint16
	control uint16

	prescaler int
}

func (c *channel) enabled() bool  { return c.control&0x80 != 0 }
func (c *channel) cascade() bool  { return c.control&0x04 != 0 }
func (c *channel) irqEnable() bool { return c.control&0x40 != 0 }
func (c *channel) period() int    { return prescalerPeriods[c.control&0x3] }

// Controller owns all four timer channels.
type Controller struct {
	ch  [4]channel
	irq interrupt.Raiser
	ovf Overflower
}

// NewController returns a Controller with all four channels disabled.
func NewController() *Controller {
	return &Controller{}
}

// Plumb attaches the interrupt controller and the FIFO overflow sink.
func (c *Controller) Plumb(irq interrupt.Raiser, ovf Overflower) {
	c.irq = irq
	c.ovf = ovf
}

// Step advances every enabled, non-cascaded channel by cycles CPU cycles,
// propagating overflow into any cascaded channel that follows it.
func (c *Controller) Step(cycles int) {
	for n := 0; n < 4; n++ {
		ch := &c.ch[n]
		if !ch.enabled() || (n > 0 && ch.cascade()) {
			continue
		}
		c.tick(n, cycles)
	}
}

// tick advances channel n by cycles CPU cycles' worth of its own
// prescaler, or, when called from a cascade increment, by a single count.
func (c *Controller) tick(n int, cycles int) {
	ch := &c.ch[n]
	ch.prescaler += cycles
	period := ch.period()
	for ch.prescaler >= period {
		ch.prescaler -= period
		c.increment(n)
	}
}

func (c *Controller) increment(n int) {
	ch := &c.ch[n]
	ch.counter++
	if ch.counter != 0 {
		return
	}

	ch.counter = ch.reload
	if ch.irqEnable() && c.irq != nil {
		c.irq.Raise(channelIRQ[n])
	}
	if (n == 0 || n == 1) && c.ovf != nil {
		c.ovf.TimerOverflow(n)
	}
	if n < 3 && c.ch[n+1].enabled() && c.ch[n+1].cascade() {
		c.increment(n + 1)
	}
}
