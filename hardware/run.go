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

package hardware

import "github.com/jetsetilly/gopheradvance/hardware/ppu"

// RunFrame executes one complete 228-line frame. The framebuffer lock is
// held for the whole frame so a host render thread reading it through
// WithFramebuffer never observes a partially repainted frame; the defer
// guarantees the unlock happens whichever way the loop exits.
func (g *GBA) RunFrame() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for line := 0; line < ppu.LinesPerFrame; line++ {
		g.runLine(line)
	}

	g.stats.Frame()
}

// WithFramebuffer calls fn with the current completed frame, holding the
// same lock RunFrame acquires for the duration of the call. A host render
// thread should read pixels only from inside fn.
func (g *GBA) WithFramebuffer(fn func(fb *[ppu.ScreenWidth * ppu.ScreenHeight]uint32)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&g.PPU.Framebuffer)
}

// Run calls RunFrame repeatedly until continueCheck reports done, or
// returns an error, which Run propagates to its caller unchanged.
// continueCheck is called once per completed frame; a nil continueCheck
// runs forever.
func (g *GBA) Run(continueCheck func() (done bool, err error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return false, nil }
	}

	for {
		g.RunFrame()

		done, err := continueCheck()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}
