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

// Package hardware assembles the CPU, address bus and every peripheral into
// a runnable GBA, and drives the scanline scheduler described in run.go and
// step.go.
package hardware

import (
	"sync"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/hardware/apu"
	"github.com/jetsetilly/gopheradvance/hardware/cpu"
	"github.com/jetsetilly/gopheradvance/hardware/dma"
	"github.com/jetsetilly/gopheradvance/hardware/interrupt"
	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/hardware/perfstats"
	"github.com/jetsetilly/gopheradvance/hardware/ppu"
	"github.com/jetsetilly/gopheradvance/hardware/timer"
)

// soundOverflow adapts apu.APU into timer.Overflower, additionally
// notifying DMA that the FIFO it just popped from may need refilling. The
// APU package itself has no reason to know about DMA, so the top-level
// scheduler is where the two get introduced.
type soundOverflow struct {
	apu *apu.APU
	dma *dma.Controller
}

func (s *soundOverflow) TimerOverflow(n int) {
	s.apu.TimerOverflow(n)
	if s.apu.FIFOTimer(false) == n {
		s.dma.NotifyFIFO(apu.FIFOAddress(false), s.apu.FIFOLen(false))
	}
	if s.apu.FIFOTimer(true) == n {
		s.dma.NotifyFIFO(apu.FIFOAddress(true), s.apu.FIFOLen(true))
	}
}

// GBA is the top-level container for every emulated component: the
// ARM7TDMI, the address bus and the peripherals reachable through it.
type GBA struct {
	CPU   *cpu.CPU
	Mem   *memory.Bus
	PPU   *ppu.PPU
	APU   *apu.APU
	DMA   *dma.Controller
	Timer *timer.Controller
	IRQ   *interrupt.Controller

	cart     *memory.Cartridge
	biosData []byte

	// mu guards the framebuffer against a host render thread reading it
	// while RunFrame is still repainting it. See RunFrame and
	// WithFramebuffer.
	mu sync.Mutex

	// stats is nil unless a host attaches one with AttachPerfStats. RunFrame
	// reports into it unconditionally; Recorder's methods are nil-safe so
	// there's nothing to branch on here.
	stats *perfstats.Recorder
}

// AttachPerfStats wires a live dashboard Recorder into the scheduler's
// per-frame hook. A host obtains r from perfstats.Launch; passing nil
// detaches whatever was previously attached.
func (g *GBA) AttachPerfStats(r *perfstats.Recorder) {
	g.stats = r
}

// NewGBA constructs a GBA with bios attached at address zero and cart
// inserted, in its power-on state.
func NewGBA(bios cartridgeloader.Loader, cart cartridgeloader.Loader, backup memory.BackupKind) (*GBA, error) {
	if !bios.HasLoaded() {
		if err := bios.Load(); err != nil {
			return nil, err
		}
	}
	if !cart.HasLoaded() {
		if err := cart.Load(); err != nil {
			return nil, err
		}
	}

	g := &GBA{
		PPU:      ppu.NewPPU(),
		APU:      apu.NewAPU(),
		DMA:      dma.NewController(),
		Timer:    timer.NewController(),
		IRQ:      &interrupt.Controller{},
		biosData: bios.Data,
	}

	g.wireCartridge(cart.Data, backup)
	g.Reset()

	return g, nil
}

// wireCartridge builds a fresh Cartridge and Bus around it and rewires
// every peripheral and the CPU to that Bus. Called both from NewGBA and
// from AttachCartridge, since swapping the cartridge means swapping the
// backup-media state machine behind it. The BIOS image survives a
// cartridge swap since it belongs to the console, not the cartridge, so
// it is reloaded into the fresh Bus from the copy GBA keeps.
func (g *GBA) wireCartridge(rom []byte, backup memory.BackupKind) {
	g.cart = memory.NewCartridge(rom, backup)
	g.Mem = memory.NewBus(g.cart, g.PPU, g.APU, g.DMA, g.Timer, g.IRQ)
	g.Mem.LoadBIOS(g.biosData)
	g.Timer.Plumb(g.IRQ, &soundOverflow{apu: g.APU, dma: g.DMA})
	g.CPU = cpu.NewCPU(g.Mem)
	g.CPU.PlumbIRQ(g.IRQ)
	g.Mem.SetHalt(g.CPU)
}

// Reset returns every component to its power-on state and reloads the BIOS
// reset vector.
func (g *GBA) Reset() {
	g.PPU.Reset()
	g.IRQ.Reset()
	g.CPU.Reset()
}

// AttachCartridge ejects whatever cartridge is currently inserted and
// attaches a new one, resetting the machine afterwards.
func (g *GBA) AttachCartridge(cart cartridgeloader.Loader, backup memory.BackupKind) error {
	if !cart.HasLoaded() {
		if err := cart.Load(); err != nil {
			return err
		}
	}
	g.wireCartridge(cart.Data, backup)
	g.Reset()
	return nil
}

// SetKeyState reports the current button state to the keypad register, 0
// for pressed and 1 for released in the ten documented bit positions.
func (g *GBA) SetKeyState(v uint16) {
	g.Mem.SetKeyState(v)
}

// BackupBytes returns the inserted cartridge's current save-media
// contents, for a host to persist between runs.
func (g *GBA) BackupBytes() []byte {
	return g.cart.BackupBytes()
}

// LoadBackupBytes restores save-media contents into the inserted
// cartridge. b should have come from a prior BackupBytes call against a
// cartridge of the same BackupKind; a length mismatch is handled the same
// way a shorter-than-expected save file would be, filling only as much as
// b covers.
func (g *GBA) LoadBackupBytes(b []byte) {
	g.cart.LoadBackupBytes(b)
}
