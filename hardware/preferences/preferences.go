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

// Package preferences holds the runtime knobs that sit alongside the wire
// state a real GBA exposes through its registers: where to find the BIOS
// and cartridge images, whether the backup type is forced or sniffed from
// the ROM, and whether a host paces itself to 60Hz or runs flat out. These
// are not part of the emulated machine's own state, so they live outside
// hardware.GBA rather than inside it.
package preferences

import (
	"sync/atomic"

	"github.com/jetsetilly/gopheradvance/hardware/memory"
)

// Bool is a small atomic-backed preference value, in the spirit of the
// teacher's prefs.Bool: safe to read from a host's render goroutine while
// a flag-parsing goroutine (or a future settings UI) writes it.
type Bool struct {
	v atomic.Value // bool
}

func (b *Bool) Get() bool {
	v, _ := b.v.Load().(bool)
	return v
}

func (b *Bool) Set(v bool) { b.v.Store(v) }

func (b *Bool) String() string {
	if b.Get() {
		return "true"
	}
	return "false"
}

// String is the same idea for a string-valued preference.
type String struct {
	v atomic.Value // string
}

func (s *String) Get() string {
	v, _ := s.v.Load().(string)
	return v
}

func (s *String) Set(v string) { s.v.Store(v) }
func (s *String) String() string { return s.Get() }

// Preferences collects every knob cmd/gopheradvance and cmd/gbasdl read at
// startup and may let a host adjust afterwards.
type Preferences struct {
	BIOSPath      String
	CartridgePath String

	// ForceBackup overrides auto-detection when non-empty: one of "sram",
	// "flash64", "flash128", "eeprom". Auto-detection (memory.BackupAuto)
	// is used when this is empty.
	ForceBackup String

	// Uncapped, when true, tells a host loop to run RunFrame back-to-back
	// rather than pacing itself to the display's 59.73Hz refresh rate.
	Uncapped Bool
}

// New returns a Preferences with backup auto-detection and 60Hz pacing.
func New() *Preferences {
	p := &Preferences{}
	p.Uncapped.Set(false)
	return p
}

// backupKinds maps ForceBackup's string values to memory.BackupKind.
var backupKinds = map[string]memory.BackupKind{
	"sram":     memory.BackupSRAM,
	"flash64":  memory.BackupFlash64,
	"flash128": memory.BackupFlash128,
	"eeprom":   memory.BackupEEPROM,
}

// Backup resolves ForceBackup to a memory.BackupKind, defaulting to
// BackupAuto for an empty or unrecognised value.
func (p *Preferences) Backup() memory.BackupKind {
	if kind, ok := backupKinds[p.ForceBackup.Get()]; ok {
		return kind
	}
	return memory.BackupAuto
}
