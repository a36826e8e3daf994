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

package preferences_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/hardware/preferences"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestNewDefaultsToCappedFramerate(t *testing.T) {
	p := preferences.New()
	test.Equate(t, p.Uncapped.Get(), false)
}

func TestBoolRoundTrip(t *testing.T) {
	var b preferences.Bool
	test.Equate(t, b.Get(), false)
	b.Set(true)
	test.Equate(t, b.Get(), true)
	test.Equate(t, b.String(), "true")
}

func TestStringRoundTrip(t *testing.T) {
	var s preferences.String
	test.Equate(t, s.Get(), "")
	s.Set("/roms/game.gba")
	test.Equate(t, s.Get(), "/roms/game.gba")
	test.Equate(t, s.String(), "/roms/game.gba")
}

func TestBackupDefaultsToAutoWhenUnset(t *testing.T) {
	p := preferences.New()
	test.Equate(t, p.Backup(), memory.BackupAuto)
}

func TestBackupResolvesForcedValue(t *testing.T) {
	p := preferences.New()
	p.ForceBackup.Set("flash128")
	test.Equate(t, p.Backup(), memory.BackupFlash128)
}

func TestBackupDefaultsToAutoOnUnrecognisedValue(t *testing.T) {
	p := preferences.New()
	p.ForceBackup.Set("bogus")
	test.Equate(t, p.Backup(), memory.BackupAuto)
}
