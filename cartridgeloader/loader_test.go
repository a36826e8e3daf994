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

package cartridgeloader_test

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/test"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "image.bin")
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return p
}

func TestShortNameStripsPathAndExtension(t *testing.T) {
	cl := cartridgeloader.NewROMLoader("/roms/Zelda - A Link to the Past.gba")
	test.Equate(t, cl.ShortName(), "Zelda - A Link to the Past")
}

func TestHasLoadedReflectsPresenceOfData(t *testing.T) {
	cl := cartridgeloader.NewROMLoader("unused")
	test.Equate(t, cl.HasLoaded(), false)
	cl.Data = []byte{1}
	test.Equate(t, cl.HasLoaded(), true)
}

func TestLoadReadsFileAndComputesHash(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef}
	p := writeFile(t, data)

	cl := cartridgeloader.NewROMLoader(p)
	if err := cl.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	test.Equate(t, len(cl.Data), 4)
	test.Equate(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))
}

func TestLoadIsIdempotentOncePopulated(t *testing.T) {
	cl := cartridgeloader.Loader{Filename: "/does/not/exist", Kind: cartridgeloader.ROM, Data: []byte{1, 2, 3}}
	if err := cl.Load(); err != nil {
		t.Fatalf("Load should not touch the filesystem once Data is set: %v", err)
	}
}

func TestLoadRejectsMismatchedHash(t *testing.T) {
	p := writeFile(t, []byte{1, 2, 3, 4})

	cl := cartridgeloader.NewROMLoader(p)
	cl.Hash = "0000000000000000000000000000000000000000"
	if err := cl.Load(); err == nil {
		t.Fatalf("expected a hash mismatch error")
	}
}

func TestLoadRejectsOversizedBIOS(t *testing.T) {
	p := writeFile(t, make([]byte, 16*1024+1))

	cl := cartridgeloader.NewBIOSLoader(p)
	if err := cl.Load(); err == nil {
		t.Fatalf("expected an oversized BIOS to be rejected")
	}
}

func TestLoadRejectsUndersizedBIOS(t *testing.T) {
	p := writeFile(t, make([]byte, 16*1024-1))

	cl := cartridgeloader.NewBIOSLoader(p)
	if err := cl.Load(); err == nil {
		t.Fatalf("expected an undersized BIOS to be rejected")
	}
}

func TestLoadAcceptsExactBIOSSize(t *testing.T) {
	p := writeFile(t, make([]byte, 16*1024))

	cl := cartridgeloader.NewBIOSLoader(p)
	if err := cl.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	test.Equate(t, len(cl.Data), 16*1024)
}

func TestLoadRejectsOversizedROM(t *testing.T) {
	p := writeFile(t, make([]byte, 32*1024*1024+1))

	cl := cartridgeloader.NewROMLoader(p)
	if err := cl.Load(); err == nil {
		t.Fatalf("expected an oversized ROM to be rejected")
	}
}
