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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/test"
)

func romWithSignature(sig string) []byte {
	rom := make([]byte, 0x1000)
	copy(rom[0x200:], sig)
	return rom
}

func TestDetectBackupKindFromSignature(t *testing.T) {
	cases := []struct {
		sig  string
		kind memory.BackupKind
	}{
		{"SRAM_V110", memory.BackupSRAM},
		{"EEPROM_V120", memory.BackupEEPROM},
		{"FLASH1M_V102", memory.BackupFlash128},
		{"FLASH512_V130", memory.BackupFlash64},
	}
	for _, tc := range cases {
		c := memory.NewCartridge(romWithSignature(tc.sig), memory.BackupAuto)
		test.Equate(t, c.Kind(), tc.kind)
	}
}

func TestDetectBackupKindDefaultsToSRAM(t *testing.T) {
	c := memory.NewCartridge(make([]byte, 0x1000), memory.BackupAuto)
	test.Equate(t, c.Kind(), memory.BackupSRAM)
}

func TestForcedBackupKindOverridesSignature(t *testing.T) {
	c := memory.NewCartridge(romWithSignature("SRAM_V110"), memory.BackupFlash64)
	test.Equate(t, c.Kind(), memory.BackupFlash64)
}

func TestSRAMBackupPersistenceRoundTrip(t *testing.T) {
	c := memory.NewCartridge(make([]byte, 0x1000), memory.BackupSRAM)
	c.WriteBackup8(0x10, 0x42)
	c.WriteBackup8(0x20, 0x99)

	saved := c.BackupBytes()
	restored := memory.NewCartridge(make([]byte, 0x1000), memory.BackupSRAM)
	restored.LoadBackupBytes(saved)

	test.Equate(t, restored.ReadBackup8(0x10), uint8(0x42))
	test.Equate(t, restored.ReadBackup8(0x20), uint8(0x99))
}

func TestFlashBackupPersistenceSurvivesRestartIdleProtocol(t *testing.T) {
	c := memory.NewCartridge(make([]byte, 0x1000), memory.BackupFlash64)

	// unlock sequence + byte-program command, then the byte itself
	c.WriteBackup8(0x5555, 0xaa)
	c.WriteBackup8(0x2aaa, 0x55)
	c.WriteBackup8(0x5555, 0xa0)
	c.WriteBackup8(0x100, 0x77)

	saved := c.BackupBytes()
	restored := memory.NewCartridge(make([]byte, 0x1000), memory.BackupFlash64)
	restored.LoadBackupBytes(saved)

	test.Equate(t, restored.ReadBackup8(0x100), uint8(0x77))
}

func TestEEPROMBackupPersistenceRoundTrip(t *testing.T) {
	rom := make([]byte, 0x1000)
	copy(rom[0x200:], "EEPROM_V120")
	c := memory.NewCartridge(rom, memory.BackupAuto)

	writeEEPROMDoubleword(c, 0, 0xdeadbeefcafebabe, 6)

	saved := c.BackupBytes()
	restored := memory.NewCartridge(rom, memory.BackupAuto)
	restored.LoadBackupBytes(saved)

	test.Equate(t, readEEPROMDoubleword(restored, 0, 6), uint64(0xdeadbeefcafebabe))
}

// TestEEPROMBackupSwitchesAddressWidthFromDMATransferLength exercises the
// mechanism a real DMA3 transfer drives: the backup starts assuming a
// 512-byte, 6-bit address chip, and only widens to the 8 KiB, 14-bit chip
// once told the total halfword count of a transfer shaped like one.
func TestEEPROMBackupSwitchesAddressWidthFromDMATransferLength(t *testing.T) {
	rom := make([]byte, 0x1000)
	copy(rom[0x200:], "EEPROM_V120")
	c := memory.NewCartridge(rom, memory.BackupAuto)

	// 2 mode bits + 14 address bits + 64 payload bits + 1 stop bit.
	c.NotifyEEPROMTransferLength(2 + 14 + 64 + 1)
	writeEEPROMDoubleword(c, 14, 0x1122334455667788, 14)

	// 2 mode bits + 14 address bits + 1 stop bit.
	c.NotifyEEPROMTransferLength(2 + 14 + 1)
	test.Equate(t, readEEPROMDoubleword(c, 14, 14), uint64(0x1122334455667788))
}

// writeEEPROMDoubleword drives the serial write protocol: 2 mode bits,
// addrBits address bits, 64 payload bits, 1 stop bit.
func writeEEPROMDoubleword(c *memory.Cartridge, addr uint32, v uint64, addrBits int) {
	bits := []uint16{1, 0} // mode 2 = write
	for i := addrBits - 1; i >= 0; i-- {
		bits = append(bits, uint16(addr>>uint(i))&1)
	}
	for i := 63; i >= 0; i-- {
		bits = append(bits, uint16(v>>uint(i))&1)
	}
	bits = append(bits, 0) // stop bit
	for _, b := range bits {
		c.WriteBackup16(0, b)
	}
}

func readEEPROMDoubleword(c *memory.Cartridge, addr uint32, addrBits int) uint64 {
	bits := []uint16{1, 1} // mode 3 = read
	for i := addrBits - 1; i >= 0; i-- {
		bits = append(bits, uint16(addr>>uint(i))&1)
	}
	bits = append(bits, 0) // stop bit
	for _, b := range bits {
		c.WriteBackup16(0, b)
	}

	var v uint64
	for i := 0; i < 4; i++ {
		c.ReadBackup16(0) // dummy bits
	}
	for i := 0; i < 64; i++ {
		v = v<<1 | uint64(c.ReadBackup16(0)&1)
	}
	return v
}
