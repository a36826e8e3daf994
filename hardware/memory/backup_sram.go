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

const sramSize = 0x8000

// sramBackup is the flat variant of the backup state machine: 32 KiB, no
// command protocol, mirrored across the whole 64 KiB backup window.
type sramBackup struct {
	data [sramSize]byte
}

func newSRAMBackup() *sramBackup {
	return &sramBackup{}
}

func (s *sramBackup) Read8(off uint32) uint8 {
	return s.data[off&(sramSize-1)]
}

func (s *sramBackup) Write8(off uint32, v uint8) {
	s.data[off&(sramSize-1)] = v
}

func (s *sramBackup) Read16(off uint32) uint16 {
	return uint16(s.Read8(off))
}

func (s *sramBackup) Write16(off uint32, v uint16) {
	s.Write8(off, uint8(v))
}

func (s *sramBackup) Bytes() []byte {
	return s.data[:]
}

func (s *sramBackup) LoadBytes(b []byte) {
	copy(s.data[:], b)
}
