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

// region identifies one of the address bus's access-timing domains.
type region int

const (
	regionBIOS region = iota
	regionEWRAM
	regionIWRAM
	regionIO
	regionPAL
	regionVRAM
	regionOAM
	regionROM0
	regionROM1
	regionROM2
	regionSRAM
	regionCount
)

// timing holds one region's derived access-time table: non-sequential and
// sequential cost for 8/16-bit accesses, and the 32-bit costs the spec
// derives from them (32-bit non-sequential is 16-bit non-sequential plus
// 16-bit sequential; 32-bit sequential is twice 16-bit sequential, since a
// 32-bit bus access is fetched as two 16-bit halves).
type timing struct {
	n16, s16 int
	n32, s32 int
}

func (t *timing) derive() {
	t.n32 = t.n16 + t.s16
	t.s32 = 2 * t.s16
}

// waitPenalty is the four first-access wait-state encodings shared by
// every WAITCNT field, and the two second-access encodings, both selected
// by their raw 2-bit or 1-bit field value.
var firstAccessPenalty = [4]int{4, 3, 2, 8}
var romSecondAccessPenalty = [3][2]int{
	{2, 1}, // wait state 0
	{4, 1}, // wait state 1
	{8, 1}, // wait state 2
}

// waitTables owns the fixed and WAITCNT-derived access-timing tables for
// every region, refreshed whenever REG_WAITCNT is written.
type waitTables struct {
	t       [regionCount]timing
	waitcnt uint16
}

func newWaitTables() *waitTables {
	w := &waitTables{}
	w.t[regionBIOS] = timing{n16: 1, s16: 1}
	w.t[regionEWRAM] = timing{n16: 3, s16: 3}
	w.t[regionIWRAM] = timing{n16: 1, s16: 1}
	w.t[regionIO] = timing{n16: 1, s16: 1}
	w.t[regionPAL] = timing{n16: 1, s16: 1}
	w.t[regionVRAM] = timing{n16: 1, s16: 1}
	w.t[regionOAM] = timing{n16: 1, s16: 1}
	w.setWAITCNT(0)
	return w
}

// setWAITCNT recomputes the cartridge ROM and SRAM access-time tables from
// REG_WAITCNT's bitfields, per spec: bits 0-1 select the SRAM first-access
// penalty; bits 2-4, 5-7, 8-10 select the first- and second-access
// penalties for ROM mirrors 0 (0x08), 1 (0x0A) and 2 (0x0C) respectively.
func (w *waitTables) setWAITCNT(v uint16) {
	w.waitcnt = v

	w.t[regionSRAM] = timing{
		n16: 1 + firstAccessPenalty[v&0x3],
		s16: 1 + firstAccessPenalty[v&0x3],
	}

	romFields := [3]struct{ first, second uint16 }{
		{v >> 2 & 0x3, v >> 4 & 0x1},
		{v >> 5 & 0x3, v >> 7 & 0x1},
		{v >> 8 & 0x3, v >> 10 & 0x1},
	}
	romRegions := [3]region{regionROM0, regionROM1, regionROM2}
	for i, f := range romFields {
		w.t[romRegions[i]] = timing{
			n16: 1 + firstAccessPenalty[f.first],
			s16: 1 + romSecondAccessPenalty[i][f.second],
		}
	}

	for i := range w.t {
		w.t[i].derive()
	}
}

// cycles returns the access cost for a load or store of width bits (8, 16
// or 32) at a region, honouring sequential.
func (w *waitTables) cycles(r region, width int, sequential bool) int {
	t := &w.t[r]
	switch width {
	case 32:
		if sequential {
			return t.s32
		}
		return t.n32
	default:
		if sequential {
			return t.s16
		}
		return t.n16
	}
}
