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

package ppu

// register offsets, relative to the start of I/O space (0x04000000).
const (
	regDISPCNT   = 0x00
	regGREENSWAP = 0x02
	regDISPSTAT  = 0x04
	regVCOUNT    = 0x06
	regBG0CNT    = 0x08
	regBG1CNT    = 0x0a
	regBG2CNT    = 0x0c
	regBG3CNT    = 0x0e
	regBG0HOFS   = 0x10
	regBG0VOFS   = 0x12
	regBG1HOFS   = 0x14
	regBG1VOFS   = 0x16
	regBG2HOFS   = 0x18
	regBG2VOFS   = 0x1a
	regBG3HOFS   = 0x1c
	regBG3VOFS   = 0x1e
	regBG2PA     = 0x20
	regBG2PB     = 0x22
	regBG2PC     = 0x24
	regBG2PD     = 0x26
	regBG2X      = 0x28
	regBG2Y      = 0x2c
	regBG3PA     = 0x30
	regBG3PB     = 0x32
	regBG3PC     = 0x34
	regBG3PD     = 0x36
	regBG3X      = 0x38
	regBG3Y      = 0x3c
	regWIN0H     = 0x40
	regWIN1H     = 0x42
	regWIN0V     = 0x44
	regWIN1V     = 0x46
	regWININ     = 0x48
	regWINOUT    = 0x4a
	regMOSAIC    = 0x4c
	regBLDCNT    = 0x50
	regBLDALPHA  = 0x52
	regBLDY      = 0x54

	// IORange is the size, in bytes, of the I/O region the PPU claims
	// starting at offset zero.
	IORange = 0x60
)

// DISPCNT field masks.
const (
	dispcntMode       = 0x0007
	dispcntFrameSel   = 0x0010
	dispcntHBlankFree = 0x0020
	dispcntObjMap1D   = 0x0040
	dispcntForceBlank = 0x0080
	dispcntBG0Enable  = 0x0100
	dispcntBG1Enable  = 0x0200
	dispcntBG2Enable  = 0x0400
	dispcntBG3Enable  = 0x0800
	dispcntObjEnable  = 0x1000
	dispcntWin0Enable = 0x2000
	dispcntWin1Enable = 0x4000
	dispcntWinObjEn   = 0x8000
)

// DISPSTAT field masks.
const (
	dispstatVBlank      = 0x0001 // read-only
	dispstatHBlank      = 0x0002 // read-only
	dispstatVCountMatch = 0x0004 // read-only
	dispstatVBlankIRQ   = 0x0008
	dispstatHBlankIRQ   = 0x0010
	dispstatVCountIRQ   = 0x0020
	dispstatWriteMask   = dispstatVBlankIRQ | dispstatHBlankIRQ | dispstatVCountIRQ | 0xff00
	dispstatReadOnly    = dispstatVBlank | dispstatHBlank | dispstatVCountMatch
)

// Mode returns the background mode, 0-5, currently held in DISPCNT.
func (p *PPU) Mode() int {
	return int(p.dispcnt & dispcntMode)
}

// ForceBlank reports whether DISPCNT's force-blank bit is set.
func (p *PPU) ForceBlank() bool {
	return p.dispcnt&dispcntForceBlank != 0
}

// BGEnabled reports whether background layer bg (0-3) is enabled.
func (p *PPU) BGEnabled(bg int) bool {
	return p.dispcnt&(dispcntBG0Enable<<uint(bg)) != 0
}

// ObjEnabled reports whether the object layer is enabled.
func (p *PPU) ObjEnabled() bool {
	return p.dispcnt&dispcntObjEnable != 0
}

// ObjCharMap1D reports whether OBJ tile addressing is 1-dimensional.
func (p *PPU) ObjCharMap1D() bool {
	return p.dispcnt&dispcntObjMap1D != 0
}

// FrameSelect returns the currently selected bitmap-mode frame, 0 or 1.
func (p *PPU) FrameSelect() int {
	if p.dispcnt&dispcntFrameSel != 0 {
		return 1
	}
	return 0
}

// bgControl unpacks a BGxCNT register into its component fields.
type bgControl struct {
	priority   int
	charBase   uint32
	mosaic     bool
	pal256     bool
	screenBase uint32
	wrap       bool
	screenSize int
}

func decodeBGCNT(v uint16) bgControl {
	return bgControl{
		priority:   int(v & 0x3),
		charBase:   uint32(v>>2&0x3) << 14,
		mosaic:     v&0x0040 != 0,
		pal256:     v&0x0080 != 0,
		screenBase: uint32(v>>8&0x1f) << 11,
		wrap:       v&0x2000 != 0,
		screenSize: int(v >> 14 & 0x3),
	}
}

// readReg16 reads the raw contents of a 16-bit register in p.regs, applying
// any read-only masking or write-only suppression appropriate to off.
func (p *PPU) readReg16(off uint32) uint16 {
	switch off {
	case regBG2X, regBG2X + 2, regBG2Y, regBG2Y + 2,
		regBG3X, regBG3X + 2, regBG3Y, regBG3Y + 2:
		// affine reference points are write-only on real hardware.
		return 0
	case regDISPCNT:
		return p.dispcnt
	case regVCOUNT:
		return p.VCount
	case regDISPSTAT:
		return p.dispstat
	}
	return p.regs[off>>1]
}

// writeReg16 stores v into the register at off, applying the write masks
// documented for DISPSTAT (status bits are read-only) and leaving all
// other fields fully writable.
func (p *PPU) writeReg16(off uint32, v uint16) {
	switch off {
	case regDISPSTAT:
		p.dispstat = (p.dispstat &^ dispstatWriteMask) | (v & dispstatWriteMask) | (p.dispstat & dispstatReadOnly)
		return
	case regVCOUNT:
		// read-only.
		return
	case regDISPCNT:
		p.dispcnt = v
		return
	}
	p.regs[off>>1] = v

	switch off {
	case regBG2X:
		p.bg2RefX = signExtend28(uint32(v) | uint32(p.regs[(regBG2X+2)>>1])<<16)
	case regBG2X + 2:
		p.bg2RefX = signExtend28(uint32(p.regs[regBG2X>>1]) | uint32(v)<<16)
	case regBG2Y:
		p.bg2RefY = signExtend28(uint32(v) | uint32(p.regs[(regBG2Y+2)>>1])<<16)
	case regBG2Y + 2:
		p.bg2RefY = signExtend28(uint32(p.regs[regBG2Y>>1]) | uint32(v)<<16)
	case regBG3X:
		p.bg3RefX = signExtend28(uint32(v) | uint32(p.regs[(regBG3X+2)>>1])<<16)
	case regBG3X + 2:
		p.bg3RefX = signExtend28(uint32(p.regs[regBG3X>>1]) | uint32(v)<<16)
	case regBG3Y:
		p.bg3RefY = signExtend28(uint32(v) | uint32(p.regs[(regBG3Y+2)>>1])<<16)
	case regBG3Y + 2:
		p.bg3RefY = signExtend28(uint32(p.regs[regBG3Y>>1]) | uint32(v)<<16)
	}
}

func signExtend28(v uint32) int32 {
	v &= 0x0fffffff
	if v&0x08000000 != 0 {
		v |= 0xf0000000
	}
	return int32(v)
}

// ReadIO8 implements the byte-addressable read side of the PPU's I/O
// register range. ok is false if off falls outside that range.
func (p *PPU) ReadIO8(off uint32) (v uint8, ok bool) {
	if off >= IORange {
		return 0, false
	}
	r := p.readReg16(off &^ 1)
	if off&1 != 0 {
		return uint8(r >> 8), true
	}
	return uint8(r), true
}

// WriteIO8 implements the byte-addressable write side of the PPU's I/O
// register range. ok is false if off falls outside that range.
func (p *PPU) WriteIO8(off uint32, v uint8) (ok bool) {
	if off >= IORange {
		return false
	}
	cur := p.readReg16(off &^ 1)
	// GREENSWAP and reserved bytes are stored but have no rendering effect.
	if off&1 != 0 {
		cur = cur&0x00ff | uint16(v)<<8
	} else {
		cur = cur&0xff00 | uint16(v)
	}
	p.writeReg16(off&^1, cur)
	return true
}
