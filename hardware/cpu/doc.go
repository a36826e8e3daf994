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

// Package cpu implements the ARM7TDMI: the banked register file and CPSR/
// SPSR (registers.go, psr.go), the barrel shifter (shifter.go), the ARM
// and Thumb instruction decoders and their execution (decode_arm.go,
// exec_arm.go, decode_thumb.go, exec_thumb.go), and exception entry
// (exceptions.go).
//
// CPU knows nothing about the address map behind it; every memory access
// goes through the Bus capability supplied to NewCPU, in the same way the
// 6502 core this package is modelled on is handed a memory.CPUBus rather
// than reaching into the VCS's memory map directly.
package cpu
