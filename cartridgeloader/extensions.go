// This file is part of Gopheradvance.
//
// Gopheradvance is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
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

package cartridgeloader

// ROMFileExtensions is the list of file extensions recognised for cartridge
// ROM images.
var ROMFileExtensions = [...]string{".GBA", ".BIN", ".ROM", ".AGB"}

// BIOSFileExtensions is the list of file extensions recognised for BIOS
// images.
var BIOSFileExtensions = [...]string{".BIN", ".ROM", ".BIOS"}
