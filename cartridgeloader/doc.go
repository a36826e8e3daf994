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

// Package cartridgeloader is used to load the data that is to be attached to
// the emulated GBA: the cartridge ROM image and the BIOS image.
//
// When an image is ready to be attached, the Load() function should be
// used. Load() handles loading of data from different sources. Currently
// local files and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/tonc_bigmap.gba",
//		Kind:     cartridgeloader.ROM,
//	}
//
// It is preferred however that the NewROMLoader()/NewBIOSLoader() functions
// are used, since they validate the resulting image size against the kind's
// expected limit.
package cartridgeloader
