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

//go:build !statsview

// Package perfstats, without the statsview build tag, is a no-op stand-in
// so callers such as hardware.GBA.RunFrame don't need a build tag of their
// own just to report a frame.
package perfstats

import "io"

// Recorder is never instantiated in this build; a nil *Recorder is the only
// value that exists, and every method on it is a no-op.
type Recorder struct{}

// Launch reports that no dashboard was compiled in and returns nil.
func Launch(output io.Writer) *Recorder {
	io.WriteString(output, "perfstats: not built with the statsview tag\n")
	return nil
}

func (r *Recorder) Frame()         {}
func (r *Recorder) Frames() uint64 { return 0 }

// Available reports whether the dashboard was compiled in.
func Available() bool { return false }
