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

//go:build statsview

// Package perfstats is an optional package that is built only when the
// statsview build constraint is present.
//
//	It provides a HTTP server running locally offering runtime statistics,
//	underlying functionality provided by "github.com/go-echarts/statsview",
//	plus a per-frame counter fed by the scheduler.
//
//	After launch, graphical statistics are viewable at:
//
//		localhost:12600/debug/statsview
//
//	And standard Go pprof statistics available at:
//
//		localhost:12600/debug/pprof/
package perfstats

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/gopheradvance/logger"
)

// Address is the host:port the dashboard listens on.
const Address = "localhost:12600"

const url = "/debug/statsview"

// Recorder is the scheduler's handle onto a launched dashboard. Unlike the
// teacher's fire-and-forget Launch, this one has somewhere for RunFrame to
// report into: a running frame count, read by the dashboard's own poller
// and cheap enough to bump on every frame without measuring it.
type Recorder struct {
	frames uint64
}

// Launch starts the statsview HTTP server in a background goroutine and
// returns a Recorder for the scheduler to report frames into. output
// receives a one-line notice of where the dashboard can be reached, the
// same as the teacher's Launch does with its io.Writer.
func Launch(output io.Writer) *Recorder {
	r := &Recorder{}

	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()

	go func() {
		if err := mgr.Start(); err != nil {
			logger.Logf(logger.Allow, "perfstats", "%v", err)
		}
	}()

	fmt.Fprintf(output, "stats server available at http://%s%s\n", Address, url)

	return r
}

// Frame records that one more frame has been scheduled. Called from
// hardware.GBA.RunFrame; nil-safe so a GBA built without a Recorder attached
// can call it unconditionally.
func (r *Recorder) Frame() {
	if r == nil {
		return
	}
	atomic.AddUint64(&r.frames, 1)
}

// Frames reports the number of frames recorded so far.
func (r *Recorder) Frames() uint64 {
	if r == nil {
		return 0
	}
	return atomic.LoadUint64(&r.frames)
}

// Available reports whether the dashboard was compiled in.
func Available() bool { return true }
