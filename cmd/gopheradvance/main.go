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

// Command gopheradvance runs the core headlessly: no window, no audio
// output, just the scheduler spending frames until the requested frame
// count (or forever, if none was given) or a fatal error.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/hardware/perfstats"
	"github.com/jetsetilly/gopheradvance/hardware/preferences"
	"github.com/jetsetilly/gopheradvance/paths"
	"github.com/jetsetilly/gopheradvance/version"
)

// exit codes, per the documented CLI contract: 0 clean shutdown, 1 failure
// to allocate core state, -1 missing argument, any other non-zero value a
// decode/execute error surfaced from the running core.
const (
	exitOK           = 0
	exitAllocFailure = 1
	exitMissingArg   = -1
)

func main() {
	os.Exit(run())
}

func run() int {
	showVersion := flag.Bool("version", false, "print version information and exit")
	bios := flag.String("bios", "", "path to the 16KiB BIOS image")
	backup := flag.String("backup", "", "force backup type: sram, flash64, flash128, eeprom (default: auto-detect)")
	frames := flag.Int("frames", 0, "stop after this many frames (0: run until killed)")
	stats := flag.Bool("stats", false, "launch the live performance dashboard (requires the statsview build tag)")
	flag.Parse()

	if *showVersion {
		v, rev, _ := version.Version()
		fmt.Printf("%s (%s, %s)\n", version.ApplicationName, v, rev)
		return exitOK
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gopheradvance [flags] <cartridge-image>")
		return exitMissingArg
	}

	prefs := preferences.New()
	prefs.BIOSPath.Set(*bios)
	prefs.CartridgePath.Set(flag.Arg(0))
	prefs.ForceBackup.Set(*backup)

	gba, err := newGBA(prefs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitAllocFailure
	}

	savePath := paths.ResourcePath("saves", saveFilename(flag.Arg(0)))
	if b, err := os.ReadFile(savePath); err == nil {
		gba.LoadBackupBytes(b)
	}
	defer writeBackup(gba, savePath)

	if *stats {
		if !perfstats.Available() {
			fmt.Fprintln(os.Stderr, "gopheradvance: -stats requires a build with the statsview tag")
		}
		gba.AttachPerfStats(perfstats.Launch(os.Stdout))
	}

	// A decode failure never reaches here as a Go error: the ARM7TDMI
	// itself treats an unrecognised encoding as the undefined-instruction
	// exception, the same as real hardware, so the running core has no
	// fatal decode/execute state to report. continueCheck's error return
	// exists for host-level failures (a full disk on a save-file flush,
	// say) rather than anything CPU.Step can produce.
	frame := 0
	err = gba.Run(func() (bool, error) {
		frame++
		return *frames > 0 && frame >= *frames, nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return exitOK
}

// saveFilename derives a .sav name from the cartridge image's own name, the
// same pairing a real GBA's battery-backed save data has with its cartridge.
func saveFilename(cartPath string) string {
	base := filepath.Base(cartPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".sav"
}

// writeBackup persists the cartridge's current save-media contents to
// savePath, creating its directory if this is the first save for this
// resource path. Errors are logged, not propagated: a failed save-file
// flush shouldn't turn a successful emulation run into a non-zero exit.
func writeBackup(gba *hardware.GBA, savePath string) {
	if err := os.MkdirAll(filepath.Dir(savePath), 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if err := os.WriteFile(savePath, gba.BackupBytes(), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func newGBA(prefs *preferences.Preferences) (*hardware.GBA, error) {
	if prefs.BIOSPath.Get() == "" {
		return nil, curated.Errorf("gopheradvance: no -bios image given")
	}

	biosLoader := cartridgeloader.NewBIOSLoader(prefs.BIOSPath.Get())
	cartLoader := cartridgeloader.NewROMLoader(prefs.CartridgePath.Get())

	return hardware.NewGBA(biosLoader, cartLoader, prefs.Backup())
}
