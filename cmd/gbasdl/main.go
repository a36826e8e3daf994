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

// Command gbasdl is a minimal SDL2 host for the core: a window blitting
// the visible 240x160 framebuffer, a keyboard poll feeding the keypad
// register, and an audio device fed by the APU's direct-sound FIFOs. It
// is a consumer of hardware.GBA, not part of the core's own contract.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/hardware/apu"
	"github.com/jetsetilly/gopheradvance/hardware/ppu"
	"github.com/jetsetilly/gopheradvance/hardware/preferences"
	"github.com/jetsetilly/gopheradvance/paths"
	"github.com/jetsetilly/gopheradvance/recorder"
	"github.com/jetsetilly/gopheradvance/version"
)

// keyBits maps an SDL scancode to the keypad bit it drives, per the
// documented KEYINPUT layout (0 pressed, 1 released).
var keyBits = map[sdl.Scancode]uint16{
	sdl.SCANCODE_X:         1 << 0, // A
	sdl.SCANCODE_Z:         1 << 1, // B
	sdl.SCANCODE_BACKSPACE: 1 << 2, // SELECT
	sdl.SCANCODE_RETURN:    1 << 3, // START
	sdl.SCANCODE_RIGHT:     1 << 4,
	sdl.SCANCODE_LEFT:      1 << 5,
	sdl.SCANCODE_UP:        1 << 6,
	sdl.SCANCODE_DOWN:      1 << 7,
	sdl.SCANCODE_S:         1 << 8, // R
	sdl.SCANCODE_A:         1 << 9, // L
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	showVersion := flag.Bool("version", false, "print version information and exit")
	bios := flag.String("bios", "", "path to the 16KiB BIOS image")
	backup := flag.String("backup", "", "force backup type: sram, flash64, flash128, eeprom")
	uncapped := flag.Bool("uncapped", false, "run as fast as possible instead of pacing to 60Hz")
	record := flag.Bool("record", false, "additionally dump direct-sound output to a WAV file")
	flag.Parse()

	if *showVersion {
		v, rev, _ := version.Version()
		fmt.Printf("%s (%s, %s)\n", version.ApplicationName, v, rev)
		return nil
	}

	if flag.NArg() != 1 {
		return fmt.Errorf("usage: gbasdl [flags] <cartridge-image>")
	}

	prefs := preferences.New()
	prefs.BIOSPath.Set(*bios)
	prefs.CartridgePath.Set(flag.Arg(0))
	prefs.ForceBackup.Set(*backup)
	prefs.Uncapped.Set(*uncapped)

	biosLoader := cartridgeloader.NewBIOSLoader(prefs.BIOSPath.Get())
	cartLoader := cartridgeloader.NewROMLoader(prefs.CartridgePath.Get())

	gba, err := hardware.NewGBA(biosLoader, cartLoader, prefs.Backup())
	if err != nil {
		return err
	}

	savePath := paths.ResourcePath("saves", saveFilename(flag.Arg(0)))
	if b, err := os.ReadFile(savePath); err == nil {
		gba.LoadBackupBytes(b)
	}
	defer writeBackup(gba, savePath)

	var rec *recorder.Recorder
	if *record {
		dir := paths.ResourcePath("recordings")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		fn := paths.UniqueFilename("recording", cartLoader.ShortName()) + ".wav"
		rec = recorder.New(filepath.Join(dir, fn))
		defer func() {
			if err := rec.Close(); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}()
	}

	return runSDL(gba, &prefs.Uncapped, rec)
}

// saveFilename derives a .sav name from the cartridge image's own name.
func saveFilename(cartPath string) string {
	base := filepath.Base(cartPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".sav"
}

// writeBackup persists the cartridge's current save-media contents. Errors
// are logged, not propagated: a save-file flush failing on the way out
// shouldn't turn an otherwise clean session into a reported failure.
func writeBackup(gba *hardware.GBA, savePath string) {
	if err := os.MkdirAll(filepath.Dir(savePath), 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if err := os.WriteFile(savePath, gba.BackupBytes(), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

const windowScale = 3

func runSDL(gba *hardware.GBA, uncapped *preferences.Bool, rec *recorder.Recorder) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return err
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("gopheradvance",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		ppu.ScreenWidth*windowScale, ppu.ScreenHeight*windowScale, sdl.WINDOW_SHOWN)
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING,
		ppu.ScreenWidth, ppu.ScreenHeight)
	if err != nil {
		return err
	}
	defer texture.Destroy()

	sink := &audioSink{}
	if dev, err := sdl.OpenAudioDevice("", false, &sdl.AudioSpec{
		Freq:     32768,
		Format:   sdl.AUDIO_S8,
		Channels: 2,
		Samples:  1024,
	}, nil, 0); err == nil {
		sink.dev = dev
		sdl.PauseAudioDevice(dev, false)
		defer sdl.CloseAudioDevice(dev)
	}
	var out apu.Sink = sink
	if rec != nil {
		out = fanoutSink{sink, rec}
	}
	gba.APU.Plumb(out)

	quit := false
	for !quit {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				quit = true
			}
		}

		gba.SetKeyState(pollKeys())
		gba.RunFrame()

		gba.WithFramebuffer(func(fb *[ppu.ScreenWidth * ppu.ScreenHeight]uint32) {
			texture.Update(nil, toBytes(fb), ppu.ScreenWidth*4)
		})

		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()

		if !uncapped.Get() {
			sdl.Delay(1000 / 60)
		}
	}

	return nil
}

// pollKeys reports the keypad register value (0 pressed, 1 released) for
// the current keyboard state.
func pollKeys() uint16 {
	state := sdl.GetKeyboardState()
	v := uint16(0x03ff)
	for code, bit := range keyBits {
		if state[code] != 0 {
			v &^= bit
		}
	}
	return v
}

// toBytes reinterprets a native-order RGBA framebuffer as the raw byte
// slice UpdateTexture wants, without a per-pixel copy loop.
func toBytes(fb *[ppu.ScreenWidth * ppu.ScreenHeight]uint32) []byte {
	out := make([]byte, len(fb)*4)
	for i, px := range fb {
		out[i*4] = byte(px)
		out[i*4+1] = byte(px >> 8)
		out[i*4+2] = byte(px >> 16)
		out[i*4+3] = byte(px >> 24)
	}
	return out
}

// audioSink implements apu.Sink by queueing samples straight to an SDL
// audio device opened for signed 8-bit stereo.
type audioSink struct {
	dev sdl.AudioDeviceID
}

func (s *audioSink) PlaySample(fifoA, fifoB int8) {
	if s.dev == 0 {
		return
	}
	mixed := int16(fifoA)/2 + int16(fifoB)/2
	buf := []byte{byte(mixed), byte(mixed)}
	sdl.QueueAudio(s.dev, buf)
}

// fanoutSink delivers each sample to every sink in turn, letting -record
// tap the same stream the SDL audio device plays without the APU needing
// to know that more than one listener exists.
type fanoutSink []apu.Sink

func (f fanoutSink) PlaySample(fifoA, fifoB int8) {
	for _, s := range f {
		s.PlaySample(fifoA, fifoB)
	}
}
