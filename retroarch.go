// This file is part of RetroArch-Go.
//
// RetroArch-Go is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RetroArch-Go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RetroArch-Go.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/Swizzy/RetroArch/audio"
	"github.com/Swizzy/RetroArch/camera"
	"github.com/Swizzy/RetroArch/drivers"
	"github.com/Swizzy/RetroArch/input"
	"github.com/Swizzy/RetroArch/logger"
	"github.com/Swizzy/RetroArch/modalflag"
	"github.com/Swizzy/RetroArch/notifications"
	"github.com/Swizzy/RetroArch/statsview"
	"github.com/Swizzy/RetroArch/version"
	"github.com/Swizzy/RetroArch/video"
	"github.com/bradleyjkemp/memviz"
	"github.com/veandco/go-sdl2/sdl"
)

const dumpFile = "retroarch_state.dot"

// noticePrinter shows driver layer notices on the standard output.
type noticePrinter struct{}

func (n *noticePrinter) Notify(notice notifications.Notice) error {
	fmt.Printf("! %s\n", notice)
	return nil
}

// SDL requires window event handling to happen on the main thread, so all
// modes run directly in main() rather than behind a goroutine.
func main() {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DRIVERS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, intChan)

	case "DRIVERS":
		err = listDrivers(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.Mode(), err)
		os.Exit(20)
	}
}

// the default binding table for the first player port. the second port has
// the same button layout but no keyboard mappings.
func defaultBindings() [][]input.Binding {
	port0 := []input.Binding{
		{ID: input.JoypadB, Key: input.Key(sdl.SCANCODE_Z), Button: 0, HasButton: true},
		{ID: input.JoypadY, Key: input.Key(sdl.SCANCODE_A), Button: 1, HasButton: true},
		{ID: input.JoypadSelect, Key: input.Key(sdl.SCANCODE_RSHIFT), Button: 2, HasButton: true},
		{ID: input.JoypadStart, Key: input.Key(sdl.SCANCODE_RETURN), Button: 3, HasButton: true},
		{ID: input.JoypadUp, Key: input.Key(sdl.SCANCODE_UP), Button: 4, HasButton: true},
		{ID: input.JoypadDown, Key: input.Key(sdl.SCANCODE_DOWN), Button: 5, HasButton: true},
		{ID: input.JoypadLeft, Key: input.Key(sdl.SCANCODE_LEFT), Button: 6, HasButton: true},
		{ID: input.JoypadRight, Key: input.Key(sdl.SCANCODE_RIGHT), Button: 7, HasButton: true},
		{ID: input.JoypadA, Key: input.Key(sdl.SCANCODE_X), Button: 8, HasButton: true},
		{ID: input.JoypadX, Key: input.Key(sdl.SCANCODE_S), Button: 9, HasButton: true},
		{ID: input.JoypadL, Key: input.Key(sdl.SCANCODE_Q), Button: 10, HasButton: true},
		{ID: input.JoypadR, Key: input.Key(sdl.SCANCODE_W), Button: 11, HasButton: true},
		{ID: input.FastForward, Key: input.Key(sdl.SCANCODE_SPACE)},
	}

	port1 := make([]input.Binding, 0, len(port0))
	for _, b := range port0 {
		if b.ID == input.FastForward {
			continue
		}
		b.Key = input.KeyNone
		port1 = append(port1, b)
	}

	return [][]input.Binding{port0, port1}
}

func run(md *modalflag.Modes, intChan chan os.Signal) error {
	md.NewMode()

	cameraDrv := md.AddString("camera", "", "camera driver to use")
	videoDrv := md.AddString("video", "", "video driver to use")
	inputDrv := md.AddString("input", "", "input driver to use")
	audioDrv := md.AddString("audio", "", "audio driver to use")
	camAllow := md.AddBool("camallow", false, "allow camera use for this run")
	wav := md.AddString("wav", "", "record the test tone to a wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	dump := md.AddBool("dump", false, "write a graph of the live driver state to "+dumpFile)
	stats := md.AddBool("stats", false, "launch statistics server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("! statsview is not available in this build")
		}
	}

	camPrf, err := camera.NewPreferences()
	if err != nil {
		return err
	}
	vidPrf, err := video.NewPreferences()
	if err != nil {
		return err
	}
	inpPrf, err := input.NewPreferences()
	if err != nil {
		return err
	}
	audPrf, err := audio.NewPreferences()
	if err != nil {
		return err
	}

	// command line overrides of the configured driver names
	if *cameraDrv != "" {
		camPrf.Driver.Set(*cameraDrv)
	}
	if *videoDrv != "" {
		vidPrf.Driver.Set(*videoDrv)
	}
	if *inputDrv != "" {
		inpPrf.Driver.Set(*inputDrv)
	}
	if *audioDrv != "" {
		audPrf.Driver.Set(*audioDrv)
	}
	if *wav != "" {
		audPrf.Driver.Set("wav")
		audPrf.Path.Set(*wav)
	}
	if *camAllow {
		camPrf.Allow.Set(true)
	}

	notify := &noticePrinter{}

	vid := video.NewVideo(drivers.Video(), vidPrf)
	if err := vid.Initialise(); err != nil {
		return err
	}
	defer vid.Free()

	inp := input.NewInput(drivers.Input(), inpPrf, notify)
	if err := inp.Initialise(); err != nil {
		return err
	}
	defer inp.Free()
	inp.OnFastForward = vid.SetNonBlock

	aud := audio.NewAudio(drivers.Audio(), audPrf)
	if err := aud.Initialise(0); err != nil {
		return err
	}
	defer aud.Free()

	// the camera consumer bridges captured frames to the video driver,
	// converting packed XRGB words into the byte order the render path
	// expects
	var pix []byte
	consumer := &camera.Consumer{
		Width:  320,
		Height: 240,
		RawFrame: func(buffer []uint32, width int, height int, pitch int) {
			pix = convertFrame(pix, buffer, width, height, pitch)
			vid.Frame(pix, width, height, width*4)
		},
	}

	cam := camera.NewCamera(drivers.Camera(), camPrf, notify)
	if err := cam.Initialise(consumer); err != nil {
		return err
	}
	defer cam.Free()
	if !cam.Start() {
		fmt.Println("! camera did not start. run with -camallow, or set the camera.allow preference")
	}
	defer cam.Stop()

	if *dump {
		if err := dumpState(cam, vid, inp, aud); err != nil {
			return err
		}
		fmt.Printf("! driver state graph written to %s\n", dumpFile)
	}

	binds := defaultBindings()
	tone := newTestTone(audio.DefaultSampleRate)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		default:
			inp.Poll()

			// there is no core loaded in this mode. a single state query per
			// frame keeps the binding scan, and with it the fast-forward
			// control, serviced
			inp.State(binds, 0, input.DeviceJoypad, 0, input.JoypadA)

			if inp.Quit() {
				done = true
			}

			cam.Poll()

			if err := aud.Write(tone.frame()); err != nil {
				return err
			}
		}
	}

	// save preferences before finishing successfully
	for _, sv := range []func() error{camPrf.Save, vidPrf.Save, inpPrf.Save, audPrf.Save} {
		if err := sv(); err != nil {
			return err
		}
	}

	return nil
}

// convertFrame repacks a captured XRGB word buffer into tightly packed RGBA
// bytes. The source pitch is in bytes and may exceed width*4; padding words
// at the end of each row are skipped. dst is reused when it is already the
// right size.
func convertFrame(dst []byte, buffer []uint32, width int, height int, pitch int) []byte {
	if len(dst) != width*height*4 {
		dst = make([]byte, width*height*4)
	}

	rowLen := pitch / 4
	i := 0
	for y := 0; y < height; y++ {
		for _, px := range buffer[y*rowLen : y*rowLen+width] {
			dst[i] = byte(px >> 16)
			dst[i+1] = byte(px >> 8)
			dst[i+2] = byte(px)
			dst[i+3] = 0xff
			i += 4
		}
	}

	return dst
}

func dumpState(state ...interface{}) (rerr error) {
	f, err := os.Create(dumpFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	memviz.Map(f, state...)
	return nil
}

func listDrivers(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintf(md.Output, "camera: %s\n", drivers.Camera().List())
	fmt.Fprintf(md.Output, "video: %s\n", drivers.Video().List())
	fmt.Fprintf(md.Output, "input: %s\n", drivers.Input().List())
	fmt.Fprintf(md.Output, "audio: %s\n", drivers.Audio().List())

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, _ := version.Version()
	fmt.Fprintf(md.Output, "%s (%s)\n", version.ApplicationName, ver)

	return nil
}
