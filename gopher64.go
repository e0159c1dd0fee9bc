// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher64/control"
	"github.com/jetsetilly/gopher64/digest"
	"github.com/jetsetilly/gopher64/gui/sdl"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/modalflag"
	"github.com/jetsetilly/gopher64/performance"
	"github.com/jetsetilly/gopher64/romset"
	"github.com/jetsetilly/gopher64/screenshot"
	"github.com/jetsetilly/gopher64/state"
	"github.com/jetsetilly/gopher64/statsview"
	"github.com/jetsetilly/gopher64/terminal"
	"github.com/jetsetilly/gopher64/terminal/easyterm"
	"github.com/jetsetilly/gopher64/version"
)

// SDL requires that window handling happens on the main thread. main() and
// everything it calls run on the #mainthread
func init() {
	runtime.LockOSThread()
}

// exit values
const (
	exitArgs = 10
	exitMode = 20
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "TERMINAL", "PERFORMANCE", "SCREENSHOT", "VERSION")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(exitArgs)
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "TERMINAL":
		err = term(md)

	case "PERFORMANCE":
		err = perform(md)

	case "SCREENSHOT":
		err = shot(md)

	case "VERSION":
		fmt.Printf("%s %s\n", version.ApplicationName, version.Current())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(exitMode)
	}
}

// flags common to the modes that create a machine
type common struct {
	roms   *string
	log    *bool
	memviz *string
}

func addCommon(md *modalflag.Modes) common {
	return common{
		roms:   md.AddString("roms", "", "directory containing basic.bin, kernal.bin and chargen.bin"),
		log:    md.AddBool("log", false, "echo debugging log to stderr"),
		memviz: md.AddString("memviz", "", "write a graphviz file of the CPU and input state on exit"),
	}
}

// apply the common flags and load the ROMs
func (c common) prepare() (memory.ROMs, error) {
	if *c.log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	dir := *c.roms
	if dir == "" {
		var err error
		dir, err = romset.DefaultDir()
		if err != nil {
			return memory.ROMs{}, err
		}
	}

	return romset.Load(dir)
}

// write the memviz file if requested
func (c common) finish(m *hardware.Machine) error {
	if *c.memviz == "" {
		return nil
	}

	f, err := os.Create(*c.memviz)
	if err != nil {
		return err
	}
	memviz.Map(f, m.CPU, m.Input)
	return f.Close()
}

// resume the session saved in the state file. a missing state file is not an
// error. a corrupt state file is reported but the machine continues from
// reset.
func resume(output io.Writer, m *hardware.Machine, statePath string) {
	s, err := state.LoadFile(statePath)
	if err == nil {
		err = m.Restore(s)
	}

	switch {
	case err == nil:
		fmt.Fprintf(output, "* resumed session from %s\n", statePath)
	case errors.Is(err, state.ErrNoState):
		logger.Log(logger.Allow, "gopher64", err)
	default:
		fmt.Fprintf(output, "* cannot resume session: %v\n", err)
	}
}

// create a machine and resume the session if required. returns the machine
// and the path to the state file
func session(c common, resumeSession bool) (*hardware.Machine, string, error) {
	roms, err := c.prepare()
	if err != nil {
		return nil, "", err
	}

	m, err := hardware.NewMachine(roms, nil)
	if err != nil {
		return nil, "", err
	}

	statePath, err := state.DefaultPath()
	if err != nil {
		return nil, "", err
	}

	if resumeSession {
		resume(os.Stdout, m, statePath)
	}

	return m, statePath, nil
}

// save the session to the state file
func save(m *hardware.Machine, statePath string) error {
	return state.SaveFile(statePath, m.Snapshot())
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	scale := md.AddInt("scale", 2, "display scaling")
	resumeSession := md.AddBool("resume", true, "resume the previous session")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m, statePath, err := session(c, *resumeSession)
	if err != nil {
		return err
	}

	scr, err := sdl.NewSdlC64(m, *scale, statePath)
	if err != nil {
		return err
	}
	defer scr.Destroy()

	err = scr.Run()
	if err != nil {
		return err
	}

	err = save(m, statePath)
	if err != nil {
		return err
	}

	return c.finish(m)
}

func term(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	resumeSession := md.AddBool("resume", true, "resume the previous session")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m, statePath, err := session(c, *resumeSession)
	if err != nil {
		return err
	}

	var et easyterm.Terminal
	err = et.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer et.CleanUp()

	err = terminal.NewHost(m, &et, statePath).Run()
	if err != nil {
		return err
	}

	err = save(m, statePath)
	if err != nil {
		return err
	}

	return c.finish(m)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: comma separated CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	roms, err := c.prepare()
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, roms, *duration)
}

func shot(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("the screenshot is written to the named file or to a file with a unique name")

	c := addCommon(md)
	frames := md.AddInt("frames", 180, "number of ticks to run before taking the screenshot")
	scale := md.AddInt("scale", 2, "screenshot scaling")
	paste := md.AddString("paste", "", "file to enter as BASIC before running")
	dgst := md.AddBool("digest", false, "print a digest of the frames rendered while running")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, _, err := session(c, false)
	if err != nil {
		return err
	}

	if *paste != "" {
		data, err := os.ReadFile(*paste)
		if err != nil {
			return err
		}
		control.Paste(m, string(data))
	}

	var dig *digest.Video
	if *dgst {
		dig = digest.NewVideo()
		m.AttachRenderer(dig)
	}

	err = m.RunForFrameCount(*frames, nil)
	if err != nil {
		return err
	}

	if dig != nil {
		fmt.Fprintf(md.Output, "* digest %s (%d frames)\n", dig.Hash(), dig.Frames())
	}

	switch len(md.RemainingArgs()) {
	case 0:
		path, err := screenshot.Save(m.Video.Render(), *scale, "")
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "* screenshot saved to %s\n", path)

	case 1:
		f, err := os.Create(md.GetArg(0))
		if err != nil {
			return err
		}
		err = screenshot.Write(f, m.Video.Render(), *scale)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return c.finish(m)
}
