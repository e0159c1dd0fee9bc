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

package sdl

import (
	"bytes"
	"fmt"

	"github.com/jetsetilly/gopher64/control"
	"github.com/jetsetilly/gopher64/gui"
	"github.com/jetsetilly/gopher64/hardware/govern"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/screenshot"
	"github.com/jetsetilly/gopher64/state"
	"github.com/veandco/go-sdl2/sdl"
	"golang.design/x/clipboard"
)

func keyMod() gui.KeyMod {
	mod := sdl.GetModState()
	switch {
	case mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT:
		return gui.KeyModAlt
	case mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT:
		return gui.KeyModShift
	case mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL:
		return gui.KeyModCtrl
	}
	return gui.KeyModNone
}

// translate SDL event to a gui.Event. returns nil if the event is not of
// interest
func translate(ev sdl.Event) gui.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return gui.EventQuit{}

	case *sdl.TextInputEvent:
		text := ev.Text[:]
		if n := bytes.IndexByte(text, 0); n >= 0 {
			text = text[:n]
		}
		return gui.EventText{Text: string(text)}

	case *sdl.KeyboardEvent:
		return gui.EventKeyboard{
			Key:  sdl.GetKeyName(ev.Keysym.Sym),
			Mod:  keyMod(),
			Down: ev.Type == sdl.KEYDOWN,
		}
	}

	return nil
}

// service all outstanding SDL events.
func (scr *SdlC64) service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if gev := translate(ev); gev != nil {
			scr.apply(gui.Bind(gev))
		}
	}
}

func (scr *SdlC64) apply(b gui.Binding) {
	switch b.Op {
	case gui.OpNone:

	case gui.OpQuit:
		scr.quit = true

	case gui.OpKeys:
		for _, k := range b.Keys {
			if !scr.m.PressKey(k) {
				logger.Logf(logger.Allow, "sdl", "key dropped (%s)", k)
			}
		}

	case gui.OpControl:
		control.Apply(scr.m, b.Action)
		scr.overlay.Show(b.Action.String())

	case gui.OpPaste:
		scr.paste()

	case gui.OpSaveState:
		err := state.SaveFile(scr.statePath, scr.m.Snapshot())
		if err != nil {
			logger.Log(logger.Allow, "sdl", err)
			scr.overlay.Show("save failed")
		} else {
			scr.overlay.Show("state saved")
		}

	case gui.OpScreenshot:
		path, err := screenshot.Save(scr.m.Video.Render(), scr.scale, "")
		if err != nil {
			logger.Log(logger.Allow, "sdl", err)
			scr.overlay.Show("screenshot failed")
		} else {
			scr.overlay.Show(path)
		}
	}
}

// paste text from the clipboard into the machine.
func (scr *SdlC64) paste() {
	if !scr.clipboard {
		scr.overlay.Show("clipboard unavailable")
		return
	}

	text := string(clipboard.Read(clipboard.FmtText))
	if text == "" {
		scr.overlay.Show("clipboard empty")
		return
	}

	if control.Paste(scr.m, text) {
		scr.overlay.Show(fmt.Sprintf("entering BASIC (%d characters)", len(text)))
	} else {
		scr.overlay.Show(fmt.Sprintf("typing %d characters", len(text)))
	}
}

// the continueCheck function for the hardware.Machine.Run() function.
func (scr *SdlC64) continueCheck() (govern.State, error) {
	scr.service()
	if scr.quit {
		return govern.Ending, nil
	}

	scr.lmtr.Wait()

	return govern.Running, nil
}
