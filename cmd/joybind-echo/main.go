// This file is part of Joybind.
//
// Joybind is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Joybind is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Joybind.  If not, see <https://www.gnu.org/licenses/>.

// joybind-echo is a small demonstration of the joybind frame loop. It puts
// the terminal into cbreak mode, injects keystrokes into the input system
// and echoes the derived control states. Terminals report no key releases so
// every keystroke is treated as a tap, released at the end of the frame.
//
// Keys: cursor movement on a/d, jump on space or w, q quits.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/jetsetilly/joybind/controls"
	"github.com/jetsetilly/joybind/input"
	"github.com/jetsetilly/joybind/statsview"
	"github.com/jetsetilly/joybind/version"

	"github.com/pkg/term/termios"
)

func keyName(b byte) string {
	switch b {
	case ' ':
		return "space"
	case 'A', 'B', 'C', 'D': // likely a cursor key escape tail; ignored
		return ""
	}
	if b >= 'a' && b <= 'z' || b >= '0' && b <= '9' {
		return string(b)
	}
	return ""
}

func run() error {
	// put terminal into cbreak mode with non-blocking reads
	var saved unix.Termios
	if err := termios.Tcgetattr(os.Stdin.Fd(), &saved); err != nil {
		return err
	}

	cbreak := saved
	termios.Cfmakecbreak(&cbreak)
	cbreak.Cc[unix.VMIN] = 0
	cbreak.Cc[unix.VTIME] = 0
	if err := termios.Tcsetattr(os.Stdin.Fd(), termios.TCIFLUSH, &cbreak); err != nil {
		return err
	}
	defer termios.Tcsetattr(os.Stdin.Fd(), termios.TCIFLUSH, &saved)

	if statsview.Available() {
		statsview.Launch(os.Stdout)
	}

	inp := input.NewInput()

	ins, err := controls.NewInstance(inp, controls.Setup{
		Controls: map[string]any{
			"left":  "a",
			"right": "d",
			"jump":  []string{"space", "w"},
			"quit":  "q",
		},
	})
	if err != nil {
		return err
	}

	vrs, rev, release := version.Version()
	if release {
		fmt.Printf("%s %s\r\n", version.ApplicationName, vrs)
	} else {
		fmt.Printf("%s %s (%s)\r\n", version.ApplicationName, vrs, rev)
	}
	fmt.Println("a/d to move, space or w to jump, q to quit")

	buf := make([]byte, 32)
	frame := time.NewTicker(20 * time.Millisecond)
	defer frame.Stop()

	// keys pressed this frame, released at the end of it
	var taps []string

	for range frame.C {
		// ingest
		n, err := os.Stdin.Read(buf)
		if err != nil && err != io.EOF {
			return err
		}
		for _, b := range buf[:n] {
			name := keyName(b)
			if name == "" {
				continue
			}
			if err := inp.KeyPressed(name, name); err != nil {
				return err
			}
			taps = append(taps, name)
		}

		// evaluate
		ins.Update()

		// read
		for _, name := range []string{"left", "right", "jump", "quit"} {
			st, err := ins.State(name)
			if err != nil {
				return err
			}
			if st.Pressed {
				fmt.Printf("%s\r\n", name)
			}
		}

		quit, err := ins.State("quit")
		if err != nil {
			return err
		}
		done := quit.Pressed

		// release taps before the reset
		for _, name := range taps {
			if err := inp.KeyReleased(name, name); err != nil {
				return err
			}
		}
		taps = taps[:0]

		// reset
		inp.Reset()

		if done {
			break
		}
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "joybind-echo: %v\n", err)
		os.Exit(1)
	}
}
