package termview

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Play animates frames on the terminal until the user quits with q,
// Escape or Ctrl-C. Space pauses, the arrow keys step while paused.
// delay is the time between frames.
func Play(frames []*Frame, delay time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	return playOn(screen, frames, delay)
}

// playOn runs the animation loop on an initialized screen and finalizes
// it on return. Split from Play so tests can drive a simulation screen.
func playOn(screen tcell.Screen, frames []*Frame, delay time.Duration) error {
	defer screen.Fini()

	if len(frames) == 0 {
		return nil
	}
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	current := 0
	paused := false
	draw(screen, frames[current], current, len(frames), paused)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return nil
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return nil
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					paused = !paused
				case ev.Key() == tcell.KeyRight:
					current = (current + 1) % len(frames)
				case ev.Key() == tcell.KeyLeft:
					current = (current + len(frames) - 1) % len(frames)
				}
				draw(screen, frames[current], current, len(frames), paused)

			case *tcell.EventResize:
				screen.Sync()
				draw(screen, frames[current], current, len(frames), paused)
			}

		case <-ticker.C:
			if paused {
				continue
			}
			current = (current + 1) % len(frames)
			draw(screen, frames[current], current, len(frames), paused)
		}
	}
}

// draw paints one frame centered on the screen with a status line along
// the bottom edge.
func draw(screen tcell.Screen, f *Frame, index, total int, paused bool) {
	screen.Clear()

	sw, sh := screen.Size()
	offX := (sw - f.Width) / 2
	if offX < 0 {
		offX = 0
	}
	offY := (sh - f.Height) / 2
	if offY < 0 {
		offY = 0
	}

	for y := 0; y < f.Height; y++ {
		if offY+y >= sh {
			break
		}
		for x := 0; x < f.Width; x++ {
			if offX+x >= sw {
				break
			}
			c := f.Cells[y*f.Width+x]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
				Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
			screen.SetContent(offX+x, offY+y, c.Ch, nil, style)
		}
	}

	status := fmt.Sprintf("frame %d/%d", index+1, total)
	if paused {
		status += "  [paused]"
	}
	status += "  q quit, space pause, arrows step"

	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, r := range status {
		if i >= sw {
			break
		}
		screen.SetContent(i, sh-1, r, nil, style)
	}

	screen.Show()
}
