package termview

import (
	"fmt"
	"io"
)

// WriteANSI writes the frame as 24-bit color escape sequences, one text
// line per cell row, resetting attributes at the end of every line so a
// partial paste does not bleed color into the shell.
func (f *Frame) WriteANSI(w io.Writer) error {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.Cells[y*f.Width+x]
			_, err := fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c",
				c.Fg.R, c.Fg.G, c.Fg.B, c.Bg.R, c.Bg.G, c.Bg.B, c.Ch)
			if err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\x1b[0m\n"); err != nil {
			return err
		}
	}
	return nil
}
