package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

//
// The progress bar counts from 0 to 100%, pausing time*10 ms per
// step.  It is pure decoration: nothing is being measured.  While it
// draws, the cursor is hidden and, on a terminal, stdin echo is off
// so typing does not scribble over the bar.  ^C still gets through
//

type progressBar struct {
	out      io.Writer
	fd       int
	widthMax int
	pause    func(ms int)
}

func newProgressBar(out io.Writer) *progressBar {

	return &progressBar{
		out:      out,
		fd:       int(os.Stdin.Fd()),
		widthMax: g.cfg.ProgressWidthMax,
		pause:    pause,
	}
}

func (b *progressBar) draw(width, time float64) {

	width = b.clampWidth(width)

	if g.color {
		fmt.Fprint(b.out, hideCursorSeq)
		defer fmt.Fprint(b.out, showCursorSeq)
	}

	if term.IsTerminal(b.fd) {
		if restore, err := disableEcho(b.fd); err == nil {
			defer restore()
		}
	}

	for i := 0; i <= 100; i++ {
		fmt.Fprintf(b.out, "%s %d%%\r", renderBar(width, float64(i)), i)
		b.pause(int(time) * 10)
	}

	fmt.Fprintln(b.out)
}

//
// A bar never gets wider than the terminal (or the configured
// maximum), and never narrower than nothing
//

func (b *progressBar) clampWidth(width float64) float64 {

	limit := b.widthMax

	if limit == 0 && term.IsTerminal(int(os.Stdout.Fd())) {
		if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			limit = cols - barWidthSlack
		}
	}

	if limit > 0 && width > float64(limit) {
		width = float64(limit)
	}

	if width < 0 {
		width = 0
	}

	return width
}

func renderBar(width, percent float64) string {

	var sb strings.Builder

	sb.WriteByte('[')

	for j := 0.0; j < width; j++ {
		if j < percent/(100/width) {
			sb.WriteByte('#')
		} else {
			sb.WriteByte(' ')
		}
	}

	sb.WriteByte(']')

	return sb.String()
}
