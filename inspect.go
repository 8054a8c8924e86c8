package gapbuf

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// inspectColors paints the storage regions in an Inspect dump.
type inspectColors struct {
	left  *color.Color
	gap   *color.Color
	right *color.Color
	slack *color.Color
}

func newInspectColors(enable bool) inspectColors {
	c := inspectColors{
		left:  color.New(color.FgGreen),
		gap:   color.New(color.FgHiBlack),
		right: color.New(color.FgCyan),
		slack: color.New(color.FgRed),
	}
	for _, col := range []*color.Color{c.left, c.gap, c.right, c.slack} {
		if enable {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Inspect writes a human readable dump of the storage to w: the geometry on the
// first line, then every region with its bytes quoted. Gap bytes are shown as
// dots since their contents are meaningless. Colors are used only when w is a
// terminal. The buffer is not modified.
func (b *Buffer) Inspect(w io.Writer) error {
	if err := b.check(); err != nil {
		return err
	}
	return b.inspect(w, newInspectColors(isTerminal(w)))
}

func (b *Buffer) inspect(w io.Writer, c inspectColors) error {
	if _, err := fmt.Fprintf(w, "cap=%d len=%d cursor=%d right=%d\n",
		len(b.data), b.Len(), b.left, b.right); err != nil {
		return err
	}
	if len(b.data) == 0 {
		_, err := fmt.Fprintln(w, "(no storage)")
		return err
	}

	end := b.right + b.rightLen()
	rows := []inspectRow{
		{"left ", c.left, strconv.Quote(string(b.data[:b.left]))},
		{"gap  ", c.gap, gapDots(b.right - b.left)},
		{"right", c.right, strconv.Quote(string(b.data[b.right:end]))},
	}
	if end < len(b.data) {
		rows = append(rows, inspectRow{"slack", c.slack, strconv.Quote(string(b.data[end:]))})
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s %s\n", r.name, r.col.Sprint(r.text)); err != nil {
			return err
		}
	}
	return nil
}

type inspectRow struct {
	name string
	col  *color.Color
	text string
}

func gapDots(n int) string {
	const maxDots = 64
	if n > maxDots {
		return fmt.Sprintf("%s (%d bytes)", strings.Repeat(".", maxDots), n)
	}
	return strings.Repeat(".", n)
}
