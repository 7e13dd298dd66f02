package termpix

import (
	"bytes"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

const (
	upperHalf = '▀'
	lowerHalf = '▄'
	emptyCell = ' '
)

// resetLine ends a printed row: attributes back to default, then newline.
var resetLine = termenv.CSI + termenv.ResetSeq + "m\n"

// lineWriter accumulates one terminal row at a time and emits an SGR
// sequence only for the colour parameters that differ from the previous
// cell. Each row starts from the terminal defaults and ends with a reset.
type lineWriter struct {
	w      io.Writer
	buf    bytes.Buffer
	fg, bg string
	params []string
	sgrs   int
}

func newLineWriter(w io.Writer) *lineWriter {
	lw := &lineWriter{w: w}
	lw.fg, lw.bg = foreground.defaultParam(), background.defaultParam()
	return lw
}

// cell appends glyph drawn with the given foreground and background
// parameters. An empty fg leaves the current foreground in place, for
// glyphs that show no foreground pixels.
func (lw *lineWriter) cell(glyph rune, fg, bg string) {
	lw.params = lw.params[:0]
	if fg != "" && fg != lw.fg {
		lw.params = append(lw.params, fg)
		lw.fg = fg
	}
	if bg != lw.bg {
		lw.params = append(lw.params, bg)
		lw.bg = bg
	}
	if len(lw.params) > 0 {
		lw.buf.WriteString(termenv.CSI)
		lw.buf.WriteString(strings.Join(lw.params, ";"))
		lw.buf.WriteByte('m')
		lw.sgrs++
	}
	lw.buf.WriteRune(glyph)
}

// endLine writes the buffered row followed by a reset and newline.
func (lw *lineWriter) endLine() error {
	lw.buf.WriteString(resetLine)
	_, err := lw.w.Write(lw.buf.Bytes())
	lw.buf.Reset()
	lw.fg, lw.bg = foreground.defaultParam(), background.defaultParam()
	return err
}
