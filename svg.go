package cubic2quad

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of quadratic Béziers to a string of SVG path
// commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(quads []QuadBez, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, quads, opts)
	return sb.String()
}

// WriteSVG converts a sequence of quadratic Béziers to a string of SVG path
// commands and writes it to w.
//
// A move command is emitted for the first quadratic and for every quadratic
// that doesn't start where the previous one ended. Otherwise, the output
// consists only of quadratic curve commands, such as "M0,0 Q15,15 30,30".
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, quads []QuadBez, opts SVGOptions) error {
	space := []byte(" ")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
		if s == "-0" {
			s = "0"
		}
		return s
	}

	var end Point
	for i, q := range quads {
		if err != nil {
			return err
		}
		if i > 0 {
			write(space)
		}
		if i == 0 || q.P0 != end {
			writef("M%s,%s ", format(q.P0.X), format(q.P0.Y))
		}
		writef("Q%s,%s %s,%s",
			format(q.P1.X), format(q.P1.Y),
			format(q.P2.X), format(q.P2.Y))
		end = q.P2
	}
	return err
}
