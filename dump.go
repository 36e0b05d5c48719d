package folds

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump writes an overview of the fragments of a sequence to w, one line per
// fragment (for debugging purposes).
//
// Fragment excerpts are clipped to the width of the terminal if w is an
// interactive terminal, and to a default width otherwise. Colors degrade to
// plain text on non-terminal writers.
func Dump[F Fragment](w io.Writer, seq Sequence[F]) {
	indexColor := color.New(color.FgBlue)
	sizeColor := color.New(color.FgRed)
	width := lineWidth(w)
	if seq == nil || seq.Len() == 0 {
		fmt.Fprintln(w, "(empty sequence)")
		return
	}
	i, total := 0, 0
	for frag := range seq.All() {
		excerpt := clip(string(frag.AppendTo(nil)), width-16)
		indexColor.Fprintf(w, "[%3d] ", i)
		sizeColor.Fprintf(w, "%6d ", frag.Len())
		fmt.Fprintf(w, "“%s”\n", excerpt)
		i++
		total += frag.Len()
	}
	fmt.Fprintf(w, "%d fragments, %d bytes\n", i, total)
}

// lineWidth reads the terminal's width if w is interactive, falling back to
// a default of 65 otherwise.
func lineWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 65
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < 20 {
		return 65
	}
	return width
}

func clip(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", "␤")
	if max < 1 {
		max = 1
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
