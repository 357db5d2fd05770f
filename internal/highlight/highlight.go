// Package highlight renders matched lines with the first occurrence of the query emphasized
package highlight

import (
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/gookit/color"
	"github.com/mattn/go-isatty"
)

// DefaultStyle - green bold; gookit still renders it plain when NO_COLOR is set or no color support is detected
var DefaultStyle = color.New(color.FgGreen, color.OpBold)

// StyleFor picks the match style for w: in auto mode only a terminal gets colors, pipes and files get plain text
func StyleFor(mode model.ColorMode, w io.Writer) color.Style {
	switch mode {
	case model.ColorAlways:
		return DefaultStyle
	case model.ColorNever:
		return color.Style{}
	}

	f, ok := w.(*os.File)
	if !ok {
		return color.Style{}
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return DefaultStyle
	}
	return color.Style{}
}

// Span - byte offsets of the match inside the original line
type Span struct {
	Start int
	End   int
}

// Locate finds the first case-insensitive occurrence of query in line.
// The search is case-insensitive in strict mode too: strict only changes which lines are selected.
func Locate(line, query string) (Span, bool) {
	if query == "" {
		return Span{}, true
	}

	for start := 0; start < len(line); {
		if n, ok := matchAt(line[start:], query); ok {
			return Span{Start: start, End: start + n}, true
		}
		_, size := utf8.DecodeRuneInString(line[start:])
		start += size
	}

	return Span{}, false
}

// сравниваем по рунам, чтобы смещения оставались валидными для исходной строки
func matchAt(s, query string) (int, bool) {
	n := 0
	for _, qr := range query {
		if n >= len(s) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(s[n:])
		if unicode.ToLower(r) != unicode.ToLower(qr) {
			return 0, false
		}
		n += size
	}
	return n, true
}

// Split returns prefix/match/suffix; ok is false when query does not occur in line
func Split(line, query string) (prefix, match, suffix string, ok bool) {
	span, ok := Locate(line, query)
	if !ok {
		return line, "", "", false
	}
	return line[:span.Start], line[span.Start:span.End], line[span.End:], true
}

func Render(line, query string, style color.Style) string {
	prefix, match, suffix, ok := Split(line, query)
	if !ok || match == "" {
		return line
	}
	return prefix + style.Render(match) + suffix
}

// WriteMatches prints every line on its own row, highlighted
func WriteMatches(w io.Writer, lines []string, query string, style color.Style) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, Render(line, query, style)); err != nil {
			return err
		}
	}
	return nil
}
