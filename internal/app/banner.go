package app

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Console prints the startup banner and stat lines. Numbers are grouped per
// the printer's locale.
type Console struct {
	w io.Writer
	p *message.Printer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w, p: message.NewPrinter(language.English)}
}

func (c *Console) Banner(title, subtitle string) {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, "\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Fprintf(c.w, "\033[36;1m  │\033[0m %s \033[36;1m│\033[0m\n", center(title, 41))
	fmt.Fprintf(c.w, "\033[36;1m  │\033[0m %s \033[36;1m│\033[0m\n", center(subtitle, 41))
	fmt.Fprintln(c.w, "\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Fprintln(c.w)
}

func (c *Console) Section(title string) {
	lineLen := 46 - utf8.RuneCountInString(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Fprintf(c.w, "  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

// Stat prints a dotted label/value line. Integers get thousands separators;
// floats are printed with three decimals.
func (c *Console) Stat(label string, value any) {
	var s string
	switch v := value.(type) {
	case int, int64, uint64:
		s = c.p.Sprintf("%d", v)
	case float64:
		s = c.p.Sprintf("%.3f", v)
	default:
		s = fmt.Sprint(v)
	}
	dotsLen := 42 - utf8.RuneCountInString(label) - utf8.RuneCountInString(s)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Fprintf(c.w, "  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), s)
}

func (c *Console) OK(msg string) {
	fmt.Fprintf(c.w, "  \033[32m✓\033[0m %s\n", msg)
}

func (c *Console) Ready(msg string) {
	fmt.Fprintf(c.w, "  \033[32m▶\033[0m %s\n", msg)
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
