package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pancake/pancake"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - pancakes
	colorRed    = lipgloss.Color("167") // Soft red - failure
	colorDim    = lipgloss.Color("240") // Dim gray - labels
)

// painter holds styles bound to one output's color profile, so plain
// writers (files, pipes, test buffers) receive no escape codes.
type painter struct {
	w       io.Writer
	title   lipgloss.Style
	pancake lipgloss.Style
	label   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newPainter(w io.Writer) *painter {
	r := lipgloss.NewRenderer(w)
	return &painter{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(colorCyan),
		pancake: r.NewStyle().Foreground(colorYellow),
		label:   r.NewStyle().Foreground(colorDim),
		success: r.NewStyle().Bold(true).Foreground(colorGreen),
		failure: r.NewStyle().Bold(true).Foreground(colorRed),
	}
}

// drawStack prints s as centred bars of 2*size '=' characters, bottom
// pancake first, each line padded to the widest pancake.
func (p *painter) drawStack(s pancake.Stack) {
	widest := 0
	for _, v := range s {
		widest = max(widest, 2*v)
	}
	for i := len(s) - 1; i >= 0; i-- {
		width := 2 * s[i]
		pad := strings.Repeat(" ", (widest-width)/2)
		fmt.Fprintln(p.w, pad+p.pancake.Render(strings.Repeat("=", width)))
	}
}

func (p *painter) heading(format string, args ...any) {
	fmt.Fprintln(p.w, p.title.Render(fmt.Sprintf(format, args...)))
}

func (p *painter) field(name string, value any) {
	fmt.Fprintf(p.w, "%s %v\n", p.label.Render(name+":"), value)
}
