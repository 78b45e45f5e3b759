// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TextOptions controls RenderText.
type TextOptions struct {
	// Color paints each cell with its Palette background when the writer
	// supports color.
	Color bool
}

// textStyles holds the styles of one RenderText call, bound to the output's
// renderer so color detection follows the writer, not os.Stdout.
type textStyles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	exercise lipgloss.Style
	heading  lipgloss.Style
	muted    lipgloss.Style
	cell     lipgloss.Style
	rule     lipgloss.Style
	palette  [ColorLimit]lipgloss.Style
	color    bool
}

func newTextStyles(w io.Writer, color bool) textStyles {
	re := lipgloss.NewRenderer(w)
	s := textStyles{
		title: re.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")),
		label: re.NewStyle().
			Bold(true),
		exercise: re.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")).
			MarginTop(1),
		heading: re.NewStyle().
			Underline(true),
		muted: re.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Italic(true),
		cell: re.NewStyle().
			Padding(0, 1).
			Align(lipgloss.Right),
		rule: re.NewStyle().
			Foreground(lipgloss.Color("#6B7280")),
		color: color,
	}
	for i, c := range Palette {
		s.palette[i] = s.cell.Background(c).Foreground(lipgloss.Color("#111827"))
	}

	return s
}

// RenderText writes the report as terminal text.
func RenderText(w io.Writer, r *Report, opts TextOptions) error {
	st := newTextStyles(w, opts.Color)
	d := r.document()

	var b strings.Builder
	b.WriteString(st.title.Render(d.Title))
	b.WriteString("\n")
	b.WriteString(headerLine(st, [][2]string{
		{d.Labels.Subject, d.Header.Subject},
		{d.Labels.Program, d.Header.Program},
		{d.Labels.Author, d.Header.Author},
	}))
	b.WriteString(headerLine(st, [][2]string{
		{d.Labels.Campus, d.Header.Campus},
		{d.Labels.Shift, d.Header.Shift},
		{d.Labels.Date, d.Header.Date},
	}))
	b.WriteString(st.rule.Render(strings.Repeat("─", 60)))
	b.WriteString("\n")

	if len(d.Exercises) == 0 {
		b.WriteString(st.muted.Render(d.Placeholder))
		b.WriteString("\n")
	}
	for _, ex := range d.Exercises {
		b.WriteString(st.exercise.Render(ex.Title))
		b.WriteString("\n")

		grids := make([]string, 0, len(ex.Operands))
		for _, g := range ex.Operands {
			grids = append(grids, lipgloss.JoinVertical(lipgloss.Left, st.label.Render(g.Heading), st.grid(g)))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, spaced(grids)...))
		b.WriteString("\n\n")

		b.WriteString(st.label.Render(ex.StepsHeading))
		b.WriteString("\n")
		for _, g := range ex.Stages {
			b.WriteString(st.heading.Render(g.Heading))
			b.WriteString("\n")
			b.WriteString(st.grid(g))
			b.WriteString("\n")
		}

		b.WriteString(st.label.Render(ex.ResultTitle))
		b.WriteString("\n")
		b.WriteString(st.grid(ex.Result))
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report: write text: %w", err)
	}

	return nil
}

func headerLine(st textStyles, pairs [][2]string) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = st.label.Render(p[0]+":") + " " + p[1]
	}

	return strings.Join(parts, "   ") + "\n"
}

// grid renders g as aligned columns. Step cells read "<derivation> = <value>".
func (st textStyles) grid(g gridView) string {
	if len(g.Rows) == 0 {
		return ""
	}
	cols := len(g.Rows[0])
	widths := make([]int, cols)
	texts := make([][]string, len(g.Rows))
	for i, row := range g.Rows {
		texts[i] = make([]string, cols)
		for j, c := range row {
			t := c.Value
			if c.Text != "" {
				t = c.Text + " = " + c.Value
			}
			texts[i][j] = t
			widths[j] = max(widths[j], lipgloss.Width(t))
		}
	}

	lines := make([]string, len(g.Rows))
	for i, row := range g.Rows {
		cells := make([]string, cols)
		for j, c := range row {
			style := st.cell
			if st.color {
				style = st.palette[c.Color]
			}
			// +2 for the horizontal padding
			cells[j] = style.Width(widths[j] + 2).Render(texts[i][j])
		}
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// spaced puts a gap between side-by-side blocks.
func spaced(blocks []string) []string {
	out := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			out = append(out, "    ")
		}
		out = append(out, b)
	}

	return out
}
