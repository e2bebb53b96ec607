// Package render turns a report artifact into a styled fixed-width text table.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/serieslab/internal/domain"
)

// Theme groups the styles used by the renderer.
type Theme struct {
	Header lipgloss.Style
	Rule   lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Header: lipgloss.NewStyle().Bold(true),
		Rule:   lipgloss.NewStyle().Faint(true),
	}
}

const (
	idxWidth = 4
	colWidth = 14
	ruleLen  = idxWidth + 3*colWidth + 3 + 1
)

type Renderer struct {
	theme Theme
}

func New(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Table renders one row per iteration record, columns in order: iteration
// index, approximation, approximate (successive-difference) error, true
// truncation error, significant-digit estimate. Values carry 6 significant
// digits. Rows without an error estimate leave the last three columns blank.
func (r *Renderer) Table(report domain.ReportArtifact) string {
	var b strings.Builder

	header := fmt.Sprintf("%-*s %-*s %-*s %-*s %s",
		idxWidth, "n",
		colWidth, fmt.Sprintf("e^%g", report.Base),
		colWidth, "E_a",
		colWidth, "E_t",
		"m")
	b.WriteString(r.theme.Header.Render(header))
	b.WriteByte('\n')
	b.WriteString(r.theme.Rule.Render(strings.Repeat("=", ruleLen)))
	b.WriteByte('\n')

	for _, rec := range report.Records {
		if !rec.HasEstimate {
			b.WriteString(fmt.Sprintf("%-*d %-*.6g\n",
				idxWidth, rec.Index,
				colWidth, rec.Approximation))
			continue
		}

		b.WriteString(fmt.Sprintf("%-*d %-*.6g %-*.6g %-*.6g %d\n",
			idxWidth, rec.Index,
			colWidth, rec.Approximation,
			colWidth, rec.ApproxError,
			colWidth, rec.TrueError,
			rec.Digits))
	}

	return b.String()
}
