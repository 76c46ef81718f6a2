package replay

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorText  = lipgloss.Color("#cdd6f4")
	colorMuted = lipgloss.Color("#a6adc8")
	colorGold  = lipgloss.Color("#d8a941")
	colorGreen = lipgloss.Color("#a6e3a1")
	colorRed   = lipgloss.Color("#f38ba8")
	colorEdge  = lipgloss.Color("#45475a")

	titleStyle  = lipgloss.NewStyle().Foreground(colorGold).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(colorGold).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Foreground(colorText).Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	passStyle   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	failRow     = cellStyle.Foreground(colorRed)
)

var reportHeaders = []string{"#", "action", "progress", "target", "phase", "pane", "overlay", "drag", "idx", "frame"}

// Render formats a trace as a table followed by a verdict
func Render(t *Trace) string {
	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		s := r.Snapshot
		drag := "-"
		if s.Dragging {
			drag = fmt.Sprintf("%+.2f", s.DragOffset)
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Step),
			r.Action,
			fmt.Sprintf("%.4f", s.Progress),
			fmt.Sprintf("%.4f", s.Target),
			s.Phase.String(),
			s.PanePhase.String(),
			fmt.Sprintf("%s %.2f", s.OverlayState, s.Overlay),
			drag,
			strconv.Itoa(s.Index),
			strconv.FormatUint(s.Frame, 10),
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorEdge)).
		Headers(reportHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(t.Rows) && len(t.Rows[row].Failures) > 0:
				return failRow
			}
			return cellStyle
		})

	var b strings.Builder
	name := t.Name
	if name == "" {
		name = "replay"
	}
	b.WriteString(titleStyle.Render(name) + " " + mutedStyle.Render("("+string(t.Mode)+")") + "\n")
	b.WriteString(tbl.Render() + "\n")
	if len(t.Phases) > 0 {
		b.WriteString(mutedStyle.Render("phases: "+strings.Join(t.Phases, ", ")) + "\n")
	}
	if len(t.Flips) > 0 {
		b.WriteString(mutedStyle.Render("overlay: "+strings.Join(t.Flips, ", ")) + "\n")
	}

	if !t.Failed() {
		b.WriteString(passStyle.Render("PASS") + "\n")
		return b.String()
	}
	b.WriteString(failStyle.Render("FAIL") + "\n")
	for _, f := range t.Failures() {
		b.WriteString(failStyle.Render("  "+f) + "\n")
	}
	return b.String()
}
