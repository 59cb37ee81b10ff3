// Package output renders assessment reports for the terminal.
package output

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/Rex-Orokumue/Vendor-verification/internal/engine"
	"github.com/Rex-Orokumue/Vendor-verification/internal/report"
	"github.com/Rex-Orokumue/Vendor-verification/internal/rubric"
	"github.com/Rex-Orokumue/Vendor-verification/internal/scoring"
)

const barWidth = 20

// ConsoleRenderer prints a report to stdout.
type ConsoleRenderer struct {
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleRenderer creates a new ConsoleRenderer.
func NewConsoleRenderer(quiet, verbose, noColor bool) *ConsoleRenderer {
	return &ConsoleRenderer{
		quiet:    quiet,
		verbose:  verbose,
		colorize: !noColor,
	}
}

// Render prints the report for console display.
func (r *ConsoleRenderer) Render(rep *report.Report) error {
	a := rep.Assessment

	if r.quiet {
		fmt.Println(r.quietLine(rep))
		return nil
	}

	r.printHeader(rep)
	r.printBadge(a)

	if a.Total != nil {
		r.printCategories(a)
		r.printTotal(a)
	}
	r.printIssues(a)
	r.printAdvisories(a)
	r.printValidity(rep)

	return nil
}

// quietLine is the one-line machine-friendly result used in batch runs.
func (r *ConsoleRenderer) quietLine(rep *report.Report) string {
	a := rep.Assessment
	name := rep.Vendor.Name
	if name == "" {
		name = "vendor"
	}
	if a.Total != nil {
		return fmt.Sprintf("%s: %s (%s/100)", name, a.Badge.Status, fmtPoints(*a.Total))
	}
	return fmt.Sprintf("%s: %s", name, a.Badge.Status)
}

func (r *ConsoleRenderer) printHeader(rep *report.Report) {
	a := rep.Assessment

	headerStyle := lipgloss.NewStyle()
	dimStyle := lipgloss.NewStyle()
	if r.colorize {
		headerStyle = headerStyle.Bold(true)
		dimStyle = dimStyle.Foreground(lipgloss.Color("8"))
	}

	fmt.Println(headerStyle.Render(rep.System))
	fmt.Println()

	name := rep.Vendor.Name
	if name == "" {
		name = "(unnamed vendor)"
	}
	if rep.Vendor.Category != "" {
		fmt.Printf("Vendor: %s (%s)\n", name, rep.Vendor.Category)
	} else {
		fmt.Printf("Vendor: %s\n", name)
	}

	meta := "Assessed: " + rep.AssessedAt.Format("2006-01-02")
	if rb, err := rubric.ByName(a.Rubric); err == nil {
		meta += " | Rubric: " + rb.Title
	} else if a.Mode == string(engine.ModeGate) {
		meta += " | Initial screening"
	}
	fmt.Println(dimStyle.Render(meta))
	fmt.Println()
}

func (r *ConsoleRenderer) printBadge(a *engine.Assessment) {
	label := fmt.Sprintf(" %s  %s ", a.Badge.Label, a.Badge.Status)
	if r.colorize {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(badgeColor(a.Badge.Color))
		label = style.Render(label)
	}
	fmt.Println(label)
	fmt.Printf("%s\n\n", a.Badge.Description)
}

func (r *ConsoleRenderer) printCategories(a *engine.Assessment) {
	maxNameLen := 0
	for _, cs := range a.CategoryScores {
		if len(cs.Name) > maxNameLen {
			maxNameLen = len(cs.Name)
		}
	}

	for _, cs := range a.CategoryScores {
		padding := strings.Repeat(" ", maxNameLen-len(cs.Name))
		barText := bar(cs.Score, cs.Max)
		if r.colorize {
			barText = barStyle(cs.Score, cs.Max).Render(barText)
		}
		fmt.Printf("  %s%s  %s  %s/%s\n", cs.Name, padding, barText, fmtPoints(cs.Score), fmtPoints(cs.Max))

		if r.verbose {
			r.printMetrics(cs)
		}
	}
	fmt.Println()
}

func (r *ConsoleRenderer) printMetrics(cs scoring.CategoryScore) {
	for _, m := range cs.Metrics {
		icon := "✗"
		style := lipgloss.NewStyle()
		if m.Passed {
			icon = "✓"
			if r.colorize {
				style = style.Foreground(lipgloss.Color("10"))
			}
		} else if r.colorize {
			style = style.Foreground(lipgloss.Color("8"))
		}

		line := fmt.Sprintf("%s %s  %s/%s", icon, m.Name, fmtPoints(m.Points), fmtPoints(m.MaxPoints))
		if m.Note != "" {
			line += fmt.Sprintf(" (%s)", m.Note)
		}
		fmt.Printf("      %s\n", style.Render(line))
	}
}

func (r *ConsoleRenderer) printTotal(a *engine.Assessment) {
	text := fmt.Sprintf("Total: %s/100", fmtPoints(*a.Total))
	if r.colorize {
		style := lipgloss.NewStyle().Bold(true).Foreground(badgeColor(a.Badge.Color))
		text = style.Render(text)
	}
	fmt.Printf("%s\n\n", text)
}

func (r *ConsoleRenderer) printIssues(a *engine.Assessment) {
	if a.Passed == nil {
		return
	}

	if *a.Passed {
		text := "✓ All screening checks passed"
		if r.colorize {
			text = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(text)
		}
		fmt.Printf("%s\n\n", text)
		return
	}

	fmt.Println("Issues:")
	redStyle := lipgloss.NewStyle()
	if r.colorize {
		redStyle = redStyle.Foreground(lipgloss.Color("9"))
	}
	for _, issue := range a.Issues {
		fmt.Printf("  %s\n", redStyle.Render("✗ "+issue))
	}
	fmt.Println()
}

func (r *ConsoleRenderer) printAdvisories(a *engine.Assessment) {
	if len(a.Recommendations) > 0 {
		fmt.Println("Recommendations:")
		for _, rec := range a.Recommendations {
			fmt.Printf("  💡 %s\n", rec)
		}
		fmt.Println()
	}

	if len(a.RiskFactors) > 0 {
		fmt.Println("Risk factors:")
		redStyle := lipgloss.NewStyle()
		if r.colorize {
			redStyle = redStyle.Foreground(lipgloss.Color("9"))
		}
		for _, risk := range a.RiskFactors {
			fmt.Printf("  %s\n", redStyle.Render("🚩 "+risk))
		}
		fmt.Println()
	}
}

func (r *ConsoleRenderer) printValidity(rep *report.Report) {
	if rep.ValidUntil == nil {
		return
	}
	fmt.Printf("Valid until %s\n", rep.ValidUntil.Format("2006-01-02"))
}

// Celebrate runs the sparkle animation for a flawless weighted assessment.
// It is a no-op off a TTY or when color is disabled.
func (r *ConsoleRenderer) Celebrate(a *engine.Assessment) {
	if r.quiet || !r.colorize || !r.isTTY() {
		return
	}
	if a.Total == nil || *a.Total < 100 {
		return
	}
	printCelebration(fmt.Sprintf("Flawless verification: %s/100", fmtPoints(*a.Total)))
}

// isTTY returns true if stdout is a terminal
func (r *ConsoleRenderer) isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// badgeColor maps the report color tokens onto the ANSI palette.
func badgeColor(token string) lipgloss.Color {
	switch token {
	case "green":
		return lipgloss.Color("10")
	case "yellow":
		return lipgloss.Color("3")
	case "red":
		return lipgloss.Color("9")
	default:
		return lipgloss.Color("7")
	}
}

func barStyle(score, max float64) lipgloss.Style {
	style := lipgloss.NewStyle()
	switch {
	case max <= 0:
		return style
	case score/max >= 0.8:
		return style.Foreground(lipgloss.Color("10"))
	case score/max >= 0.5:
		return style.Foreground(lipgloss.Color("3"))
	default:
		return style.Foreground(lipgloss.Color("9"))
	}
}

// bar renders a fixed-width score gauge. Overshoot past the category max,
// as the bonus category allows, stays pinned to a full bar.
func bar(score, max float64) string {
	filled := 0
	if max > 0 {
		filled = int(score/max*barWidth + 0.5)
	}
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func fmtPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
