package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Rex-Orokumue/Vendor-verification/internal/answers"
	"github.com/Rex-Orokumue/Vendor-verification/internal/config"
	"github.com/Rex-Orokumue/Vendor-verification/internal/discovery"
	"github.com/Rex-Orokumue/Vendor-verification/internal/engine"
	"github.com/Rex-Orokumue/Vendor-verification/internal/schema"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [dir]",
	Short: "Show a portfolio summary across all vendors",
	Long: `Aggregates assessments across every answer file under a vendors directory
and displays a dashboard with the badge distribution, mean total, lowest
scoring vendors, and the most frequent risk factors.

Each dossier runs in its own mode: weighted dossiers contribute totals and
badge tiers, gate dossiers contribute their screening outcome.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSummary(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

// portfolioSummary holds aggregated data for the dashboard
type portfolioSummary struct {
	TotalVendors  int
	WeightedCount int
	GateCount     int
	BadgeCounts   map[string]int
	TopRisks      map[string]int
	LowestScoring []scoredVendor
	totalSum      float64
}

// scoredVendor pairs a weighted vendor with its total for sorting
type scoredVendor struct {
	File   string
	Name   string
	Total  float64
	Status string
}

func runSummary(args []string) error {
	cfg, err := config.Load(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	root := cfg.Root
	if len(args) == 1 {
		root = args[0]
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return fmt.Errorf("compiling answer schemas: %w", err)
	}

	files, err := discovery.NewFinder(root, cfg.Patterns).Find()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no answer files found under %s", root)
	}

	summary := &portfolioSummary{
		BadgeCounts: make(map[string]int),
		TopRisks:    make(map[string]int),
	}

	for _, path := range files {
		assessment, err := assessForSummary(path, cfg, validator)
		if err != nil {
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", path, err)
			}
			continue
		}
		aggregate(summary, path, assessment)
	}

	if summary.TotalVendors == 0 {
		return fmt.Errorf("no assessable answer files under %s", root)
	}

	sort.Slice(summary.LowestScoring, func(i, j int) bool {
		return summary.LowestScoring[i].Total < summary.LowestScoring[j].Total
	})

	printPortfolioReport(summary, cfg.NoColor)

	return nil
}

// assessForSummary runs one dossier in its own declared mode.
func assessForSummary(path string, cfg *config.Config, validator *schema.Validator) (*engine.Assessment, error) {
	f, err := answers.Load(path)
	if err != nil {
		return nil, err
	}

	mode := f.Mode
	if mode == "" {
		mode = string(engine.ModeWeighted)
	}
	parsed, err := engine.ParseMode(mode)
	if err != nil {
		return nil, err
	}

	name := f.Rubric
	if name == "" && parsed == engine.ModeWeighted {
		name = cfg.Rubric
	}

	if err := validator.Validate(schema.KindFor(mode, name), f.RawAnswers()); err != nil {
		return nil, err
	}

	return engine.Assess(engine.Request{
		Mode:    parsed,
		Rubric:  name,
		Vendor:  f.Vendor,
		Answers: f.Answers,
	})
}

func aggregate(summary *portfolioSummary, path string, a *engine.Assessment) {
	summary.TotalVendors++
	summary.BadgeCounts[a.Badge.Status]++

	if a.Total != nil {
		summary.WeightedCount++
		summary.totalSum += *a.Total
		summary.LowestScoring = append(summary.LowestScoring, scoredVendor{
			File:   path,
			Name:   a.Vendor.Name,
			Total:  *a.Total,
			Status: a.Badge.Status,
		})
	} else {
		summary.GateCount++
	}

	for _, risk := range a.RiskFactors {
		summary.TopRisks[risk]++
	}
}

// summaryStyles holds all the styles used in the dashboard.
type summaryStyles struct {
	header      lipgloss.Style
	approved    lipgloss.Style
	conditional lipgloss.Style
	rejected    lipgloss.Style
	dim         lipgloss.Style
}

func newSummaryStyles(noColor bool) summaryStyles {
	if noColor {
		plain := lipgloss.NewStyle()
		return summaryStyles{header: plain, approved: plain, conditional: plain, rejected: plain, dim: plain}
	}
	return summaryStyles{
		header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		approved:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		conditional: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		rejected:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func printPortfolioReport(summary *portfolioSummary, noColor bool) {
	styles := newSummaryStyles(noColor)

	printSummaryHeader(styles)
	printVendorCounts(summary)
	printBadgeDistribution(summary, styles, noColor)
	printTopRisks(summary, styles)
	printLowestScoring(summary, styles)
	printSummaryFooter(styles)
}

func printSummaryHeader(styles summaryStyles) {
	fmt.Println()
	fmt.Println(styles.header.Render("╔═══════════════════════════════════════════════════════════╗"))
	fmt.Println(styles.header.Render("║                VENDOR PORTFOLIO SUMMARY                    ║"))
	fmt.Println(styles.header.Render("╠═══════════════════════════════════════════════════════════╣"))
}

func printVendorCounts(summary *portfolioSummary) {
	fmt.Printf("║ Vendors Assessed: %-40d ║\n", summary.TotalVendors)
	fmt.Printf("║   Weighted: %-6d │ Screenings: %-24d ║\n",
		summary.WeightedCount, summary.GateCount)
	if summary.WeightedCount > 0 {
		mean := summary.totalSum / float64(summary.WeightedCount)
		fmt.Printf("║   Mean total: %-44s ║\n", strconv.FormatFloat(mean, 'f', 1, 64)+"/100")
	}
}

func printBadgeDistribution(summary *portfolioSummary, styles summaryStyles, noColor bool) {
	fmt.Println(styles.header.Render("╠───────────────────────────────────────────────────────────╣"))
	fmt.Println("║ BADGE DISTRIBUTION                                        ║")

	type badgeRow struct {
		label string
		count int
		style lipgloss.Style
		color string
	}
	rows := []badgeRow{
		{"APPROVED   ", summary.BadgeCounts["APPROVED"], styles.approved, "10"},
		{"CONDITIONAL", summary.BadgeCounts["CONDITIONAL"], styles.conditional, "3"},
		{"REJECTED   ", summary.BadgeCounts["REJECTED"], styles.rejected, "9"},
	}
	if summary.GateCount > 0 {
		rows = append(rows,
			badgeRow{"PROVISIONAL", summary.BadgeCounts["PROVISIONAL"], styles.approved, "10"},
			badgeRow{"FAILED     ", summary.BadgeCounts["FAILED"], styles.rejected, "9"},
		)
	}

	total := summary.TotalVendors
	for _, row := range rows {
		pct := float64(row.count) / float64(total) * 100
		fmt.Printf("║   %s: %-4d (%5.1f%%)  %s                          ║\n",
			row.style.Render(row.label), row.count, pct,
			renderDistributionBar(row.count, total, row.color, noColor))
	}
}

type riskCount struct {
	risk  string
	count int
}

func printTopRisks(summary *portfolioSummary, styles summaryStyles) {
	fmt.Println(styles.header.Render("╠───────────────────────────────────────────────────────────╣"))
	fmt.Println("║ TOP RISK FACTORS                                          ║")

	if len(summary.TopRisks) == 0 {
		fmt.Println("║   (none reported)                                         ║")
		return
	}

	var risks []riskCount
	for risk, count := range summary.TopRisks {
		risks = append(risks, riskCount{risk, count})
	}
	sort.Slice(risks, func(i, j int) bool {
		if risks[i].count != risks[j].count {
			return risks[i].count > risks[j].count
		}
		return risks[i].risk < risks[j].risk
	})

	for i, rc := range risks {
		if i >= 5 {
			break
		}
		truncated := rc.risk
		if len(truncated) > 44 {
			truncated = truncated[:41] + "..."
		}
		fmt.Printf("║   %s %-44s %3d ║\n", styles.dim.Render(fmt.Sprintf("%d.", i+1)), truncated, rc.count)
	}
}

func printLowestScoring(summary *portfolioSummary, styles summaryStyles) {
	fmt.Println(styles.header.Render("╠───────────────────────────────────────────────────────────╣"))
	fmt.Println("║ LOWEST SCORING VENDORS                                    ║")

	if len(summary.LowestScoring) == 0 {
		fmt.Println("║   (no weighted assessments)                               ║")
		return
	}

	for i, vendor := range summary.LowestScoring {
		if i >= 5 {
			break
		}
		statusStyle := styles.rejected
		switch vendor.Status {
		case "APPROVED":
			statusStyle = styles.approved
		case "CONDITIONAL":
			statusStyle = styles.conditional
		}
		name := vendor.Name
		if name == "" {
			name = vendor.File
		}
		if len(name) > 33 {
			name = "..." + name[len(name)-30:]
		}
		fmt.Printf("║   %s %-33s %s %6s ║\n",
			styles.dim.Render(fmt.Sprintf("%d.", i+1)),
			name,
			statusStyle.Render(fmt.Sprintf("%-11s", vendor.Status)),
			strconv.FormatFloat(vendor.Total, 'f', -1, 64))
	}
}

func printSummaryFooter(styles summaryStyles) {
	fmt.Println(styles.header.Render("╚═══════════════════════════════════════════════════════════╝"))
	fmt.Println()
}

func renderDistributionBar(count, total int, color string, noColor bool) string {
	if total == 0 {
		return ""
	}
	barWidth := 10
	filled := (count * barWidth) / total
	if count > 0 && filled == 0 {
		filled = 1
	}
	style := lipgloss.NewStyle()
	dimStyle := lipgloss.NewStyle()
	if !noColor {
		style = style.Foreground(lipgloss.Color(color))
		dimStyle = dimStyle.Foreground(lipgloss.Color("8"))
	}
	bar := ""
	for i := 0; i < filled; i++ {
		bar += style.Render("█")
	}
	for i := filled; i < barWidth; i++ {
		bar += dimStyle.Render("░")
	}
	return bar
}
