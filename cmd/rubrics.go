package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Rex-Orokumue/Vendor-verification/internal/config"
	"github.com/Rex-Orokumue/Vendor-verification/internal/rubric"
)

var rubricsCmd = &cobra.Command{
	Use:   "rubrics [name]",
	Short: "Show the scoring rubrics",
	Long: `Prints the weighted scoring rubrics: every category with its maximum,
and every factor with its answer field, kind, and point table.

With a name argument only that rubric is printed. Use --format json for
machine-readable output; reviewers use it to build questionnaire forms.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRubrics(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(rubricsCmd)
}

func runRubrics(args []string) error {
	cfg, err := config.Load(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	names := rubric.Names()
	if len(args) == 1 {
		if _, err := rubric.ByName(args[0]); err != nil {
			return err
		}
		names = []string{args[0]}
	}

	switch cfg.Format {
	case "json":
		return printRubricsJSON(names)
	case "console":
		return printRubricsConsole(names, cfg.NoColor)
	default:
		return fmt.Errorf("rubrics supports console or json output, not %s", cfg.Format)
	}
}

type rubricDoc struct {
	Name       string        `json:"name"`
	Version    string        `json:"version"`
	Title      string        `json:"title"`
	Default    bool          `json:"default"`
	Categories []categoryDoc `json:"categories"`
}

type categoryDoc struct {
	Name    string      `json:"name"`
	Max     float64     `json:"max"`
	Factors []factorDoc `json:"factors"`
}

type factorDoc struct {
	Field   string   `json:"field"`
	Label   string   `json:"label"`
	Kind    string   `json:"kind"`
	Max     float64  `json:"max"`
	Options []string `json:"options,omitempty"`
}

func printRubricsJSON(names []string) error {
	docs := make([]rubricDoc, 0, len(names))
	for _, name := range names {
		rb, err := rubric.ByName(name)
		if err != nil {
			return err
		}
		doc := rubricDoc{
			Name:    rb.Name,
			Version: rb.Version,
			Title:   rb.Title,
			Default: rb.Name == rubric.DefaultName,
		}
		for _, cat := range rb.Categories {
			cd := categoryDoc{Name: cat.Name, Max: cat.Max}
			for _, f := range cat.Factors {
				cd.Factors = append(cd.Factors, factorDoc{
					Field:   f.Field,
					Label:   f.Label,
					Kind:    f.Kind.String(),
					Max:     f.Max(),
					Options: f.Rank,
				})
			}
			doc.Categories = append(doc.Categories, cd)
		}
		docs = append(docs, doc)
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling rubrics: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printRubricsConsole(names []string, noColor bool) error {
	titleStyle := lipgloss.NewStyle()
	categoryStyle := lipgloss.NewStyle()
	dimStyle := lipgloss.NewStyle()
	if !noColor {
		titleStyle = titleStyle.Bold(true).Foreground(lipgloss.Color("12"))
		categoryStyle = categoryStyle.Bold(true)
		dimStyle = dimStyle.Foreground(lipgloss.Color("8"))
	}

	for i, name := range names {
		rb, err := rubric.ByName(name)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Println()
		}

		title := fmt.Sprintf("%s %s: %s", rb.Name, rb.Version, rb.Title)
		if rb.Name == rubric.DefaultName {
			title += " (default)"
		}
		fmt.Println(titleStyle.Render(title))

		for _, cat := range rb.Categories {
			fmt.Printf("\n  %s %s\n",
				categoryStyle.Render(cat.Name),
				dimStyle.Render(fmt.Sprintf("(max %s)", fmtRubricPoints(cat.Max))))
			for _, f := range cat.Factors {
				fmt.Printf("    %-34s %-28s %s\n",
					f.Label,
					dimStyle.Render(fmt.Sprintf("%s (%s)", f.Field, f.Kind)),
					factorPoints(f))
			}
		}
	}

	return nil
}

// factorPoints renders a factor's point table in one line.
func factorPoints(f rubric.Factor) string {
	switch f.Kind {
	case rubric.Bool:
		return fmtRubricPoints(f.Points) + " pts"
	case rubric.Enum:
		parts := make([]string, 0, len(f.Rank))
		for _, opt := range f.Rank {
			parts = append(parts, fmt.Sprintf("%s=%s", opt, fmtRubricPoints(f.Table[opt])))
		}
		return strings.Join(parts, ", ")
	case rubric.Steps:
		parts := make([]string, 0, len(f.Steps))
		for _, step := range f.Steps {
			parts = append(parts, fmtRubricPoints(step))
		}
		return strings.Join(parts, "/") + " by count"
	case rubric.PerUnit:
		if f.MaxUnits > 0 {
			return fmt.Sprintf("%s per unit, max %d", fmtRubricPoints(f.Points), f.MaxUnits)
		}
		return fmtRubricPoints(f.Points) + " per unit"
	default:
		return ""
	}
}

func fmtRubricPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
