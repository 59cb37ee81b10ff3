package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rex-Orokumue/Vendor-verification/internal/config"
	"github.com/Rex-Orokumue/Vendor-verification/internal/format"
)

var (
	fmtCheck bool
	fmtWrite bool
	fmtDiff  bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files|dirs|globs...]",
	Short: "Format answer dossiers canonically",
	Long: `Rewrites answer dossiers in canonical form: the vendor block first,
then mode and rubric, then the answers mapping with fields in scoring
order. Values and reviewer comments are preserved.

Without flags the formatted dossier prints to stdout. Use --write to
rewrite files in place, --diff to preview changes, or --check in CI to
exit 1 when dossiers drift from canonical form.

Only YAML dossiers are formatted; JSON dossiers are left alone.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFmt(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "Exit 1 if files would change (for CI)")
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Write changes in place")
	fmtCmd.Flags().BoolVar(&fmtDiff, "diff", false, "Show diff of what would change")
	fmtCmd.Flags().BoolVar(&stagedOnly, "staged", false, "Format only dossiers staged in git")
	fmtCmd.Flags().BoolVar(&changedOnly, "changed", false, "Format only dossiers with uncommitted changes")
}

func runFmt(args []string) error {
	cfg, err := config.Load(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	files, err := collectFiles(args, cfg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		// An empty git selection is routine in a pre-commit hook; only a
		// full-tree run with nothing to format is an error.
		if stagedOnly || changedOnly {
			if !cfg.Quiet {
				fmt.Println("No uncommitted dossiers to format")
			}
			return nil
		}
		return fmt.Errorf("no answer files found")
	}

	opts := format.Options{Rubric: cfg.Rubric}

	var needsFormatting, totalFiles int
	for _, path := range files {
		if ext := strings.ToLower(filepath.Ext(path)); ext != ".yaml" && ext != ".yml" {
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "Skipping %s: only yaml dossiers are formatted\n", path)
			}
			continue
		}
		totalFiles++

		content, err := os.ReadFile(path)
		if err != nil {
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", path, err)
			}
			continue
		}

		formatted, err := format.Dossier(string(content), opts)
		if err != nil {
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", path, err)
			}
			continue
		}

		if formatted == string(content) {
			if cfg.Verbose {
				fmt.Printf("%s already formatted\n", path)
			}
			continue
		}
		needsFormatting++

		switch {
		case fmtCheck:
			if !cfg.Quiet {
				fmt.Printf("%s needs formatting\n", path)
			}
		case fmtDiff:
			fmt.Print(format.Diff(string(content), formatted, path))
		case fmtWrite:
			if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
				return fmt.Errorf("error writing %s: %w", path, err)
			}
			if !cfg.Quiet {
				fmt.Printf("Formatted %s\n", path)
			}
		default:
			fmt.Print(formatted)
		}
	}

	if !cfg.Quiet && totalFiles > 1 {
		switch {
		case needsFormatting == 0:
			fmt.Printf("\nAll %d dossiers already formatted\n", totalFiles)
		case fmtWrite:
			fmt.Printf("\nFormatted %d of %d dossiers\n", needsFormatting, totalFiles)
		default:
			fmt.Printf("\n%d of %d dossiers need formatting\n", needsFormatting, totalFiles)
		}
	}

	if fmtCheck && needsFormatting > 0 {
		exitFunc(1)
	}
	return nil
}
