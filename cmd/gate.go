package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Rex-Orokumue/Vendor-verification/internal/answers"
	"github.com/Rex-Orokumue/Vendor-verification/internal/config"
	"github.com/Rex-Orokumue/Vendor-verification/internal/engine"
	"github.com/Rex-Orokumue/Vendor-verification/internal/output"
	"github.com/Rex-Orokumue/Vendor-verification/internal/report"
	"github.com/Rex-Orokumue/Vendor-verification/internal/schema"
)

var gateCmd = &cobra.Command{
	Use:   "gate [files|dirs|globs...]",
	Short: "Run the pass/fail onboarding screening",
	Long: `The gate command runs the initial onboarding checklist for vendors
applying to the platform. There is no score; every requirement must be met.

Checks:
- Vendor name, phone number, location, ID photo
- Supplier or operations proof
- Agreement to platform rules
- Video call verification completed
- No red flags and responsive communication

A clean sheet earns a time-limited Provisionally Verified badge. Any unmet
requirement fails the screening, and the command exits 1 if any vendor in
the run failed.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(gateCmd)

	gateCmd.Flags().BoolVar(&stagedOnly, "staged", false, "Screen only dossiers staged in git")
	gateCmd.Flags().BoolVar(&changedOnly, "changed", false, "Screen only dossiers with uncommitted changes")
}

func runGate(args []string) error {
	cfg, err := config.Load(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return fmt.Errorf("compiling answer schemas: %w", err)
	}

	files, err := collectFiles(args, cfg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		// An empty git selection is routine in a pre-commit hook; only a
		// full-tree run with nothing to screen is an error.
		if stagedOnly || changedOnly {
			if !cfg.Quiet {
				fmt.Println("No uncommitted dossiers to screen")
			}
			return nil
		}
		return fmt.Errorf("no answer files found")
	}

	multi := len(files) > 1
	if multi && cfg.Output != "" && cfg.Format != "console" {
		if err := os.MkdirAll(cfg.Output, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	renderer := output.NewConsoleRenderer(cfg.Quiet, cfg.Verbose, cfg.NoColor)
	opts := reportOptions(cfg)

	var failed, rejected int
	for i, path := range files {
		rep, err := screenFile(path, cfg, validator, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error screening %s: %v\n", path, err)
			failed++
			continue
		}

		if cfg.Format == "console" {
			if i > 0 && !cfg.Quiet {
				fmt.Println()
			}
			if err := renderer.Render(rep); err != nil {
				return err
			}
		} else {
			out := cfg.Output
			if out != "" && multi {
				out = filepath.Join(cfg.Output, rep.DefaultFilename(report.Extension(cfg.Format)))
			}
			if err := report.Write(rep, cfg.Format, out); err != nil {
				return err
			}
			if out != "" && !cfg.Quiet {
				fmt.Printf("Report written: %s\n", out)
			}
		}

		if rep.Assessment.Passed != nil && !*rep.Assessment.Passed {
			rejected++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d answer files failed to screen", failed, len(files))
	}
	if rejected > 0 {
		if multi && !cfg.Quiet {
			fmt.Fprintf(os.Stderr, "\n%d of %d vendors failed screening\n", rejected, len(files))
		}
		exitFunc(1)
	}

	return nil
}

// screenFile runs one gate screening from a dossier on disk.
func screenFile(path string, cfg *config.Config, validator *schema.Validator, opts report.Options) (*report.Report, error) {
	f, err := answers.Load(path)
	if err != nil {
		return nil, err
	}
	if f.Mode != "" && f.Mode != string(engine.ModeGate) {
		return nil, fmt.Errorf("dossier selects mode %q; run 'vendorverify assess' for weighted scoring", f.Mode)
	}

	if err := validator.Validate(schema.KindGate, f.RawAnswers()); err != nil {
		return nil, err
	}

	assessment, err := engine.Assess(engine.Request{
		Mode:    engine.ModeGate,
		Rubric:  f.Rubric,
		Vendor:  f.Vendor,
		Answers: f.Answers,
	})
	if err != nil {
		return nil, err
	}

	return report.New(assessment, opts), nil
}
