package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Rex-Orokumue/Vendor-verification/internal/answers"
	"github.com/Rex-Orokumue/Vendor-verification/internal/config"
	"github.com/Rex-Orokumue/Vendor-verification/internal/discovery"
	"github.com/Rex-Orokumue/Vendor-verification/internal/engine"
	"github.com/Rex-Orokumue/Vendor-verification/internal/git"
	"github.com/Rex-Orokumue/Vendor-verification/internal/output"
	"github.com/Rex-Orokumue/Vendor-verification/internal/report"
	"github.com/Rex-Orokumue/Vendor-verification/internal/schema"
	"github.com/Rex-Orokumue/Vendor-verification/internal/waiver"
)

var (
	waiveKnown    bool
	createWaivers bool

	// Shared by assess, gate, and fmt.
	stagedOnly  bool
	changedOnly bool
)

var assessCmd = &cobra.Command{
	Use:   "assess [files|dirs|globs...]",
	Short: "Score vendors against a weighted rubric",
	Long: `The assess command scores vendor answer files against a weighted rubric
and issues trust badges.

Answer files are YAML or JSON dossiers, either a bare answers mapping or a
structured document:

  vendor:
    name: Mama Chidinma Ventures
    category: Fashion
    assessed: 2024-03-05
  rubric: enhanced
  answers:
    name: true
    phones_verified: 2
    registration: cac

With no arguments, every answer file under the configured root is assessed.
Directory arguments are searched with the discovery patterns and glob
arguments are expanded, so 'assess vendors/' and 'assess vendors/**/*.yaml'
both work.

Badge thresholds:
- 80-100  APPROVED     Green (Verified)
- 60-79   CONDITIONAL  Yellow (Conditional)
-  0-59   REJECTED     Red (Rejected)`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAssess(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(assessCmd)

	assessCmd.Flags().Float64("fail-under", 0, "Exit 1 if any vendor totals below this threshold")
	assessCmd.Flags().BoolVar(&waiveKnown, "waive-known", false, "Hide risk factors already accepted in the waiver register")
	assessCmd.Flags().BoolVar(&createWaivers, "create-waivers", false, "Record the reported risk factors as accepted")
	assessCmd.Flags().BoolVar(&stagedOnly, "staged", false, "Assess only dossiers staged in git")
	assessCmd.Flags().BoolVar(&changedOnly, "changed", false, "Assess only dossiers with uncommitted changes")

	viper.BindPFlag("failUnder", assessCmd.Flags().Lookup("fail-under"))
}

func runAssess(args []string) error {
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
		// full-tree run with nothing to assess is an error.
		if stagedOnly || changedOnly {
			if !cfg.Quiet {
				fmt.Println("No uncommitted dossiers to assess")
			}
			return nil
		}
		return fmt.Errorf("no answer files found")
	}

	// Determine waiver register path (relative to the vendors root)
	registerPath := cfg.WaiverFile
	if !filepath.IsAbs(registerPath) {
		registerPath = filepath.Join(cfg.Root, registerPath)
	}

	// Load the register if requested
	var register *waiver.Register
	if waiveKnown || createWaivers {
		if _, err := os.Stat(registerPath); err == nil {
			register, err = waiver.Load(registerPath)
			if err != nil && !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "Warning: failed to load waiver register: %v\n", err)
				register = nil
			}
		}
	}
	if createWaivers && register == nil {
		register = waiver.Create("", nil)
	}

	multi := len(files) > 1
	if multi && cfg.Output != "" && cfg.Format != "console" {
		if err := os.MkdirAll(cfg.Output, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	renderer := output.NewConsoleRenderer(cfg.Quiet, cfg.Verbose, cfg.NoColor)
	opts := reportOptions(cfg)

	var failed, belowThreshold, totalWaived, recorded int
	for i, path := range files {
		rep, err := assessFile(path, cfg, validator, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error assessing %s: %v\n", path, err)
			failed++
			continue
		}

		if createWaivers {
			recorded += register.Add(rep.Vendor.Name, rep.Assessment.RiskFactors)
		}
		if waiveKnown && register != nil {
			remaining, waived := register.Filter(rep.Vendor.Name, rep.Assessment.RiskFactors)
			rep.Assessment.RiskFactors = remaining
			totalWaived += len(waived)
		}

		if cfg.Format == "console" {
			if i > 0 && !cfg.Quiet {
				fmt.Println()
			}
			if err := renderer.Render(rep); err != nil {
				return err
			}
			renderer.Celebrate(rep.Assessment)
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

		if cfg.FailUnder > 0 && rep.Assessment.Total != nil && *rep.Assessment.Total < cfg.FailUnder {
			belowThreshold++
		}
	}

	// Persist new waivers BEFORE exiting on thresholds
	if createWaivers {
		if err := register.Save(registerPath); err != nil {
			return fmt.Errorf("failed to save waiver register: %w", err)
		}
		if !cfg.Quiet {
			fmt.Printf("\nWaiver register updated: %s (%d new)\n", registerPath, recorded)
		}
	}
	if waiveKnown && totalWaived > 0 && !cfg.Quiet {
		fmt.Printf("\n%d accepted risk factor(s) hidden\n", totalWaived)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d answer files failed to assess", failed, len(files))
	}
	if belowThreshold > 0 {
		if !cfg.Quiet {
			fmt.Fprintf(os.Stderr, "\n%d vendor(s) scored below the fail-under threshold\n", belowThreshold)
		}
		exitFunc(1)
	}

	return nil
}

// assessFile runs one weighted assessment from a dossier on disk.
func assessFile(path string, cfg *config.Config, validator *schema.Validator, opts report.Options) (*report.Report, error) {
	f, err := answers.Load(path)
	if err != nil {
		return nil, err
	}
	if f.Mode != "" && f.Mode != string(engine.ModeWeighted) {
		return nil, fmt.Errorf("dossier selects mode %q; run 'vendorverify gate' for screenings", f.Mode)
	}

	// The dossier pins its own rubric; answers collected for one rubric
	// are not scored against another.
	name := f.Rubric
	if name == "" {
		name = cfg.Rubric
	}

	if err := validator.Validate(schema.KindFor("weighted", name), f.RawAnswers()); err != nil {
		return nil, err
	}

	assessment, err := engine.Assess(engine.Request{
		Mode:    engine.ModeWeighted,
		Rubric:  name,
		Vendor:  f.Vendor,
		Answers: f.Answers,
	})
	if err != nil {
		return nil, err
	}

	return report.New(assessment, opts), nil
}

// collectFiles resolves the positional arguments, falling back to batch
// discovery under the configured root. --staged and --changed restrict
// the run to uncommitted dossiers instead.
func collectFiles(args []string, cfg *config.Config) ([]string, error) {
	if stagedOnly || changedOnly {
		if len(args) > 0 {
			return nil, fmt.Errorf("--staged and --changed replace positional arguments")
		}
		if stagedOnly && changedOnly {
			return nil, fmt.Errorf("use --staged or --changed, not both")
		}
		if stagedOnly {
			return git.StagedDossiers(cfg.Root, cfg.Patterns)
		}
		return git.ChangedDossiers(cfg.Root, cfg.Patterns)
	}
	if len(args) == 0 {
		return discovery.NewFinder(cfg.Root, cfg.Patterns).Find()
	}
	return discovery.Expand(args, cfg.Patterns)
}
