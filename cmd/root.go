package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Rex-Orokumue/Vendor-verification/internal/config"
	"github.com/Rex-Orokumue/Vendor-verification/internal/report"
)

var (
	cfgFile      string
	rootPath     string
	rubricName   string
	outputFormat string
	outputFile   string
	quiet        bool
	verbose      bool
	noColor      bool
)

// exitFunc is indirected so tests can observe exit codes.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "vendorverify",
	Short: "Vendor verification for social-commerce marketplaces",
	Long: `Vendorverify scores vendor questionnaires against versioned rubrics and
issues trust badges for social-commerce marketplaces.

By default, vendorverify assesses every answer file under the configured
root with the weighted rubric. Use 'gate' for the pass/fail onboarding
checklist, 'summary' for a portfolio dashboard, and 'serve' or 'mcp' to
expose the engine to other tools.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAssess(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default .vendorverifyrc.{json,yaml,yml})")
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Vendors directory for batch runs (default from config)")
	rootCmd.PersistentFlags().StringVar(&rubricName, "rubric", "", "Weighted rubric to score against (enhanced|document)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|csv|html)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports, or a directory in batch runs")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("rubric", rootCmd.PersistentFlags().Lookup("rubric"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("noColor", rootCmd.PersistentFlags().Lookup("no-color"))
}

func initConfig() {
	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		exitFunc(1)
	}
}

// reportOptions maps the loaded configuration onto report branding.
func reportOptions(cfg *config.Config) report.Options {
	return report.Options{
		Organization:  cfg.Organization,
		ValidityDays:  cfg.ValidityDays,
		LogoPath:      cfg.LogoPath,
		SignaturePath: cfg.SignaturePath,
	}
}
