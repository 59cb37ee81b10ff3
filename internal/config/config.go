package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Rex-Orokumue/Vendor-verification/internal/rubric"
)

// Config represents the vendorverify configuration
type Config struct {
	Root          string   `mapstructure:"root"`
	Mode          string   `mapstructure:"mode"`
	Rubric        string   `mapstructure:"rubric"`
	Format        string   `mapstructure:"format"`
	Output        string   `mapstructure:"output"`
	Patterns      []string `mapstructure:"patterns"`
	Organization  string   `mapstructure:"organization"`
	LogoPath      string   `mapstructure:"logoPath"`
	SignaturePath string   `mapstructure:"signaturePath"`
	WaiverFile    string   `mapstructure:"waiverFile"`
	ValidityDays  int      `mapstructure:"validityDays"`
	FailUnder     float64  `mapstructure:"failUnder"`
	Addr          string   `mapstructure:"addr"`
	Quiet         bool     `mapstructure:"quiet"`
	Verbose       bool     `mapstructure:"verbose"`
	NoColor       bool     `mapstructure:"noColor"`
}

// Load reads configuration from defaults, an optional .vendorverifyrc
// file, and VENDORVERIFY_* environment variables, in rising precedence.
// A non-empty rootPath overrides the configured root.
func Load(rootPath string) (*Config, error) {
	// Set default values
	viper.SetDefault("root", ".")
	viper.SetDefault("mode", "weighted")
	viper.SetDefault("rubric", "")
	viper.SetDefault("format", "console")
	viper.SetDefault("output", "")
	viper.SetDefault("organization", "")
	viper.SetDefault("waiverFile", ".vendorverify-waivers.json")
	viper.SetDefault("validityDays", 30)
	viper.SetDefault("failUnder", 0)
	viper.SetDefault("addr", ":8080")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("noColor", false)

	// Config file locations. An explicit --config file read by the CLI
	// wins over the rc candidates.
	if viper.ConfigFileUsed() == "" {
		configPaths := []string{".vendorverifyrc.json", ".vendorverifyrc.yaml", ".vendorverifyrc.yml"}
		for _, path := range configPaths {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err == nil {
				break
			}
		}
	}

	// Environment variables
	viper.SetEnvPrefix("VENDORVERIFY")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	switch config.Mode {
	case "weighted", "gate":
	default:
		return fmt.Errorf("invalid mode: %s. Must be 'weighted' or 'gate'", config.Mode)
	}

	switch config.Format {
	case "console", "json", "csv", "html":
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', 'csv', or 'html'", config.Format)
	}

	if config.Rubric != "" {
		if _, err := rubric.ByName(config.Rubric); err != nil {
			return err
		}
	}

	if config.FailUnder < 0 || config.FailUnder > 100 {
		return fmt.Errorf("fail-under must be between 0 and 100, got %v", config.FailUnder)
	}

	if config.ValidityDays < 1 {
		return fmt.Errorf("validity days must be at least 1")
	}

	if config.Addr == "" {
		return fmt.Errorf("listen address must not be empty")
	}

	return nil
}
