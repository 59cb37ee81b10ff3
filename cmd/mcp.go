package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rex-Orokumue/Vendor-verification/internal/config"
	"github.com/Rex-Orokumue/Vendor-verification/internal/server"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the assessment tools over MCP stdio",
	Long: `Starts a Model Context Protocol server on stdin/stdout so AI assistants
can run vendor assessments directly.

Tools:
  assess_vendor   Weighted rubric assessment, returns the report JSON
  screen_vendor   Pass/fail onboarding checklist
  list_rubrics    Rubric rule tables

Stdout carries the protocol; diagnostics go to stderr. Register the binary
in an MCP client configuration as 'vendorverify mcp'.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP() error {
	cfg, err := config.Load(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	s, err := server.New(Version, reportOptions(cfg))
	if err != nil {
		return err
	}

	if err := server.ServeStdio(s); err != nil {
		return fmt.Errorf("mcp server error: %w", err)
	}
	return nil
}
