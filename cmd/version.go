package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rex-Orokumue/Vendor-verification/internal/rubric"
)

// Version is set at build time via ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vendorverify version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vendorverify %s (rubrics:", Version)
		for _, name := range rubric.Names() {
			if rb, err := rubric.ByName(name); err == nil {
				fmt.Printf(" %s %s", rb.Name, rb.Version)
			}
		}
		fmt.Println(")")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
