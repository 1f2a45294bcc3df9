package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// defaultLogFile receives operational logs of the commands that write any
const defaultLogFile = "aieo.log"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aieo-schema",
	Short: "JSON-LD structured data generator and AIEO page auditor",
	Long: `A tool to make web pages readable for AI answer engines.

Generates schema.org JSON-LD script blocks (FAQ, HowTo, Article,
SoftwareApplication, Organization, Person) from YAML or JSON descriptor
files, combines existing blocks, and audits pages for the structure and
metadata answer engines rely on.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
