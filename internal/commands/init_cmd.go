package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/Darin2/monitor-public/internal/config"
	"github.com/Darin2/monitor-public/templates"
)

var initFlags config.InitFlags

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter schemas file",
	Long: `Write a starter schemas file for one entity type. Edit it and pass it to
'aieo-schema generate --file'.

Types: faq, howto, article, product, organization, person.`,
	Example: `  # Print a starter FAQ descriptor
  aieo-schema init --type faq

  # Create article.yaml
  aieo-schema init --type article --out article.yaml`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initFlags.Type, "type", "t", "",
		"entity type (required)")
	initCmd.Flags().StringVarP(&initFlags.OutputFile, "out", "o", "",
		"write the descriptor to this file instead of stdout")
	initCmd.Flags().BoolVar(&initFlags.Force, "force", false,
		"overwrite an existing output file")

	err := initCmd.MarkFlagRequired("type")
	if err != nil {
		panic(fmt.Sprintf("failed to mark type as required: %v", err))
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := config.ValidateInitFlags(initFlags); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	kind, err := config.ParseKind(initFlags.Type)
	if err != nil {
		return err
	}
	content, err := templates.Starter(string(kind))
	if err != nil {
		return err
	}

	if initFlags.OutputFile == "" {
		_, err = cmd.OutOrStdout().Write(content)
		return err
	}

	if !initFlags.Force {
		if _, err := os.Stat(initFlags.OutputFile); err == nil {
			return fmt.Errorf("refusing to overwrite %s: use --force", initFlags.OutputFile)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check output file: %w", err)
		}
	}

	if err := os.WriteFile(initFlags.OutputFile, content, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s starter to %s\n", kind, initFlags.OutputFile)
	return nil
}
