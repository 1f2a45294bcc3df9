package commands

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Darin2/monitor-public/internal/config"
	"github.com/Darin2/monitor-public/internal/logger"
	"github.com/Darin2/monitor-public/internal/output"
	"github.com/Darin2/monitor-public/jsonld"
)

var generateFlags config.GenerateFlags

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render JSON-LD script blocks from a schemas file",
	Long: `Render every entry of a schemas file as a JSON-LD script block ready to
paste into a page. Entries are rendered in file order. FAQ items and HowTo
steps missing a required field are left out and listed in the summary.

The blocks go to stdout (or --out); the summary goes to stderr.`,
	Example: `  # One block per entry on stdout
  aieo-schema generate --file schemas.yaml

  # A single combined block written to a file
  aieo-schema generate --file schemas.json --combine --out schema.html

  # Machine-readable summary
  aieo-schema generate --file schemas.yaml --format json`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateFlags.File, "file", "f", "",
		"path to the schemas file (.json, .yaml or .yml)")
	generateCmd.Flags().BoolVar(&generateFlags.Combine, "combine", false,
		"combine all entries into a single script block")
	generateCmd.Flags().StringVarP(&generateFlags.OutputFile, "out", "o", "",
		"write the blocks to this file instead of stdout")
	generateCmd.Flags().StringVar(&generateFlags.Format, "format", "",
		"summary format: text or json (default text, or $"+config.FormatEnv+")")
	generateCmd.Flags().StringVar(&generateFlags.LogFile, "log", defaultLogFile,
		"log file name")

	err := generateCmd.MarkFlagRequired("file")
	if err != nil {
		panic(fmt.Sprintf("failed to mark file as required: %v", err))
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(config.ResolveFormat(generateFlags.Format))
	if err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	if format == output.FormatCSV {
		return fmt.Errorf("invalid flags: csv output is only supported by audit")
	}
	if err := config.ValidateGenerateFlags(generateFlags); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logF, err := logger.InitLogger(generateFlags.LogFile)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logF.Close()
	}()

	log.Printf("Loading schemas from %s", generateFlags.File)
	schemas, err := config.LoadSchemas(generateFlags.File)
	if err != nil {
		return fmt.Errorf("failed to load schemas: %w", err)
	}
	if len(schemas.Entries) == 0 {
		return fmt.Errorf("no schemas defined in %s", generateFlags.File)
	}

	content, summary, err := renderSchemas(schemas.Entries, generateFlags.Combine || schemas.Combine)
	if err != nil {
		return err
	}
	summary.Source = generateFlags.File

	if generateFlags.OutputFile != "" {
		if err := os.WriteFile(generateFlags.OutputFile, []byte(content+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		summary.Output = generateFlags.OutputFile
		log.Printf("Wrote %d bytes to %s", len(content), generateFlags.OutputFile)
	} else {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), content)
	}

	printer := output.NewPrinter(format).WithWriter(cmd.ErrOrStderr())
	return printer.PrintGenerateSummary(summary)
}

// renderSchemas builds every entry and joins the blocks, or combines them
// into one block when combine is set.
func renderSchemas(entries []config.SchemaEntry, combine bool) (string, output.GenerateSummary, error) {
	var summary output.GenerateSummary
	blocks := make([]string, 0, len(entries))

	for i, entry := range entries {
		result := entry.Entity.Build()
		block, err := result.Document.Script()
		if err != nil {
			return "", summary, fmt.Errorf("failed to render entry %d (%s): %w", i, entry.Kind, err)
		}

		skipped := make([]string, 0, len(result.Skipped))
		for _, s := range result.Skipped {
			log.Printf("Entry %d (%s): skipped %s", i, entry.Kind, s)
			skipped = append(skipped, s.String())
		}

		blocks = append(blocks, block)
		summary.Entries = append(summary.Entries, output.EntrySummary{
			Index:   i,
			Kind:    string(entry.Kind),
			Type:    result.Document.Type(),
			Bytes:   len(block),
			Skipped: skipped,
		})
	}

	content := strings.Join(blocks, "\n")
	summary.Blocks = len(blocks)
	if combine {
		combined, err := jsonld.Combine(blocks...)
		if err != nil {
			return "", summary, fmt.Errorf("failed to combine blocks: %w", err)
		}
		content = combined
		summary.Blocks = 1
		summary.Combined = true
	}
	summary.Bytes = len(content)

	log.Printf("Rendered %d entries into %d blocks", len(entries), summary.Blocks)
	return content, summary, nil
}
