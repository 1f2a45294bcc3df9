package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Darin2/monitor-public/internal/config"
	"github.com/Darin2/monitor-public/jsonld"
)

var combineFlags config.CombineFlags

var combineCmd = &cobra.Command{
	Use:   "combine FILE...",
	Short: "Merge JSON-LD blocks from several files into one block",
	Long: `Read every application/ld+json block from the given files and print a
single block holding all of their entities, in file order. Files without a
script block are read as bare JSON-LD. Content that does not parse is skipped.

When nothing parses, nothing is printed and a warning goes to stderr.`,
	Example: `  # Merge the blocks of two pages
  aieo-schema combine faq.html article.html

  # Merge generated blocks into one file
  aieo-schema combine faq.html org.json --out schema.html`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)

	combineCmd.Flags().StringVarP(&combineFlags.OutputFile, "out", "o", "",
		"write the combined block to this file instead of stdout")
}

func runCombine(cmd *cobra.Command, args []string) error {
	var entities []string
	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		entities = append(entities, entitiesOf(cmd, path, string(content))...)
	}

	combined, err := jsonld.Combine(entities...)
	if err != nil {
		return fmt.Errorf("failed to combine blocks: %w", err)
	}
	if combined == "" {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Warning: no structured data found, nothing to combine")
		return nil
	}

	if combineFlags.OutputFile != "" {
		if err := os.WriteFile(combineFlags.OutputFile, []byte(combined+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Combined %d entities into %s\n", len(entities), combineFlags.OutputFile)
		return nil
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), combined)
	return nil
}

// entitiesOf splits the JSON-LD in content into one JSON text per entity, so
// that blocks which are already combined are flattened rather than nested.
func entitiesOf(cmd *cobra.Command, path, content string) []string {
	bodies := jsonld.Extract(content)
	if len(bodies) == 0 {
		bodies = []string{content}
	}

	var entities []string
	for i, body := range bodies {
		docs, err := jsonld.Parse(body)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipping block %d of %s: %v\n", i+1, path, err)
			continue
		}
		for _, doc := range docs {
			text, err := doc.JSON()
			if err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipping entity in %s: %v\n", path, err)
				continue
			}
			entities = append(entities, string(text))
		}
	}
	return entities
}
