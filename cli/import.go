package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"squad_catalog/domain"
	"squad_catalog/importer"
)

var (
	importFile   string
	importDryRun bool
)

func init() {
	importCmd := &cobra.Command{
		Use:   "import --file <file>",
		Short: "Replace the catalog with a product export CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if importFile == "" {
				return errors.New("--file required")
			}

			b, err := os.ReadFile(importFile)
			if err != nil {
				return err
			}
			if len(bytes.TrimSpace(b)) == 0 {
				return errors.New("empty file")
			}

			if importDryRun {
				rows, err := importer.ParseRows(b)
				if err != nil {
					return fmt.Errorf("failed to parse CSV file, please check the format: %w", err)
				}
				s := importer.Summarize(importer.Build(rows))
				fmt.Printf("Dry run: would import %d products with %d variants\n", s.ProductCount, s.VariantCount)
				return nil
			}

			summary, err := importer.New(catalogStore, slog.Default()).Import(context.Background(), b)
			switch {
			case domain.IsParseFailure(err):
				return fmt.Errorf("failed to parse CSV file, please check the format: %w", err)
			case domain.IsPersistenceFailure(err):
				return fmt.Errorf("failed to save catalog, previous catalog kept: %w", err)
			case err != nil:
				return err
			}

			fmt.Printf("Successfully imported %d products with %d variants\n", summary.ProductCount, summary.VariantCount)
			return nil
		},
	}
	importCmd.Flags().StringVar(&importFile, "file", "", "input CSV file")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "parse and summarize without saving")
	rootCmd.AddCommand(importCmd)
}
