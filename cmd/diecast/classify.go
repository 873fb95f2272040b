package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"diecast/internal/cli"
	"diecast/internal/engine"
	"diecast/internal/model"
)

func classifyCmd() *cobra.Command {
	var (
		barcodeFlag string
		textFlag    string
		brandFlag   string
		nameFlag    string
		seriesFlag  string
		premium     bool
		filePath    string
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify item evidence without touching the registry",
		Long: `Runs the classification cascade over whatever evidence is supplied:
a barcode, OCR-recognized text, and optional user hints. With --file,
classifies a CSV of "barcode,text" rows in one pass.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cascade := engine.NewDefaultCascade()

			if filePath != "" {
				return classifyFile(cascade, filePath)
			}

			var hint *model.UserHint
			if brandFlag != "" || nameFlag != "" || seriesFlag != "" || cmd.Flags().Changed("premium") {
				hint = &model.UserHint{
					Name:   nameFlag,
					Brand:  brandFlag,
					Series: seriesFlag,
				}
				if cmd.Flags().Changed("premium") {
					hint.IsPremium = &premium
				}
			}

			evidence := model.Evidence{
				Barcode:        barcodeFlag,
				RecognizedText: textFlag,
				Hint:           hint,
			}

			result := cascade.Classify(evidence)
			fmt.Println(cli.RenderClassification(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&barcodeFlag, "barcode", "b", "", "scanned barcode")
	cmd.Flags().StringVarP(&textFlag, "text", "t", "", "OCR-recognized packaging text")
	cmd.Flags().StringVar(&brandFlag, "brand", "", "user-supplied brand hint")
	cmd.Flags().StringVar(&nameFlag, "name", "", "user-supplied item name hint")
	cmd.Flags().StringVar(&seriesFlag, "series", "", "user-supplied series hint")
	cmd.Flags().BoolVar(&premium, "premium", false, "user asserts the item is a premium line")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "CSV file of barcode,text rows to classify in batch")

	return cmd
}

// classifyFile runs the cascade over each CSV row and prints a summary.
func classifyFile(cascade *engine.Cascade, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(bufio.NewReader(f))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	bar := progressbar.Default(int64(len(rows)), "classifying")

	resolved := 0
	var unresolvedBarcodes []string
	for _, row := range rows {
		if len(row) == 0 {
			_ = bar.Add(1)
			continue
		}
		evidence := model.Evidence{Barcode: strings.TrimSpace(row[0])}
		if len(row) > 1 {
			evidence.RecognizedText = row[1]
		}

		result := cascade.Classify(evidence)
		if result.RequiresUserSelection {
			unresolvedBarcodes = append(unresolvedBarcodes, evidence.Barcode)
		} else {
			resolved++
		}
		_ = bar.Add(1)
	}

	slog.Info("Batch classification finished",
		"total", len(rows),
		"resolved", resolved,
		"needs_selection", len(unresolvedBarcodes))

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d of %d rows classified automatically", resolved, len(rows))))
	if len(unresolvedBarcodes) > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("Needs manual selection: %s", strings.Join(unresolvedBarcodes, ", "))))
	}
	return nil
}
