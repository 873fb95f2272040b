package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"diecast/internal/barcode"
	"diecast/internal/cli"
)

func validateCmd() *cobra.Command {
	var analyze bool

	cmd := &cobra.Command{
		Use:   "validate <barcode>",
		Short: "Check whether a barcode is a well-formed die-cast barcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			matcher := barcode.NewDefaultMatcher()
			code := args[0]

			if matcher.IsValidFormat(code) {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s is a valid barcode format", code)))
			} else {
				fmt.Println(cli.FormatError(fmt.Sprintf("%s is not a recognizable barcode format", code)))
			}

			if analyze {
				analysis := matcher.Analyze(code)
				content := fmt.Sprintf("Category:     %s\nProduct line: %s\nConfidence:   %.2f", analysis.Category, analysis.ProductLine, analysis.Confidence)
				if analysis.EstimatedYear != 0 {
					content += fmt.Sprintf("\nEst. year:    %d", analysis.EstimatedYear)
				}
				fmt.Println(cli.RenderBox("Barcode analysis", content))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&analyze, "analyze", false, "also show the pattern analysis for the barcode")

	return cmd
}
