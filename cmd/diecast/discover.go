package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"diecast/internal/cli"
	"diecast/internal/engine"
)

func discoverCmd() *cobra.Command {
	var recognizedText string

	cmd := &cobra.Command{
		Use:   "discover <barcode>",
		Short: "Look up a scanned barcode in the shared registry, classifying it if unknown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			code := args[0]

			reg, err := openRegistry(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = reg.Close() }()

			orchestrator := engine.NewDefaultOrchestrator(reg)

			if !orchestrator.IsValidFormat(code) {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("Barcode %q does not look like a die-cast barcode; re-scan or enter details manually", code)))
			}

			result := orchestrator.Discover(ctx, code, recognizedText)
			fmt.Println(cli.RenderDiscovery(result))

			if !result.IsKnown() {
				fmt.Println(cli.FormatWarning("Run 'diecast contribute' after confirming the fields to add this item to the registry"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&recognizedText, "text", "t", "", "OCR-recognized packaging text")

	return cmd
}
