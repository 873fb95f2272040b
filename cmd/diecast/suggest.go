package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"diecast/internal/cli"
	"diecast/internal/engine"
	"diecast/internal/registry"
)

func suggestCmd() *cobra.Command {
	var recognizedText string
	var listCategories bool

	cmd := &cobra.Command{
		Use:   "suggest <barcode>",
		Short: "Generate form pre-fill suggestions from barcode and text evidence",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Suggestions never read the registry; an empty in-memory one
			// satisfies the orchestrator's wiring.
			orchestrator := engine.NewDefaultOrchestrator(registry.NewMemory())

			suggestions := orchestrator.Suggestions(args[0], recognizedText)
			fmt.Println(cli.RenderSuggestions(suggestions))

			if listCategories {
				fmt.Println(cli.RenderCategorySuggestions(orchestrator.CategorySuggestions(recognizedText)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&recognizedText, "text", "t", "", "OCR-recognized packaging text")
	cmd.Flags().BoolVar(&listCategories, "categories", false, "also list ranked category options for manual selection")

	return cmd
}
