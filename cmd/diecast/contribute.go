package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"diecast/internal/cli"
	"diecast/internal/common"
	"diecast/internal/model"
	"diecast/internal/service"
)

func contributeCmd() *cobra.Command {
	var (
		name         string
		brand        string
		series       string
		color        string
		category     string
		subcategory  string
		year         int
		evidenceRefs []string
	)

	cmd := &cobra.Command{
		Use:   "contribute <barcode>",
		Short: "Write a confirmed classification back to the shared registry",
		Long: `Sends user-confirmed item fields to the shared registry. This is the
only operation that writes; discovery and classification never do.
Transient registry failures are retried, and a final failure is reported
rather than swallowed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			reg, err := openRegistry(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = reg.Close() }()

			contribution := model.Contribution{
				Barcode:      args[0],
				Name:         name,
				Brand:        brand,
				Series:       series,
				Color:        color,
				Category:     model.ParseCategory(category),
				Subcategory:  subcategory,
				Year:         year,
				EvidenceRefs: evidenceRefs,
			}

			err = common.WithRetry(ctx, func() error {
				return reg.Contribute(ctx, contribution)
			}, service.RetryOptions{
				MaxAttempts:  3,
				InitialDelay: 500 * time.Millisecond,
			})
			if err != nil {
				common.LogError(err, "Contribution failed after retries", common.Fields{"barcode": args[0]})
				return common.NewUserError("failed to contribute item to the registry", err)
			}

			common.LogInfo("Contribution accepted", common.Fields{"barcode": args[0], "category": category})
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Contributed %s to the shared registry", args[0])))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "item name")
	cmd.Flags().StringVar(&brand, "brand", "", "brand display name")
	cmd.Flags().StringVar(&series, "series", "", "product series")
	cmd.Flags().StringVar(&color, "color", "", "item color")
	cmd.Flags().StringVar(&category, "category", "", "taxonomy category (mainline, premium, others, hot_rods)")
	cmd.Flags().StringVar(&subcategory, "subcategory", "", "taxonomy subcategory")
	cmd.Flags().IntVar(&year, "year", 0, "model year")
	cmd.Flags().StringSliceVar(&evidenceRefs, "evidence", nil, "references to supporting evidence (photo URLs)")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
