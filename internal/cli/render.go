package cli

import (
	"fmt"
	"strings"

	"diecast/internal/model"
)

// RenderClassification formats a cascade result for terminal display.
func RenderClassification(result model.ClassificationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Category:   %s\n", result.Category)
	if result.Series != "" {
		fmt.Fprintf(&b, "Series:     %s\n", result.Series)
	}
	if result.Brand != "" {
		fmt.Fprintf(&b, "Brand:      %s\n", result.Brand)
	}
	fmt.Fprintf(&b, "Confidence: %.2f", result.Confidence)

	content := b.String()
	if result.RequiresUserSelection {
		content += "\n" + WarningStyle.Render("Low confidence: manual category selection required")
	}
	return RenderBox("Classification", content)
}

// RenderDiscovery formats a discovery outcome for terminal display.
func RenderDiscovery(result model.DiscoveryResult) string {
	if result.IsKnown() {
		record := result.Known.Record
		loc := result.Known.SaveLocation

		var b strings.Builder
		fmt.Fprintf(&b, "Barcode:       %s\n", record.Barcode)
		if record.Name != "" {
			fmt.Fprintf(&b, "Name:          %s\n", record.Name)
		}
		fmt.Fprintf(&b, "Category:      %s\n", loc.Category)
		if loc.Series != "" {
			fmt.Fprintf(&b, "Series:        %s\n", loc.Series)
		}
		if loc.Brand != "" {
			fmt.Fprintf(&b, "Brand:         %s\n", loc.Brand)
		}
		fmt.Fprintf(&b, "Verifications: %d\n", record.VerificationCount)
		fmt.Fprintf(&b, "Confidence:    %.2f", loc.Confidence)
		return RenderBox("Known item", b.String())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Barcode: %s\n", result.Barcode)
	b.WriteString(SubtleStyle.Render("Not in the shared registry yet; contribution welcome"))
	rendered := RenderBox("New item", b.String())

	if result.New != nil && result.New.Suggestion != nil {
		rendered += "\n" + RenderClassification(*result.New.Suggestion)
	}
	return rendered
}

// RenderSuggestions formats form pre-fill suggestions.
func RenderSuggestions(s model.SmartFormSuggestions) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Category:    %s\n", s.Category)
	if s.Subcategory != "" {
		fmt.Fprintf(&b, "Subcategory: %s\n", s.Subcategory)
	}
	if s.Brand != "" {
		fmt.Fprintf(&b, "Brand:       %s\n", s.Brand)
	}
	if s.Model != "" {
		fmt.Fprintf(&b, "Model:       %s\n", s.Model)
	}
	if s.Year != 0 {
		fmt.Fprintf(&b, "Year:        %d\n", s.Year)
	}
	if s.Series != "" {
		fmt.Fprintf(&b, "Series:      %s\n", s.Series)
	}
	if s.Color != "" {
		fmt.Fprintf(&b, "Color:       %s\n", s.Color)
	}
	fmt.Fprintf(&b, "Confidence:  %.2f", s.Confidence)

	return RenderBox("Form suggestions", b.String())
}

// RenderCategorySuggestions formats the ranked manual-selection options.
func RenderCategorySuggestions(suggestions []model.CategorySuggestion) string {
	var b strings.Builder
	for i, s := range suggestions {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s (%.2f) %s\n", i+1, s.Category, s.Confidence, s.Reason)
		if len(s.Subcategories) > 0 {
			fmt.Fprintf(&b, "   %s", SubtleStyle.Render(strings.Join(s.Subcategories, ", ")))
			b.WriteString("\n")
		}
	}
	return RenderBox("Category options", strings.TrimRight(b.String(), "\n"))
}
