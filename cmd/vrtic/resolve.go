// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chombe87/vrtic/internal/fetch"
	"github.com/chombe87/vrtic/internal/htmldoc"
	"github.com/chombe87/vrtic/internal/links"
	"github.com/chombe87/vrtic/pkg/types"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the PDF links a fetch would use, without downloading",
	Long: `Resolve fetches only the change-notice page and reports which PDF URL
each document slot (monthly menu, ingredients, allergens) would resolve to.
Useful when the site rewords its headings and resolution needs checking.`,
	RunE: runResolve,
}

func init() {
	now := time.Now()
	resolveCmd.Flags().Int("year", now.Year(), "menu year")
	resolveCmd.Flags().Int("month", int(now.Month()), "menu month (1-12)")
	resolveCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	pageURL, err := fetch.MonthPageURL(year, month)
	if err != nil {
		return err
	}

	client := fetch.NewClient(types.HTTPConfig{Timeout: timeout})
	markup, err := client.GetHTML(pageURL)
	if err != nil {
		return err
	}
	doc, err := htmldoc.Parse(markup)
	if err != nil {
		return fmt.Errorf("parsing change-notice page: %w", err)
	}

	docs, err := links.ResolveDocuments(doc, pageURL, types.SourceOverrides{}, true)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "page:        %s\n", pageURL)
	fmt.Fprintf(os.Stdout, "menu:        %s\n", docs.MenuPDF)
	fmt.Fprintf(os.Stdout, "ingredients: %s\n", docs.IngredientsPDF)
	fmt.Fprintf(os.Stdout, "allergens:   %s\n", docs.AllergensPDF)
	return nil
}
