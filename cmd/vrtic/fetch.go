// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chombe87/vrtic/internal/artifact"
	"github.com/chombe87/vrtic/internal/fetch"
	"github.com/chombe87/vrtic/internal/pdftext"
	"github.com/chombe87/vrtic/internal/pipeline"
	"github.com/chombe87/vrtic/internal/publish"
	"github.com/chombe87/vrtic/pkg/types"
)

const defaultOutputDir = "data"

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Retrieve the menu sources and write JSON artifacts",
	Long: `Fetch downloads the change-notice page for the requested month, resolves
the linked menu, ingredients, and allergen PDFs, parses everything, and
writes one JSON file per document plus a metadata record.

PDF URLs normally come from link resolution on the page; flags or a YAML
sources file can pin them instead.`,
	RunE: runFetch,
}

func init() {
	now := time.Now()
	fetchCmd.Flags().Int("year", now.Year(), "menu year")
	fetchCmd.Flags().Int("month", int(now.Month()), "menu month (1-12)")
	fetchCmd.Flags().String("menu-pdf-url", "", "override URL for the monthly menu PDF")
	fetchCmd.Flags().String("ingredients-pdf-url", "", "override URL for the ingredients PDF")
	fetchCmd.Flags().String("allergens-pdf-url", "", "override URL for the allergen sheet PDF")
	fetchCmd.Flags().String("sources", "", "YAML file pinning PDF URLs per document")
	fetchCmd.Flags().String("output-dir", "", "directory for JSON output (default \"data\")")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	fetchCmd.Flags().Bool("skip-allergens", false, "do not require or fetch the allergen sheet")
	fetchCmd.Flags().Bool("git-push", false, "commit and push the output directory after a successful run")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := fetchConfig(cmd)
	if err != nil {
		return err
	}

	if err := pipeline.Run(cfg, pdftext.NewReader(), os.Stdout); err != nil {
		return err
	}

	if push, _ := cmd.Flags().GetBool("git-push"); push {
		publisher := publish.New(types.PublishConfig{
			Dir:          ".",
			MetadataFile: artifact.FileMetadata,
		})
		// Publishing problems are reported but never fail a finished run.
		if err := publisher.Publish(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "[git] warning: %v\n", err)
		}
	}
	return nil
}

// fetchConfig assembles the run configuration from flags, the optional
// sources file, and viper-managed settings, in that order of precedence.
func fetchConfig(cmd *cobra.Command) (types.FetchConfig, error) {
	var cfg types.FetchConfig

	// Year and month default to the current date, not zero, so the config
	// fallback applies only when the flag was left untouched.
	cfg.Year, _ = cmd.Flags().GetInt("year")
	if !cmd.Flags().Changed("year") && viper.IsSet("year") {
		cfg.Year = viper.GetInt("year")
	}
	cfg.Month, _ = cmd.Flags().GetInt("month")
	if !cmd.Flags().Changed("month") && viper.IsSet("month") {
		cfg.Month = viper.GetInt("month")
	}
	cfg.SkipAllergens, _ = cmd.Flags().GetBool("skip-allergens")

	cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	if cfg.Timeout == 0 {
		cfg.Timeout = viper.GetDuration("timeout")
	}
	cfg.UserAgent = viper.GetString("user_agent")

	cfg.OutputDir, _ = cmd.Flags().GetString("output-dir")
	if cfg.OutputDir == "" {
		cfg.OutputDir = viper.GetString("output_dir")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir
	}

	if sourcesFile, _ := cmd.Flags().GetString("sources"); sourcesFile != "" {
		overrides, err := fetch.LoadOverrides(sourcesFile)
		if err != nil {
			return cfg, err
		}
		cfg.Overrides = overrides
	}
	if u, _ := cmd.Flags().GetString("menu-pdf-url"); u != "" {
		cfg.Overrides.MenuPDF = u
	}
	if u, _ := cmd.Flags().GetString("ingredients-pdf-url"); u != "" {
		cfg.Overrides.IngredientsPDF = u
	}
	if u, _ := cmd.Flags().GetString("allergens-pdf-url"); u != "" {
		cfg.Overrides.AllergensPDF = u
	}

	return cfg, nil
}
