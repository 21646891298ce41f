// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the vrtic CLI, which retrieves the
// preschool cafeteria's published menus and converts them into the JSON
// artifacts the front-end consumes.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the vrtic CLI.
var rootCmd = &cobra.Command{
	Use:   "vrtic",
	Short: "Preschool menu retrieval and JSON conversion",
	Long: `vrtic retrieves a preschool cafeteria's published menu information (the
monthly change-notice page plus its linked menu, ingredients, and allergen
PDFs) and converts it into structured JSON files.

The fetch subcommand runs the whole pipeline; resolve prints the PDF links
it would use without downloading anything.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./vrtic.yaml or ~/.config/vrtic/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("vrtic")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "vrtic"))
		}
	}

	viper.SetEnvPrefix("VRTIC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
