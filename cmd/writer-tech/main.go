// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the writer-tech CLI: manuscript
// assembly and conversion driven by a book.yaml manifest.
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

// rootCmd is the base command for the writer-tech CLI.
var rootCmd = &cobra.Command{
	Use:   "writer-tech",
	Short: "Assemble and convert book manuscripts",
	Long: `writer-tech turns a directory of per-chapter Markdown files into polished
output documents. A book.yaml manifest declares the title, author, and the
ordered list of parts; writer-tech concatenates the parts and delegates all
rendering to pandoc.

Use "build" to produce one or all output formats, "validate" to check the
manifest and its content files, "stats" for word counts, and "init" to
scaffold a new project.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./writer-tech.yaml or ~/.config/writer-tech/config.yaml)")
	rootCmd.PersistentFlags().String("manifest", "book.yaml", "path to the manuscript manifest")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("writer-tech")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "writer-tech"))
		}
	}

	viper.SetDefault("content_dir", "content")
	viper.SetDefault("output_dir", "output")
	viper.SetDefault("output_name", "manuscript")
	viper.SetDefault("converter.binary", "pandoc")

	viper.SetEnvPrefix("WRITER_TECH")
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
