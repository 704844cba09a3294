// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmpalmer66/writer-tech-base/internal/build"
	"github.com/cmpalmer66/writer-tech-base/internal/manifest"
	"github.com/cmpalmer66/writer-tech-base/internal/pandoc"
	"github.com/cmpalmer66/writer-tech-base/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build [html|pdf|docx|rtf|all]",
	Short: "Assemble the manuscript and convert it to output formats",
	Long: `Build concatenates the manifest's parts in order, inserting page breaks
where the manifest requests them, and converts the result with pandoc.

With no argument (or "all"), every supported format is built; each format
is an independent pipeline, so one format's failure does not stop the
others. Output lands in the output directory, one file per format.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	formats := types.AllFormats()
	if len(args) == 1 && args[0] != "all" {
		f, err := types.ParseFormat(args[0])
		if err != nil {
			return err
		}
		formats = []types.Format{f}
	}

	manifestPath, _ := cmd.Flags().GetString("manifest")
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	conv, err := pandoc.Detect(converterConfig())
	if err != nil {
		return err
	}

	result := build.RunAll(conv, m, buildConfig(cmd), formats, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d format(s) failed", result.Failed)
	}
	return nil
}

// buildConfig resolves build settings: flags override the viper config,
// which carries the defaults.
func buildConfig(cmd *cobra.Command) types.BuildConfig {
	cfg := types.BuildConfig{
		ContentDir: viper.GetString("content_dir"),
		OutputDir:  viper.GetString("output_dir"),
		OutputName: viper.GetString("output_name"),
	}
	if v, _ := cmd.Flags().GetString("content-dir"); v != "" {
		cfg.ContentDir = v
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		cfg.OutputDir = v
	}
	if v, _ := cmd.Flags().GetString("output-name"); v != "" {
		cfg.OutputName = v
	}
	return cfg
}

// converterConfig reads the converter settings from the viper config.
// Per-format extra args are passed through to pandoc untouched.
func converterConfig() types.ConverterConfig {
	cfg := types.ConverterConfig{
		Binary:    viper.GetString("converter.binary"),
		PDFEngine: viper.GetString("converter.pdf_engine"),
	}
	raw := viper.GetStringMapStringSlice("converter.extra_args")
	if len(raw) > 0 {
		cfg.ExtraArgs = raw
	}
	return cfg
}

func init() {
	buildCmd.Flags().String("content-dir", "", "directory containing the part files (default from config)")
	buildCmd.Flags().String("output-dir", "", "directory for output files (default from config)")
	buildCmd.Flags().String("output-name", "", "base name for output files (default from config)")

	rootCmd.AddCommand(buildCmd)
}
