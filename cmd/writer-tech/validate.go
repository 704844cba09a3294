// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmpalmer66/writer-tech-base/internal/assemble"
	"github.com/cmpalmer66/writer-tech-base/internal/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the manifest and its content files",
	Long: `Validate loads the manifest, checks its structure, and verifies that
every part resolves to an existing content file. It performs no conversion
and needs no pandoc installation.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	manifestPath, _ := cmd.Flags().GetString("manifest")
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	cfg := buildConfig(cmd)
	if _, err := assemble.Resolve(m, cfg.ContentDir); err != nil {
		return err
	}

	fmt.Printf("%s: %d part(s) ok\n", manifestPath, len(m.Parts))
	return nil
}

func init() {
	validateCmd.Flags().String("content-dir", "", "directory containing the part files (default from config)")
	validateCmd.Flags().String("output-dir", "", "directory for output files (default from config)")
	validateCmd.Flags().String("output-name", "", "base name for output files (default from config)")

	rootCmd.AddCommand(validateCmd)
}
