// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/cmpalmer66/writer-tech-base/internal/manifest"
	"github.com/cmpalmer66/writer-tech-base/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print word counts for the manuscript's parts",
	Long: `Stats reads every part of the manifest in order and prints a per-part
word count table plus the manuscript total.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	manifestPath, _ := cmd.Flags().GetString("manifest")
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	counts, err := stats.Count(m, buildConfig(cmd).ContentDir)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Part", "Words"})
	for i, c := range counts {
		t.AppendRow(table.Row{i + 1, c.File, c.Words})
	}
	t.AppendFooter(table.Row{"", "Total", stats.Total(counts)})
	t.Render()
	return nil
}

func init() {
	statsCmd.Flags().String("content-dir", "", "directory containing the part files (default from config)")
	statsCmd.Flags().String("output-dir", "", "directory for output files (default from config)")
	statsCmd.Flags().String("output-name", "", "base name for output files (default from config)")

	rootCmd.AddCommand(statsCmd)
}
