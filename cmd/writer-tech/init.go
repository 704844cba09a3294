// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmpalmer66/writer-tech-base/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a new manuscript project",
	Long: `Init creates a starter project: a book.yaml manifest, a content
directory with sample parts, and an empty output directory. It refuses to
run in a directory that already holds a manifest.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if err := scaffold.Init(dir); err != nil {
			return err
		}
		fmt.Printf("Initialized manuscript project in %s\n", dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
