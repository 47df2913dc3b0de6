// Package cmd provides the scribe command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jwils/scribe/internal/app"
	"github.com/jwils/scribe/internal/config"
	"github.com/jwils/scribe/internal/tui"
)

var (
	rootFlag  string
	plainFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "Scribe - collect a whole codebase into one manifest document",
	Long: `Scribe walks a project tree, groups source files by language and writes
a single markdown document containing the entire codebase, largest
language first.

With no arguments the project root is the directory the scribe binary
lives in, so dropping the binary into a project and running it is all
that is needed.`,
	RunE: runScan,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "",
		"project root (defaults to the directory containing the scribe binary)")
	rootCmd.Flags().BoolVar(&plainFlag, "plain", false,
		"disable the progress display")
	rootCmd.AddCommand(previewCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	var summary app.Summary
	if plainFlag {
		summary, err = app.Run(context.Background(), cfg)
	} else {
		summary, err = tui.Run(context.Background(), cfg)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Success: '%s' generated in workspace root: %s\n",
		filepath.Base(summary.OutputPath), summary.Root)
	return nil
}

// resolveConfig builds the run configuration. The root defaults to the
// directory the binary lives in, not the process working directory.
func resolveConfig() (config.Config, error) {
	root := rootFlag
	if root == "" {
		exe, err := os.Executable()
		if err != nil {
			return config.Config{}, fmt.Errorf("locate executable: %w", err)
		}
		root = filepath.Dir(exe)
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve root: %w", err)
	}

	cfg := config.Default(root)
	if exe, err := os.Executable(); err == nil {
		cfg.ExcludeSelf(filepath.Base(exe))
	}
	return cfg, nil
}
