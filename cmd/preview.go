package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwils/scribe/internal/preview"
)

var previewWidth int

var previewCmd = &cobra.Command{
	Use:   "preview [manifest]",
	Short: "Render a generated manifest in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			path = cfg.OutputPath
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read manifest: %w", err)
		}

		out, err := preview.Render(string(content), previewWidth)
		if err != nil {
			return fmt.Errorf("render manifest: %w", err)
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	previewCmd.Flags().IntVar(&previewWidth, "width", 100, "word wrap width")
}
