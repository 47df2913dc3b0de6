// Package preview renders a generated manifest for reading in the terminal.
package preview

import (
	"strings"

	"github.com/charmbracelet/glamour/v2"
	"github.com/charmbracelet/glamour/v2/ansi"
)

// Render converts manifest markdown to styled terminal output wrapped at
// width.
func Render(content string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(previewStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(rendered, "\n"), nil
}

// previewStyle returns a simple markdown style configuration
func previewStyle() ansi.StyleConfig {
	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr("#FAFAFA"),
			},
		},
		Paragraph: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color: stringPtr("#F8F8F2"),
				},
				Margin: uintPtr(1),
			},
		},
		H1: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Bold:  boolPtr(true),
				Color: stringPtr("#FF79C6"),
			},
		},
	}
}

// Helper functions for creating pointers
func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }
func uintPtr(u uint) *uint       { return &u }
