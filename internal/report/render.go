// Package report renders and writes the manifest document.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/jwils/scribe/internal/language"
	"github.com/jwils/scribe/internal/scanner"
)

const (
	// bannerWidth is the total width of the boxed banners, borders included.
	bannerWidth = 40
	// separatorWidth is the width of the dashed line between file entries.
	separatorWidth = 80
)

// Banner boxes: a single-line border for the document header, a double-line
// border to set language sections apart.
var (
	overviewBox = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Width(bannerWidth - 2).
			Align(lipgloss.Center)

	languageBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Width(bannerWidth - 2).
			Align(lipgloss.Center)
)

// Render builds the whole document in one sequential pass. It is
// deterministic given its inputs: the same buckets and order always produce
// byte-identical output.
func Render(displayName string, order []language.Label, buckets map[language.Label][]scanner.FileRecord) string {
	var b strings.Builder

	b.WriteString(overviewBox.Render("PROJECT CODEBASE OVERVIEW"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "# %s Codebase Manifest\n\n", displayName)
	b.WriteString(strings.Repeat("═", bannerWidth))
	b.WriteString("\n\n")

	for _, label := range order {
		b.WriteString(languageBox.Render(label.Banner()))
		b.WriteString("\n")

		for _, f := range buckets[label] {
			b.WriteString(f.Name)
			b.WriteString("\n")
			b.WriteString(f.Dir)
			b.WriteString("\n")
			fmt.Fprintf(&b, "```%s\n", label.Fence())
			b.WriteString(f.Content)
			b.WriteString("\n```\n\n")
			b.WriteString(strings.Repeat("-", separatorWidth))
			b.WriteString("\n\n")
		}

		b.WriteString("\n\n")
	}

	return b.String()
}
