// Package volume ranks languages by how much code they contribute.
package volume

import (
	"sort"
	"unicode/utf8"

	"github.com/jwils/scribe/internal/language"
	"github.com/jwils/scribe/internal/scanner"
)

// Totals sums the decoded character count of every file in each bucket.
func Totals(buckets map[language.Label][]scanner.FileRecord) map[language.Label]int {
	totals := make(map[language.Label]int, len(buckets))
	for label, files := range buckets {
		for _, f := range files {
			totals[label] += utf8.RuneCountInString(f.Content)
		}
	}
	return totals
}

// Order returns labels sorted by descending volume. The sort is stable, so
// languages with equal volume keep their relative order in labels, which
// callers pass in discovery order.
func Order(labels []language.Label, buckets map[language.Label][]scanner.FileRecord) []language.Label {
	totals := Totals(buckets)
	ordered := make([]language.Label, len(labels))
	copy(ordered, labels)
	sort.SliceStable(ordered, func(i, j int) bool {
		return totals[ordered[i]] > totals[ordered[j]]
	})
	return ordered
}
