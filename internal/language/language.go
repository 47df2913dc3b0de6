// Package language defines the fixed extension-to-language table used to
// classify source files.
package language

import "strings"

// Label names a programming language for classification purposes.
type Label string

// Fence returns the tag used on this label's fenced code blocks.
func (l Label) Fence() string { return strings.ToLower(string(l)) }

// Banner returns the form of the label used in section banners.
func (l Label) Banner() string { return strings.ToUpper(string(l)) }

// definition pairs a label with the extensions it claims.
type definition struct {
	label Label
	exts  []string
}

// definitions is processed in order when building the lookup table and the
// first label to claim an extension keeps it. C++ is declared before C, so
// ".h" resolves to C++.
var definitions = []definition{
	{"Python", []string{".py"}},
	{"Rust", []string{".rs"}},
	{"JavaScript", []string{".js", ".jsx"}},
	{"TypeScript", []string{".ts", ".tsx"}},
	{"Java", []string{".java"}},
	{"C++", []string{".cpp", ".hpp", ".cc", ".cxx", ".h", ".hh"}},
	{"C", []string{".c", ".h"}},
	{"Go", []string{".go"}},
	{"Ruby", []string{".rb"}},
	{"PHP", []string{".php"}},
	{"Swift", []string{".swift"}},
	{"Kotlin", []string{".kt"}},
	{"Scala", []string{".scala"}},
	{"HTML", []string{".html", ".htm"}},
	{"CSS", []string{".css", ".scss", ".sass"}},
	{"Shell", []string{".sh", ".bash"}},
	{"C#", []string{".cs"}},
	{"R", []string{".r", ".R"}},
	{"SQL", []string{".sql"}},
}

// Registry maps lower-cased file extensions to language labels. It is built
// once and read-only afterwards.
type Registry struct {
	byExt map[string]Label
}

// NewRegistry builds the lookup table from the fixed definition list.
func NewRegistry() *Registry {
	r := &Registry{byExt: make(map[string]Label)}
	for _, d := range definitions {
		for _, ext := range d.exts {
			ext = strings.ToLower(ext)
			if _, claimed := r.byExt[ext]; claimed {
				continue
			}
			r.byExt[ext] = d.label
		}
	}
	return r
}

// Lookup returns the label claiming ext, if any. Extensions include the
// leading dot and match case-insensitively.
func (r *Registry) Lookup(ext string) (Label, bool) {
	label, ok := r.byExt[strings.ToLower(ext)]
	return label, ok
}
