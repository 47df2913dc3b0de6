// Package scanner walks a project tree and buckets recognized source files
// by language.
package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jwils/scribe/internal/config"
	"github.com/jwils/scribe/internal/language"
)

// FileRecord is one classified source file held in memory until rendering.
type FileRecord struct {
	Name    string
	Dir     string
	Content string
}

// Result is everything a walk produced. Bucket order is discovery order.
type Result struct {
	Buckets  map[language.Label][]FileRecord
	Order    []language.Label // labels in first-discovery order
	Outcomes []Outcome
	included int
}

// Scanner walks the tree described by its config.
type Scanner struct {
	cfg      config.Config
	registry *language.Registry
}

// New creates a scanner for cfg.
func New(cfg config.Config) *Scanner {
	return &Scanner{cfg: cfg, registry: language.NewRegistry()}
}

// Scan walks the root depth-first and classifies every regular file it can
// read. File-level problems (unreadable, unrecognized, the tool's own
// files) are recorded as outcomes and skipped; only an unreadable root is
// an error.
func (s *Scanner) Scan(ctx context.Context) (*Result, error) {
	res := &Result{Buckets: make(map[language.Label][]FileRecord)}
	if err := s.walk(ctx, s.cfg.Root, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Scanner) walk(ctx context.Context, dir string, res *Result) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if dir == s.cfg.Root {
			return fmt.Errorf("read root directory: %w", err)
		}
		// Unreadable subdirectory, skipped like any other local failure.
		return nil
	}

	// Excluded names are pruned here, before descent, so their subtrees are
	// never even opened.
	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			if !s.cfg.Excluded[entry.Name()] {
				subdirs = append(subdirs, entry.Name())
			}
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		s.visit(ctx, dir, entry.Name(), res)
	}

	for _, name := range subdirs {
		if err := s.walk(ctx, filepath.Join(dir, name), res); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scanner) visit(ctx context.Context, dir, name string, res *Result) {
	path := filepath.Join(dir, name)

	label, ok := s.registry.Lookup(strings.ToLower(filepath.Ext(name)))
	if !ok {
		s.record(ctx, res, Outcome{Path: path, Reason: SkipUnrecognized})
		return
	}
	if s.cfg.SelfNames[name] {
		s.record(ctx, res, Outcome{Path: path, Reason: SkipSelf})
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		s.record(ctx, res, Outcome{Path: path, Reason: SkipReadError, Err: err})
		return
	}

	if _, seen := res.Buckets[label]; !seen {
		res.Order = append(res.Order, label)
	}
	res.Buckets[label] = append(res.Buckets[label], FileRecord{
		Name:    name,
		Dir:     dir,
		Content: decode(raw),
	})
	res.included++
	s.record(ctx, res, Outcome{Path: path, Reason: SkipNone})
}

func (s *Scanner) record(ctx context.Context, res *Result, o Outcome) {
	res.Outcomes = append(res.Outcomes, o)
	reportProgress(ctx, Progress{
		FilesSeen:   len(res.Outcomes),
		Included:    res.included,
		CurrentFile: o.Path,
	})
}

// decode turns raw bytes into text, dropping invalid UTF-8 sequences rather
// than failing. A malformed file shows up garbled; it never aborts the run.
func decode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), "")
}
