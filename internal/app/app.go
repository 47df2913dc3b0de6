// Package app wires the manifest pipeline together: walk, rank, render,
// write.
package app

import (
	"context"

	"github.com/jwils/scribe/internal/config"
	"github.com/jwils/scribe/internal/report"
	"github.com/jwils/scribe/internal/scanner"
	"github.com/jwils/scribe/internal/volume"
)

// Summary describes a completed run.
type Summary struct {
	Root       string
	OutputPath string
	Languages  int
	Files      int
	Skipped    int
}

// Run executes one full manifest generation. Everything the walk collects
// stays in memory until the document is written, which bounds the tool to
// trees whose recognized sources fit in RAM.
func Run(ctx context.Context, cfg config.Config) (Summary, error) {
	res, err := scanner.New(cfg).Scan(ctx)
	if err != nil {
		return Summary{}, err
	}

	order := volume.Order(res.Order, res.Buckets)
	doc := report.Render(cfg.DisplayName, order, res.Buckets)
	if err := report.Write(cfg.OutputPath, doc); err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Root:       cfg.Root,
		OutputPath: cfg.OutputPath,
		Languages:  len(order),
	}
	for _, o := range res.Outcomes {
		if o.Included() {
			sum.Files++
		} else {
			sum.Skipped++
		}
	}
	return sum, nil
}
