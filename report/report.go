// SPDX-License-Identifier: MIT

// Package report drives a run: for every block of a dataset, in order, it
// parses the block, builds its relation and writes it in the requested
// format.
package report

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/husonlab/emptytab/dataset"
	"github.com/husonlab/emptytab/matrix"
	"github.com/husonlab/emptytab/pairs"
	"github.com/husonlab/emptytab/render"
)

// Config selects what to run and how to write it. The zero value renders
// every block as plain markdown with a disabled logger.
type Config struct {
	Format     string         // render format; "" means render.FormatMarkdown
	Blocks     []string       // subset of block names; empty means all
	Strict     bool           // require the full "A vs B is empty" grammar
	AllowLoops bool           // accept self pairs on the diagonal
	Render     render.Options // writer options (headings, glamour style)
	Logger     zerolog.Logger
}

// BlockSummary describes one processed block.
type BlockSummary struct {
	Name   string `json:"name"`
	Pairs  int    `json:"pairs"`  // parsed lines
	Marked int    `json:"marked"` // distinct marked pairs
}

// Summary lists processed blocks in output order.
type Summary struct {
	Blocks []BlockSummary `json:"blocks"`
}

// Build parses and builds one block without rendering it.
func Build(universe []string, b dataset.Block, cfg Config) (*matrix.Relation, int, error) {
	var popts []pairs.Option
	if cfg.Strict {
		popts = append(popts, pairs.WithStrictGrammar())
	}
	ps, err := pairs.Parse(b.Text, popts...)
	if err != nil {
		return nil, 0, fmt.Errorf("block %q: %w", b.Name, err)
	}

	r, err := matrix.FromPairs(universe, ps, matrix.WithAllowLoops(cfg.AllowLoops))
	if err != nil {
		return nil, 0, fmt.Errorf("block %q: %w", b.Name, err)
	}

	return r, len(ps), nil
}

// Run processes ds block by block and writes each table to w as soon as it
// is built. The first failure aborts the run; tables already written stay
// written. ctx is checked between blocks.
func Run(ctx context.Context, ds *dataset.Dataset, w io.Writer, cfg Config) (Summary, error) {
	var sum Summary
	if err := ds.Validate(); err != nil {
		return sum, fmt.Errorf("invalid dataset: %w", err)
	}
	sel, err := ds.Select(cfg.Blocks...)
	if err != nil {
		return sum, err
	}

	format := cfg.Format
	if format == "" {
		format = render.FormatMarkdown
	}
	log := cfg.Logger.With().Str("format", format).Logger()

	for _, b := range sel.Blocks {
		if err = ctx.Err(); err != nil {
			return sum, err
		}

		r, n, err := Build(sel.Universe, b, cfg)
		if err != nil {
			return sum, err
		}
		if err = render.Write(format, w, render.Table{Name: b.Name, Relation: r}, cfg.Render); err != nil {
			return sum, fmt.Errorf("block %q: %w", b.Name, err)
		}

		bs := BlockSummary{Name: b.Name, Pairs: n, Marked: r.Count()}
		sum.Blocks = append(sum.Blocks, bs)
		log.Debug().
			Str("block", bs.Name).
			Int("pairs", bs.Pairs).
			Int("marked", bs.Marked).
			Msg("rendered block")
	}

	return sum, nil
}

// Check builds every block of ds and validates each relation without
// writing anything.
func Check(ctx context.Context, ds *dataset.Dataset, cfg Config) (Summary, error) {
	var sum Summary
	if err := ds.Validate(); err != nil {
		return sum, fmt.Errorf("invalid dataset: %w", err)
	}
	sel, err := ds.Select(cfg.Blocks...)
	if err != nil {
		return sum, err
	}

	for _, b := range sel.Blocks {
		if err = ctx.Err(); err != nil {
			return sum, err
		}
		r, n, err := Build(sel.Universe, b, cfg)
		if err != nil {
			return sum, err
		}
		if err = matrix.ValidateRelation(r); err != nil {
			return sum, fmt.Errorf("block %q: %w", b.Name, err)
		}
		sum.Blocks = append(sum.Blocks, BlockSummary{Name: b.Name, Pairs: n, Marked: r.Count()})
	}

	return sum, nil
}
