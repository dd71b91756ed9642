// SPDX-License-Identifier: MIT

package dataset

import (
	_ "embed"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

//go:embed default.yaml
var defaultYAML []byte

// Block is one named report: lines of "<A> vs <B> is empty".
type Block struct {
	Name string `yaml:"name" toml:"name" mapstructure:"name"`
	Text string `yaml:"text" toml:"text" mapstructure:"text"`
}

// Dataset is the ordered universe shared by every block plus the blocks in
// output order.
type Dataset struct {
	Universe []string `yaml:"universe" toml:"universe" mapstructure:"universe"`
	Blocks   []Block  `yaml:"blocks" toml:"blocks" mapstructure:"blocks"`
}

// Default returns a fresh copy of the embedded seed dataset
// (seed10, seed20, seed30, seed40, seed50 over six genomes).
// It panics if the embedded document is broken, which tests guard against.
func Default() *Dataset {
	ds, err := decodeYAML(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("dataset: embedded default: %v", err))
	}

	return ds
}

// Names lists block names in dataset order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.Blocks))
	for i, b := range d.Blocks {
		out[i] = b.Name
	}

	return out
}

// Validate checks the structural rules of a dataset and reports every
// violation at once.
func (d *Dataset) Validate() error {
	var result *multierror.Error

	if len(d.Universe) == 0 {
		result = multierror.Append(result, ErrEmptyUniverse)
	}
	seen := make(map[string]struct{}, len(d.Universe))
	for _, id := range d.Universe {
		if _, dup := seen[id]; dup {
			result = multierror.Append(result, fmt.Errorf("universe %q: %w", id, ErrDuplicateLabel))
			continue
		}
		seen[id] = struct{}{}
	}

	names := make(map[string]struct{}, len(d.Blocks))
	for i, b := range d.Blocks {
		if b.Name == "" {
			result = multierror.Append(result, fmt.Errorf("block #%d: %w", i+1, ErrUnnamedBlock))
			continue
		}
		if _, dup := names[b.Name]; dup {
			result = multierror.Append(result, fmt.Errorf("block %q: %w", b.Name, ErrDuplicateBlock))
			continue
		}
		names[b.Name] = struct{}{}
	}

	return result.ErrorOrNil()
}

// Select returns a dataset restricted to the named blocks, kept in dataset
// order. No names selects everything.
func (d *Dataset) Select(names ...string) (*Dataset, error) {
	out := &Dataset{Universe: append([]string(nil), d.Universe...)}
	if len(names) == 0 {
		out.Blocks = append([]Block(nil), d.Blocks...)
		return out, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = false
	}
	for _, b := range d.Blocks {
		if _, ok := want[b.Name]; ok {
			out.Blocks = append(out.Blocks, b)
			want[b.Name] = true
		}
	}
	for _, n := range names {
		if !want[n] {
			return nil, fmt.Errorf("select %q: %w", n, ErrUnknownBlock)
		}
	}

	return out, nil
}
