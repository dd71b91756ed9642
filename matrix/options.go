// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for relation construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - Relations are undirected by construction; there is no directed switch.
//   - The default forbids self pairs so the zero diagonal holds structurally.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultAllowLoops permits MarkSymmetric(a, a) when true.
// false ⇒ self pairs are rejected with ErrSelfPair.
const DefaultAllowLoops = false

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	allowLoops bool // DefaultAllowLoops
}

// WithAllowLoops toggles acceptance of self pairs (diagonal writes).
func WithAllowLoops(allow bool) Option {
	return func(o *Options) { o.allowLoops = allow }
}

// defaultOptions returns Options populated with package defaults.
func defaultOptions() Options {
	return Options{allowLoops: DefaultAllowLoops}
}

// gatherOptions applies opts over the defaults in order; nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// AllowLoops reports whether the resolved options accept self pairs.
func (o Options) AllowLoops() bool { return o.allowLoops }
