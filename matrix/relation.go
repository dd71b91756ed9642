// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/husonlab/emptytab/pairs"
)

// Relation is a square, labeled, symmetric 0/1 matrix over an ordered
// universe of identifiers. Rows and columns share the universe order.
//
// The only mutator is MarkSymmetric, which always writes both (a,b) and
// (b,a); symmetry therefore holds by construction.
type Relation struct {
	mat    *Dense         // N×N binary storage
	index  map[string]int // label → row/col
	labels []string       // reverse lookup, universe order
	opts   Options        // resolved construction options
}

// NewRelation allocates an all-zero relation over universe.
// Stage 1 (Validate): non-empty universe, unique labels.
// Stage 2 (Prepare): build forward and reverse index.
// Stage 3 (Execute): allocate N×N storage.
// Returns ErrEmptyUniverse or ErrDuplicateLabel.
func NewRelation(universe []string, opts ...Option) (*Relation, error) {
	if len(universe) == 0 {
		return nil, ErrEmptyUniverse
	}

	idx := make(map[string]int, len(universe))
	labels := make([]string, len(universe))
	for i, id := range universe {
		if _, dup := idx[id]; dup {
			return nil, fmt.Errorf("NewRelation: label %q: %w", id, ErrDuplicateLabel)
		}
		idx[id] = i
		labels[i] = id
	}

	mat, err := NewDense(len(universe), len(universe))
	if err != nil {
		return nil, fmt.Errorf("NewRelation: %w", err)
	}

	return &Relation{mat: mat, index: idx, labels: labels, opts: gatherOptions(opts...)}, nil
}

// FromPairs builds a relation over universe and marks every pair in ps.
// The result is independent of the order of ps. The first unknown label or
// forbidden self pair aborts the build.
func FromPairs(universe []string, ps []pairs.Pair, opts ...Option) (*Relation, error) {
	r, err := NewRelation(universe, opts...)
	if err != nil {
		return nil, err
	}
	for i, p := range ps {
		if err = r.MarkSymmetric(p.A, p.B); err != nil {
			return nil, fmt.Errorf("FromPairs: pair %d (%s): %w", i+1, p, err)
		}
	}

	return r, nil
}

// lookup resolves a label to its index.
func (r *Relation) lookup(method, id string) (int, error) {
	i, ok := r.index[id]
	if !ok {
		return 0, fmt.Errorf("%s: %q: %w", method, id, ErrUnknownVertex)
	}

	return i, nil
}

// MarkSymmetric records that a and b have an empty intersection by setting
// both (a,b) and (b,a) to 1. Marking an already marked pair is a no-op.
//
// Errors: ErrNilMatrix, ErrUnknownVertex, ErrSelfPair (unless loops allowed).
func (r *Relation) MarkSymmetric(a, b string) error {
	if r == nil || r.mat == nil {
		return fmt.Errorf("MarkSymmetric: %w", ErrNilMatrix)
	}
	i, err := r.lookup("MarkSymmetric", a)
	if err != nil {
		return err
	}
	j, err := r.lookup("MarkSymmetric", b)
	if err != nil {
		return err
	}
	if i == j && !r.opts.allowLoops {
		return fmt.Errorf("MarkSymmetric: %q: %w", a, ErrSelfPair)
	}

	// Both writes are in range by construction of the index.
	if err = r.mat.Set(i, j, 1); err != nil {
		return err
	}

	return r.mat.Set(j, i, 1)
}

// Size returns N, the number of labels.
func (r *Relation) Size() int { return len(r.labels) }

// Labels returns a copy of the universe in matrix order.
func (r *Relation) Labels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)

	return out
}

// At returns the cell (a,b).
func (r *Relation) At(a, b string) (uint8, error) {
	i, err := r.lookup("At", a)
	if err != nil {
		return 0, err
	}
	j, err := r.lookup("At", b)
	if err != nil {
		return 0, err
	}

	return r.mat.At(i, j)
}

// Has reports whether (a,b) is marked. Unknown labels report false.
func (r *Relation) Has(a, b string) bool {
	v, err := r.At(a, b)

	return err == nil && v == 1
}

// Row returns a copy of a's row in universe order.
func (r *Relation) Row(a string) ([]uint8, error) {
	i, err := r.lookup("Row", a)
	if err != nil {
		return nil, err
	}

	return r.mat.row(i), nil
}

// Cells returns a deep copy of the grid, rows and columns in universe order.
func (r *Relation) Cells() [][]uint8 {
	out := make([][]uint8, r.mat.Rows())
	for i := range out {
		out[i] = r.mat.row(i)
	}

	return out
}

// Pairs lists the marked pairs from the upper triangle (diagonal included
// when loops are allowed), row-major in universe order.
func (r *Relation) Pairs() []pairs.Pair {
	n := r.Size()
	out := make([]pairs.Pair, 0, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if r.mat.data[i*n+j] == 1 {
				out = append(out, pairs.Pair{A: r.labels[i], B: r.labels[j]})
			}
		}
	}

	return out
}

// Count returns the number of marked unordered pairs.
func (r *Relation) Count() int { return len(r.Pairs()) }

// Degree returns how many identifiers a is marked against.
func (r *Relation) Degree(a string) (int, error) {
	row, err := r.Row(a)
	if err != nil {
		return 0, err
	}
	d := 0
	for _, v := range row {
		d += int(v)
	}

	return d, nil
}

// Clone returns an independent deep copy.
func (r *Relation) Clone() *Relation {
	idx := make(map[string]int, len(r.index))
	for k, v := range r.index {
		idx[k] = v
	}

	return &Relation{mat: r.mat.Clone(), index: idx, labels: r.Labels(), opts: r.opts}
}

// Equal reports whether o has the same labels in the same order and the
// same cells.
func (r *Relation) Equal(o *Relation) bool {
	if r == nil || o == nil {
		return r == o
	}
	if len(r.labels) != len(o.labels) {
		return false
	}
	for i := range r.labels {
		if r.labels[i] != o.labels[i] {
			return false
		}
	}
	for i := range r.mat.data {
		if r.mat.data[i] != o.mat.data[i] {
			return false
		}
	}

	return true
}

// String renders the raw grid (see Dense.String).
func (r *Relation) String() string { return r.mat.String() }
