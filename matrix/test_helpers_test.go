// SPDX-License-Identifier: MIT
// Package matrix_test contains test fixtures shared across the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/husonlab/emptytab/matrix"
	"github.com/husonlab/emptytab/pairs"
)

// abc is the three-label universe used by the small scenarios.
var abc = []string{"A", "B", "C"}

// genomes is the six-genome universe of the seed reports.
var genomes = []string{
	"GCA_022750515.1", "GCA_008974285.1", "GCA_014858625.1",
	"GCA_018394375.1", "GCA_001314365.1", "GCF_000142945.1",
}

// seed10 is the seed10 report block.
const seed10 = `GCA_001314365.1 vs GCA_018394375.1 is empty
GCA_008974285.1 vs GCA_014858625.1 is empty
GCA_008974285.1 vs GCA_022750515.1 is empty
GCA_014858625.1 vs GCA_018394375.1 is empty
GCA_018394375.1 vs GCA_022750515.1 is empty
GCA_018394375.1 vs GCF_000142945.1 is empty`

// MustRelation parses text and builds a relation, failing the test on error.
func MustRelation(t *testing.T, universe []string, text string, opts ...matrix.Option) *matrix.Relation {
	t.Helper()
	ps, err := pairs.Parse(text)
	require.NoError(t, err)
	r, err := matrix.FromPairs(universe, ps, opts...)
	require.NoError(t, err)

	return r
}

// grid flattens a relation into label→label→cell for readable assertions.
func grid(t *testing.T, r *matrix.Relation) map[string]map[string]uint8 {
	t.Helper()
	out := make(map[string]map[string]uint8, r.Size())
	for _, a := range r.Labels() {
		out[a] = make(map[string]uint8, r.Size())
		for _, b := range r.Labels() {
			v, err := r.At(a, b)
			require.NoError(t, err)
			out[a][b] = v
		}
	}

	return out
}
