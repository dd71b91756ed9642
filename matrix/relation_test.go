// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/husonlab/emptytab/matrix"
	"github.com/husonlab/emptytab/pairs"
)

func TestNewRelation_Validation(t *testing.T) {
	t.Parallel()

	r, err := matrix.NewRelation(nil)
	require.Nil(t, r)
	require.ErrorIs(t, err, matrix.ErrEmptyUniverse)

	r, err = matrix.NewRelation([]string{"A", "B", "A"})
	require.Nil(t, r)
	require.ErrorIs(t, err, matrix.ErrDuplicateLabel)

	r, err = matrix.NewRelation(abc)
	require.NoError(t, err)
	require.Equal(t, 3, r.Size())
	require.Equal(t, abc, r.Labels())
	require.Zero(t, r.Count())
}

func TestFromPairs_SinglePair(t *testing.T) {
	t.Parallel()

	r := MustRelation(t, abc, "A vs B is empty")
	want := map[string]map[string]uint8{
		"A": {"A": 0, "B": 1, "C": 0},
		"B": {"A": 1, "B": 0, "C": 0},
		"C": {"A": 0, "B": 0, "C": 0},
	}
	require.Equal(t, want, grid(t, r))
}

func TestFromPairs_Chain(t *testing.T) {
	t.Parallel()

	r := MustRelation(t, abc, "A vs B is empty\nB vs C is empty")
	assert.True(t, r.Has("A", "B"))
	assert.True(t, r.Has("B", "A"))
	assert.True(t, r.Has("B", "C"))
	assert.True(t, r.Has("C", "B"))
	assert.False(t, r.Has("A", "C"))
	assert.False(t, r.Has("C", "A"))
	require.Equal(t, []pairs.Pair{{A: "A", B: "B"}, {A: "B", B: "C"}}, r.Pairs())

	d, err := r.Degree("B")
	require.NoError(t, err)
	require.Equal(t, 2, d)
}

func TestFromPairs_Seed10(t *testing.T) {
	t.Parallel()

	r := MustRelation(t, genomes, seed10)
	require.NoError(t, matrix.ValidateRelation(r))
	require.Equal(t, 6, r.Count())

	ps, err := pairs.Parse(seed10)
	require.NoError(t, err)
	marked := make(map[pairs.Pair]bool, len(ps))
	for _, p := range ps {
		marked[p.Key()] = true
	}

	ones, zeros := 0, 0
	for _, a := range genomes {
		for _, b := range genomes {
			if a == b {
				continue
			}
			v, err := r.At(a, b)
			require.NoError(t, err)
			if marked[pairs.Pair{A: a, B: b}.Key()] {
				require.Equal(t, uint8(1), v, "%s/%s", a, b)
				ones++
			} else {
				require.Zero(t, v, "%s/%s", a, b)
				zeros++
			}
		}
	}
	require.Equal(t, 12, ones)
	require.Equal(t, 18, zeros)
}

func TestMarkSymmetric_Idempotent(t *testing.T) {
	t.Parallel()

	once := MustRelation(t, abc, "A vs C is empty")
	twice := MustRelation(t, abc, "A vs C is empty\nC vs A is empty\nA vs C is empty")
	require.True(t, once.Equal(twice))
	require.Equal(t, 1, twice.Count())
}

func TestFromPairs_OrderIndependent(t *testing.T) {
	t.Parallel()

	ps, err := pairs.Parse(seed10)
	require.NoError(t, err)
	want, err := matrix.FromPairs(genomes, ps)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for k := 0; k < 10; k++ {
		shuffled := append([]pairs.Pair(nil), ps...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got, err := matrix.FromPairs(genomes, shuffled)
		require.NoError(t, err)
		require.True(t, want.Equal(got), "permutation %d", k)
	}
}

func TestMarkSymmetric_Errors(t *testing.T) {
	t.Parallel()

	r, err := matrix.NewRelation(abc)
	require.NoError(t, err)

	require.ErrorIs(t, r.MarkSymmetric("A", "Z"), matrix.ErrUnknownVertex)
	require.ErrorIs(t, r.MarkSymmetric("Z", "A"), matrix.ErrUnknownVertex)
	require.ErrorIs(t, r.MarkSymmetric("B", "B"), matrix.ErrSelfPair)
	require.Zero(t, r.Count(), "failed marks must not write")

	var nilRel *matrix.Relation
	require.ErrorIs(t, nilRel.MarkSymmetric("A", "B"), matrix.ErrNilMatrix)

	_, err = matrix.FromPairs(abc, []pairs.Pair{{A: "A", B: "B"}, {A: "B", B: "D"}})
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)
	require.Contains(t, err.Error(), "pair 2")
}

func TestMarkSymmetric_AllowLoops(t *testing.T) {
	t.Parallel()

	r, err := matrix.NewRelation(abc, matrix.WithAllowLoops(true))
	require.NoError(t, err)
	require.NoError(t, r.MarkSymmetric("B", "B"))
	require.True(t, r.Has("B", "B"))
	require.Equal(t, []pairs.Pair{{A: "B", B: "B"}}, r.Pairs())
	require.NoError(t, matrix.ValidateRelation(r))
	require.ErrorIs(t, matrix.ValidateZeroDiagonal(r), matrix.ErrNonZeroDiagonal)
}

func TestRelation_Queries(t *testing.T) {
	t.Parallel()

	r := MustRelation(t, abc, "C vs A is empty")

	row, err := r.Row("A")
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 0, 1}, row)

	_, err = r.Row("nope")
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)
	_, err = r.At("A", "nope")
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)
	_, err = r.Degree("nope")
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)
	require.False(t, r.Has("nope", "A"))

	require.Equal(t, [][]uint8{{0, 0, 1}, {0, 0, 0}, {1, 0, 0}}, r.Cells())
	require.Equal(t, "[0, 0, 1]\n[0, 0, 0]\n[1, 0, 0]\n", r.String())

	// returned slices are copies
	row[0] = 1
	labels := r.Labels()
	labels[0] = "X"
	require.False(t, r.Has("A", "A"))
	require.Equal(t, abc, r.Labels())
}

func TestRelation_CloneAndEqual(t *testing.T) {
	t.Parallel()

	r := MustRelation(t, abc, "A vs B is empty")
	c := r.Clone()
	require.True(t, r.Equal(c))

	require.NoError(t, c.MarkSymmetric("B", "C"))
	require.False(t, r.Equal(c))
	require.False(t, r.Has("B", "C"))

	other, err := matrix.NewRelation([]string{"A", "C", "B"})
	require.NoError(t, err)
	require.NoError(t, other.MarkSymmetric("A", "B"))
	require.False(t, r.Equal(other), "label order is part of identity")

	var nilRel *matrix.Relation
	require.False(t, r.Equal(nilRel))
	require.True(t, nilRel.Equal(nil))
}
