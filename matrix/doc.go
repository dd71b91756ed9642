// SPDX-License-Identifier: MIT

// Package matrix offers labeled binary relation matrices.
//
// The matrix package provides:
//
//   - Dense, a row-major 0/1 grid with bounds-checked At/Set.
//   - Relation, a square Dense labeled by an ordered universe of identifiers
//     on both axes, mutated only through MarkSymmetric.
//   - Validators for the relation invariants (symmetry, zero diagonal).
//
// A Relation records which identifier pairs were reported as having an
// empty intersection. It is built fresh per report block via FromPairs and
// is not mutated after rendering.
//
// Complexity:
//
//	NewRelation: O(N²) zero-init. MarkSymmetric/At: O(1).
//	Pairs/Count/Cells/validators: O(N²).
package matrix
