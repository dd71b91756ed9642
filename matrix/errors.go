// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (optionally wrapped with %w) and
// tests check them via errors.Is. No public method panics on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Context (method, label, coordinates) is attached at the detection site with
// fmt.Errorf("ctx: %w", ErrX); callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested dense shape is invalid (n <= 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonBinary signals a cell value other than 0 or 1.
	ErrNonBinary = errors.New("matrix: cell value is not 0 or 1")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// or between the label index and the backing storage.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that M[i][j] != M[j][i] for some i, j.
	ErrAsymmetry = errors.New("matrix: relation is not symmetric")

	// ErrNonZeroDiagonal signals a marked self pair on the diagonal.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrEmptyUniverse is returned when a relation is requested over no labels.
	ErrEmptyUniverse = errors.New("matrix: empty universe")

	// ErrDuplicateLabel indicates the same identifier appears twice in a universe.
	ErrDuplicateLabel = errors.New("matrix: duplicate label")

	// ErrUnknownVertex indicates that a referenced identifier is not present
	// in the relation's label index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrSelfPair is returned by MarkSymmetric for (a, a) unless loops are allowed.
	ErrSelfPair = errors.New("matrix: self pair")

	// ErrNilMatrix indicates that a nil receiver or argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
