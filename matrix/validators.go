// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the relation invariants.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures the relation and its storage are present and the
// label index agrees with the storage shape.
func validateNotNil(tag string, r *Relation) error {
	if r == nil || r.mat == nil {
		return validatorErrorf(tag, ErrNilMatrix)
	}
	n := len(r.labels)
	if r.mat.Rows() != n || r.mat.Cols() != n || len(r.index) != n {
		return validatorErrorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks M[i][j] == M[j][i] for all i, j.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry (with the first
// offending labels).
// Complexity: O(n²).
func ValidateSymmetric(r *Relation) error {
	if err := validateNotNil("ValidateSymmetric", r); err != nil {
		return err
	}
	n := len(r.labels)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if r.mat.data[i*n+j] != r.mat.data[j*n+i] {
				return validatorErrorf(
					fmt.Sprintf("ValidateSymmetric: (%s,%s)", r.labels[i], r.labels[j]),
					ErrAsymmetry,
				)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks that no identifier is marked against itself.
// Complexity: O(n).
func ValidateZeroDiagonal(r *Relation) error {
	if err := validateNotNil("ValidateZeroDiagonal", r); err != nil {
		return err
	}
	n := len(r.labels)
	for i := 0; i < n; i++ {
		if r.mat.data[i*n+i] != 0 {
			return validatorErrorf(
				fmt.Sprintf("ValidateZeroDiagonal: %s", r.labels[i]),
				ErrNonZeroDiagonal,
			)
		}
	}

	return nil
}

// ValidateRelation runs the full invariant set: shape → symmetry → diagonal.
// A relation built with WithAllowLoops skips the diagonal check.
func ValidateRelation(r *Relation) error {
	if err := ValidateSymmetric(r); err != nil {
		return err
	}
	if r.opts.allowLoops {
		return nil
	}

	return ValidateZeroDiagonal(r)
}
