// SPDX-License-Identifier: MIT

package matrix

// SetRawForTest writes a single cell bypassing MarkSymmetric, so tests can
// build relations that violate the invariants.
func SetRawForTest(r *Relation, a, b string, v uint8) {
	r.mat.data[r.index[a]*len(r.labels)+r.index[b]] = v
}
