// SPDX-License-Identifier: MIT

package pairs

// Pair is an unordered pair of genome identifiers reported as having an
// empty intersection. A and B keep the order in which they appeared in the
// report line; use Key for order-insensitive comparison.
type Pair struct {
	A string `json:"a" yaml:"a" toml:"a"`
	B string `json:"b" yaml:"b" toml:"b"`
}

// Key returns the pair with endpoints in lexical order, so that
// Pair{"x","y"}.Key() == Pair{"y","x"}.Key().
func (p Pair) Key() Pair {
	if p.B < p.A {
		return Pair{A: p.B, B: p.A}
	}

	return p
}

// IsSelf reports whether both endpoints name the same identifier.
func (p Pair) IsSelf() bool { return p.A == p.B }

// String renders the pair in report form, "A vs B is empty".
func (p Pair) String() string {
	return p.A + " " + tokVs + " " + p.B + " " + tokIs + " " + tokEmpty
}
