// SPDX-License-Identifier: MIT

// Package pairs parses "empty intersection" reports into identifier pairs.
//
// Each non-terminal line of a report has the shape
//
//	<A> vs <B> is empty
//
// and yields Pair{A, B}. Extraction is positional (first and third
// whitespace token); identifiers are not checked against any universe here,
// that is the matrix builder's job.
//
// Complexity:
//
//	Parse runs in O(len(text)) time and allocates one Pair per line.
package pairs
