// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrUnknownFormat is returned by Write for an unregistered format name.
	ErrUnknownFormat = errors.New("render: unknown format")

	// ErrNilRelation indicates a Table without a relation.
	ErrNilRelation = errors.New("render: nil relation")

	// ErrMalformedTable is returned by ParseMarkdown for text that is not a
	// labeled 0/1 grid.
	ErrMalformedTable = errors.New("render: malformed markdown table")
)
