// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrUnsupportedFormat is returned by Load for unknown file extensions.
	ErrUnsupportedFormat = errors.New("dataset: unsupported file format")

	// ErrEmptyUniverse indicates a dataset without identifiers.
	ErrEmptyUniverse = errors.New("dataset: empty universe")

	// ErrDuplicateLabel indicates the same identifier listed twice.
	ErrDuplicateLabel = errors.New("dataset: duplicate identifier")

	// ErrUnnamedBlock indicates a block with an empty name.
	ErrUnnamedBlock = errors.New("dataset: unnamed block")

	// ErrDuplicateBlock indicates two blocks sharing a name.
	ErrDuplicateBlock = errors.New("dataset: duplicate block name")

	// ErrUnknownBlock is returned by Select for a name not in the dataset.
	ErrUnknownBlock = errors.New("dataset: unknown block")
)
