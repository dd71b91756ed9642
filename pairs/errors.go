// SPDX-License-Identifier: MIT

package pairs

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is returned for a line with fewer than three
	// whitespace-separated tokens (including blank lines inside a block).
	ErrMalformedLine = errors.New("pairs: malformed line")

	// ErrUnexpectedToken is returned under WithStrictGrammar when the fixed
	// separators "vs" / "is empty" are missing or misplaced.
	ErrUnexpectedToken = errors.New("pairs: unexpected token")
)

// lineErrorf attaches a 1-based line number to a sentinel.
func lineErrorf(line int, err error, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), err)
}
