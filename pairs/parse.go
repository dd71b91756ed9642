// SPDX-License-Identifier: MIT

package pairs

import (
	"bufio"
	"io"
	"strings"
)

// Fixed report tokens.
const (
	tokVs    = "vs"
	tokIs    = "is"
	tokEmpty = "empty"
)

// minTokens is the number of tokens needed to extract a pair positionally.
const minTokens = 3

// strictTokens is the exact token count of a well-formed "A vs B is empty" line.
const strictTokens = 5

// Option configures Parse / ParseReader.
type Option func(*options)

type options struct {
	strict bool
}

// WithStrictGrammar additionally requires every line to be exactly
// "<A> vs <B> is empty". Without it only the first and third tokens matter.
func WithStrictGrammar() Option {
	return func(o *options) { o.strict = true }
}

// Parse converts a report block into pairs, one per line, in line order.
//
// A single newline terminating the last line is not treated as an extra
// (empty) line. Any other line with fewer than three tokens, including a
// blank one, fails with ErrMalformedLine. An empty block yields an empty,
// non-nil slice.
func Parse(text string, opts ...Option) ([]Pair, error) {
	return ParseReader(strings.NewReader(text), opts...)
}

// ParseReader is Parse over a stream.
func ParseReader(r io.Reader, opts ...Option) ([]Pair, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	out := make([]Pair, 0)
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		p, err := parseLine(ln, sc.Text(), o.strict)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// parseLine extracts tokens 1 and 3 of a single line.
func parseLine(ln int, line string, strict bool) (Pair, error) {
	f := strings.Fields(line)
	if len(f) < minTokens {
		return Pair{}, lineErrorf(ln, ErrMalformedLine, "want at least %d tokens, got %d", minTokens, len(f))
	}
	if strict {
		if len(f) != strictTokens {
			return Pair{}, lineErrorf(ln, ErrUnexpectedToken, "want %d tokens, got %d", strictTokens, len(f))
		}
		if f[1] != tokVs {
			return Pair{}, lineErrorf(ln, ErrUnexpectedToken, "want %q, got %q", tokVs, f[1])
		}
		if f[3] != tokIs || f[4] != tokEmpty {
			return Pair{}, lineErrorf(ln, ErrUnexpectedToken, "want %q, got %q", tokIs+" "+tokEmpty, f[3]+" "+f[4])
		}
	}

	return Pair{A: f[0], B: f[2]}, nil
}
