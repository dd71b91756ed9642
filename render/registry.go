// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/husonlab/emptytab/matrix"
)

// Built-in format names.
const (
	FormatMarkdown = "markdown"
	FormatPretty   = "pretty"
	FormatJSON     = "json"
)

// DefaultStyle is the glamour style used by the pretty format.
const DefaultStyle = "auto"

// DefaultWordWrap is the pretty format's wrap width; wide enough for six
// accession-numbered columns.
const DefaultWordWrap = 160

// Table is one named relation to write.
type Table struct {
	Name     string
	Relation *matrix.Relation
}

// Options tune the writers. The zero value is usable.
type Options struct {
	Headings bool   // prefix each table with "## <name>"
	Style    string // glamour style for FormatPretty; "" means DefaultStyle
	WordWrap int    // glamour wrap width; <= 0 means DefaultWordWrap
}

// WriterFunc writes one table in a given format.
type WriterFunc func(w io.Writer, t Table, opts Options) error

var (
	mu      sync.RWMutex
	writers = map[string]WriterFunc{}
)

func init() {
	Register(FormatMarkdown, writeMarkdown)
	Register(FormatPretty, writePretty)
	Register(FormatJSON, writeJSON)
}

// Register installs fn under format (last registration wins).
func Register(format string, fn WriterFunc) {
	mu.Lock()
	defer mu.Unlock()
	writers[format] = fn
}

// Formats lists registered format names, sorted.
func Formats() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(writers))
	for name := range writers {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Write dispatches t to the writer registered for format.
func Write(format string, w io.Writer, t Table, opts Options) error {
	mu.RLock()
	fn, ok := writers[format]
	mu.RUnlock()
	if !ok {
		return fmt.Errorf("format %q: %w", format, ErrUnknownFormat)
	}
	if t.Relation == nil {
		return fmt.Errorf("table %q: %w", t.Name, ErrNilRelation)
	}

	return fn(w, t, opts)
}
