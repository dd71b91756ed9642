// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// writePretty renders the markdown document through glamour for terminal
// display.
func writePretty(w io.Writer, t Table, opts Options) error {
	doc, err := markdownDocument(t, opts)
	if err != nil {
		return err
	}

	style := opts.Style
	if style == "" {
		style = DefaultStyle
	}
	wrap := opts.WordWrap
	if wrap <= 0 {
		wrap = DefaultWordWrap
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return fmt.Errorf("pretty %q: %w", t.Name, err)
	}
	out, err := tr.Render(doc)
	if err != nil {
		return fmt.Errorf("pretty %q: %w", t.Name, err)
	}
	_, err = io.WriteString(w, out)

	return err
}
