// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"io"
)

// jsonTable is the wire shape of FormatJSON. Cells are ints so they encode
// as numbers rather than base64 bytes.
type jsonTable struct {
	Name   string   `json:"name"`
	Labels []string `json:"labels"`
	Cells  [][]int  `json:"cells"`
}

func writeJSON(w io.Writer, t Table, _ Options) error {
	src := t.Relation.Cells()
	cells := make([][]int, len(src))
	for i, row := range src {
		cells[i] = make([]int, len(row))
		for j, v := range row {
			cells[i][j] = int(v)
		}
	}

	return json.NewEncoder(w).Encode(jsonTable{
		Name:   t.Name,
		Labels: t.Relation.Labels(),
		Cells:  cells,
	})
}
