// SPDX-License-Identifier: MIT

// Command emptytab prints the empty-intersection seed reports as markdown
// adjacency tables.
package main

import (
	"context"
	"os"

	"github.com/husonlab/emptytab/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:]))
}
