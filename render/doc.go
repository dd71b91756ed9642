// SPDX-License-Identifier: MIT

// Package render serializes relation matrices for output.
//
// Formats are kept in a registry (format name → WriterFunc); the built-in
// ones are:
//
//	markdown  header row, separator row, one row per identifier (default)
//	pretty    the markdown table styled for a terminal via glamour
//	json      one {"name","labels","cells"} object per line
//
// Markdown output can be read back with ParseMarkdown.
package render
