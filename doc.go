// Package emptytab turns "empty intersection" reports between genome pairs
// into symmetric adjacency tables and prints them as markdown.
//
// A report block is a list of lines
//
//	GCA_001314365.1 vs GCA_018394375.1 is empty
//
// produced by a FracMinHash sketch comparison run (one block per sketching
// seed). Each block becomes a 0/1 matrix over a fixed, ordered genome
// universe, with 1 marking a pair whose sketches share no hash.
//
// Under the hood, everything is organized under these packages:
//
//	pairs/         — parse report lines into identifier pairs
//	matrix/        — binary Dense storage and the labeled, symmetric Relation
//	render/        — markdown (lipgloss), pretty (glamour) and json writers
//	dataset/       — genome universe + report blocks (built-in, YAML, TOML)
//	report/        — the per-block Parser → Builder → Renderer loop
//	internal/cli/  — cobra/viper command line, zerolog diagnostics
//	cmd/emptytab/  — the binary
//
// Quick ASCII example, universe A B C and report "A vs B is empty":
//
//	|   | A | B | C |
//	|---|---|---|---|
//	| A | 0 | 1 | 0 |
//	| B | 1 | 0 | 0 |
//	| C | 0 | 0 | 0 |
//
//	go install github.com/husonlab/emptytab/cmd/emptytab@latest
package emptytab
