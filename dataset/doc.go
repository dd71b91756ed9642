// SPDX-License-Identifier: MIT

// Package dataset holds the inputs of a report run: the ordered genome
// universe and the named report blocks.
//
// The built-in dataset (Default) carries the five seed blocks of the
// reference-database analysis. Other datasets are loaded from YAML or TOML
// files with the same shape:
//
//	universe: [GCA_..., GCA_...]
//	blocks:
//	  - name: seed10
//	    text: |
//	      GCA_... vs GCA_... is empty
package dataset
