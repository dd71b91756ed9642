// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported file extensions.
const (
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
	ExtTOML = ".toml"
)

// Load reads a dataset file, choosing the decoder by extension.
// The result is not validated; call Validate.
func Load(path string) (*Dataset, error) {
	var decode func([]byte) (*Dataset, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ExtYAML, ExtYML:
		decode = decodeYAML
	case ExtTOML:
		decode = decodeTOML
	default:
		return nil, fmt.Errorf("load dataset %s: %q: %w", path, ext, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	ds, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}

	return ds, nil
}

func decodeYAML(data []byte) (*Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, err
	}

	return &ds, nil
}

func decodeTOML(data []byte) (*Dataset, error) {
	var ds Dataset
	md, err := toml.Decode(string(data), &ds)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys %v", undecoded)
	}

	return &ds, nil
}
