// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/husonlab/emptytab/dataset"
	"github.com/husonlab/emptytab/render"
	"github.com/husonlab/emptytab/report"
)

// EnvPrefix is prepended to every key for environment lookups,
// e.g. EMPTYTAB_FORMAT, EMPTYTAB_ALLOW_LOOPS.
const EnvPrefix = "EMPTYTAB"

// Config keys; identical to the flag names.
const (
	keyConfig     = "config"
	keyDataset    = "dataset"
	keyFormat     = "format"
	keyBlock      = "block"
	keyHeadings   = "headings"
	keyStrict     = "strict"
	keyAllowLoops = "allow-loops"
	keyStyle      = "style"
	keyLogLevel   = "log-level"
)

const defaultLogLevel = "warn"

// Settings is the resolved configuration of one invocation.
type Settings struct {
	Dataset    string
	Format     string
	Blocks     []string
	Headings   bool
	Strict     bool
	AllowLoops bool
	Style      string
	LogLevel   string
}

// registerFlags declares the persistent flags shared by every command.
func registerFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "config file (yaml)")
	fs.String(keyDataset, "", "dataset file (.yaml, .yml, .toml); built-in seed reports when empty")
	fs.String(keyFormat, render.FormatMarkdown, "output format ("+strings.Join(render.Formats(), ", ")+")")
	fs.StringSlice(keyBlock, nil, "only these blocks (repeatable, dataset order is kept)")
	fs.Bool(keyHeadings, false, "print a \"## <block>\" heading before each table")
	fs.Bool(keyStrict, false, "require every line to read exactly \"<A> vs <B> is empty\"")
	fs.Bool(keyAllowLoops, false, "accept self pairs on the diagonal")
	fs.String(keyStyle, render.DefaultStyle, "glamour style for the pretty format")
	fs.String(keyLogLevel, defaultLogLevel, "log level (debug, info, warn, error)")
}

// newViper binds fs to a fresh viper with environment lookup.
// Precedence: flag > env > config file > default.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	return v, nil
}

// loadSettings reads the optional config file and resolves Settings.
func loadSettings(v *viper.Viper) (Settings, error) {
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return Settings{
		Dataset:    v.GetString(keyDataset),
		Format:     v.GetString(keyFormat),
		Blocks:     v.GetStringSlice(keyBlock),
		Headings:   v.GetBool(keyHeadings),
		Strict:     v.GetBool(keyStrict),
		AllowLoops: v.GetBool(keyAllowLoops),
		Style:      v.GetString(keyStyle),
		LogLevel:   v.GetString(keyLogLevel),
	}, nil
}

// loadDataset returns the configured dataset, or the built-in one.
func (s Settings) loadDataset() (*dataset.Dataset, error) {
	if s.Dataset == "" {
		return dataset.Default(), nil
	}

	return dataset.Load(s.Dataset)
}

// reportConfig maps Settings onto the driver configuration.
func (s Settings) reportConfig() report.Config {
	return report.Config{
		Format:     s.Format,
		Blocks:     s.Blocks,
		Strict:     s.Strict,
		AllowLoops: s.AllowLoops,
		Render: render.Options{
			Headings: s.Headings,
			Style:    s.Style,
		},
	}
}
