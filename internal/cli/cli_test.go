// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/husonlab/emptytab/render"
)

// run executes the root command with args and returns stdout, stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{}, args...))
	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRoot_DefaultRun(t *testing.T) {
	out, _, err := run(t)
	require.NoError(t, err)

	// five tables, each with one separator row
	seps := 0
	for _, l := range strings.Split(out, "\n") {
		if l != "" && strings.Trim(l, "|-: ") == "" {
			seps++
		}
	}
	require.Equal(t, 5, seps)
	require.Contains(t, out, "GCF_000142945.1")
}

func TestRoot_BlockAndHeadings(t *testing.T) {
	out, _, err := run(t, "--block", "seed30", "--headings")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "## seed30\n\n"))
	require.NotContains(t, out, "seed10")

	labels, cells, err := render.ParseMarkdown(out)
	require.NoError(t, err)
	require.Len(t, labels, 6)
	ones := 0
	for _, row := range cells {
		for _, v := range row {
			ones += int(v)
		}
	}
	require.Equal(t, 14, ones, "seed30 has seven pairs")
}

func TestRoot_DatasetFileAndJSON(t *testing.T) {
	path := writeFile(t, "ds.toml", `universe = ["A", "B", "C"]
[[blocks]]
name = "only"
text = "A vs B is empty"
`)
	out, _, err := run(t, "--dataset", path, "--format", "json")
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"only","labels":["A","B","C"],"cells":[[0,1,0],[1,0,0],[0,0,0]]}`, out)
}

func TestRoot_EnvAndConfigFile(t *testing.T) {
	cfg := writeFile(t, "emptytab.yaml", "format: json\nblock: [seed10]\n")
	out, _, err := run(t, "--config", cfg)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(out, "\n"))
	require.Contains(t, out, `"name":"seed10"`)

	// flag beats file
	out, _, err = run(t, "--config", cfg, "--format", "markdown")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "|"))

	// env beats file
	t.Setenv("EMPTYTAB_FORMAT", "markdown")
	out, _, err = run(t, "--config", cfg)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "|"))
}

func TestRoot_Errors(t *testing.T) {
	path := writeFile(t, "bad.yaml", "universe: [A, B]\nblocks:\n  - name: x\n    text: A vs Z is empty\n")
	_, _, err := run(t, "--dataset", path)
	require.ErrorContains(t, err, "unknown vertex")

	_, _, err = run(t, "--format", "xml")
	require.ErrorContains(t, err, "unknown format")

	_, _, err = run(t, "--log-level", "loud")
	require.ErrorContains(t, err, "log level")

	_, _, err = run(t, "extra-arg")
	require.Error(t, err)

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.ErrorContains(t, err, "read config")
}

func TestValidateCmd(t *testing.T) {
	out, _, err := run(t, "validate")
	require.NoError(t, err)
	require.Equal(t, []string{
		"seed10\t6 lines\t6 pairs",
		"seed20\t6 lines\t6 pairs",
		"seed30\t7 lines\t7 pairs",
		"seed40\t7 lines\t7 pairs",
		"seed50\t9 lines\t9 pairs",
	}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestFormatsCmd(t *testing.T) {
	out, _, err := run(t, "formats")
	require.NoError(t, err)
	require.Subset(t, strings.Fields(out), []string{"json", "markdown", "pretty"})
}

func TestDebugLogging(t *testing.T) {
	_, errOut, err := run(t, "--log-level", "debug", "--block", "seed10")
	require.NoError(t, err)
	require.Contains(t, errOut, "rendered block")
	require.Contains(t, errOut, "block=seed10")
}

func TestExecute_ExitCodes(t *testing.T) {
	require.Equal(t, 0, Execute(context.Background(), []string{"formats"}))
	require.Equal(t, 1, Execute(context.Background(), []string{"validate", "--block", "nope"}))
}
