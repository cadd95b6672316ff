package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	testCases := []struct {
		Name     string
		Args     []string
		Expected string
	}{
		{
			Name:     "Default values",
			Args:     []string{"demo"},
			Expected: "-13 11 11 13 20 21 89 221\n221\n89\n",
		},
		{
			Name:     "Given values",
			Args:     []string{"demo", "--", "0.5", "-2", "7"},
			Expected: "-2 0.5 7\n7\n0.5\n",
		},
		{
			Name:     "Single value",
			Args:     []string{"demo", "3"},
			Expected: "3\n3\nempty\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			out, err := run(t, tc.Args...)
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, out)
		})
	}
}

func TestDrain(t *testing.T) {
	out, err := run(t, "drain")
	require.NoError(t, err)
	assert.Equal(t, "221 89 21 20 13 11 11 -13\n", out)

	out, err = run(t, "drain", "--ascending", "--", "3", "-1", "2")
	require.NoError(t, err)
	assert.Equal(t, "-1 2 3\n", out)
}

func TestInvalidNumber(t *testing.T) {
	_, err := run(t, "demo", "1", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestBench(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bench:\n  sizes: [64, 128]\n  benchtime: 5x\n"), 0o644))

	out, err := run(t, "bench", "--config", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	row := strings.Fields(lines[1])
	assert.Equal(t, "64", row[0])
	// an AVL tree of 64 nodes is 7 or 8 levels high.
	assert.Contains(t, []string{"7", "8"}, row[1])
	assert.Equal(t, "128", strings.Fields(lines[2])[0])

	path = filepath.Join(t.TempDir(), "badtime.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bench:\n  benchtime: soon\n"), 0o644))
	_, err = run(t, "bench", "-c", path)
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), *config)

	config, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), *config)

	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bench:\n  seed: 42\n  ascending: true\n"), 0o644))
	config, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), config.Bench.Seed)
	assert.True(t, config.Bench.Ascending)
	assert.Equal(t, defaultConfig().Bench.Sizes, config.Bench.Sizes)

	for name, content := range map[string]string{
		"malformed.yaml": "bench: [",
		"empty.yaml":     "bench:\n  sizes: []\n",
		"negative.yaml":  "bench:\n  sizes: [10, -1]\n",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err, name)
	}
}
