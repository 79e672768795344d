package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := writeScenario(t, dir, "day2.yaml", `
name: day2_example
description: "Strategy guide"
day: 2
input: |
  A Y
  B X
expect:
  - part: 1
    answer: "9"
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "day2_example", s.Name)
	assert.Equal(t, 2, s.Day)
	require.Len(t, s.Expect, 1)
	assert.Equal(t, Expectation{Part: 1, Answer: "9"}, s.Expect[0])

	got, err := s.Lines()
	require.NoError(t, err)
	assert.Equal(t, []string{"A Y", "B X"}, got)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("/nonexistent/scenario.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "typo.yaml", `
name: typo
day: 1
input: "1"
expects:
  - part: 1
    answer: "1"
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_ResolvesInputFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "inputs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inputs", "d4.txt"), []byte("2-8,3-7\n"), 0644))

	path := writeScenario(t, dir, "d4.yaml", `
name: d4
day: 4
input_file: inputs/d4.txt
expect:
  - part: 1
    answer: "1"
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "inputs", "d4.txt"), s.InputFile)

	got, err := s.Lines()
	require.NoError(t, err)
	assert.Equal(t, []string{"2-8,3-7"}, got)
}

func TestParseScenario_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{
			name: "missing name",
			yaml: "day: 1\ninput: \"1\"\nexpect: [{part: 1, answer: \"1\"}]",
			msg:  "name is required",
		},
		{
			name: "day out of range",
			yaml: "name: x\nday: 26\ninput: \"1\"\nexpect: [{part: 1, answer: \"1\"}]",
			msg:  "day must be between 1 and 25",
		},
		{
			name: "no input",
			yaml: "name: x\nday: 1\nexpect: [{part: 1, answer: \"1\"}]",
			msg:  "one of input or input_file is required",
		},
		{
			name: "both inputs",
			yaml: "name: x\nday: 1\ninput: \"1\"\ninput_file: a.txt\nexpect: [{part: 1, answer: \"1\"}]",
			msg:  "mutually exclusive",
		},
		{
			name: "no expectations",
			yaml: "name: x\nday: 1\ninput: \"1\"",
			msg:  "expect list is required",
		},
		{
			name: "bad part",
			yaml: "name: x\nday: 1\ninput: \"1\"\nexpect: [{part: 3, answer: \"1\"}]",
			msg:  "part must be 1 or 2",
		},
		{
			name: "empty answer",
			yaml: "name: x\nday: 1\ninput: \"1\"\nexpect: [{part: 1}]",
			msg:  "answer is required",
		},
		{
			name: "duplicate part",
			yaml: "name: x\nday: 1\ninput: \"1\"\nexpect: [{part: 1, answer: \"1\"}, {part: 1, answer: \"2\"}]",
			msg:  "listed twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml), "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid scenario")
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadDir_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	body := "day: 2\ninput: \"A Y\"\nexpect: [{part: 1, answer: \"8\"}]\n"
	writeScenario(t, dir, "b.yaml", "name: b\n"+body)
	writeScenario(t, dir, "a.yml", "name: a\n"+body)
	writeScenario(t, dir, "notes.txt", "not a scenario")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "inputs"), 0755))

	scenarios, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "a", scenarios[0].Name)
	assert.Equal(t, "b", scenarios[1].Name)
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	body := "day: 2\ninput: \"A Y\"\nexpect: [{part: 1, answer: \"8\"}]\n"
	single := writeScenario(t, dir, "one.yaml", "name: one\n"+body)

	sub := filepath.Join(dir, "more")
	require.NoError(t, os.Mkdir(sub, 0755))
	writeScenario(t, sub, "two.yaml", "name: two\n"+body)

	got, err := Collect([]string{single, sub})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].Name)
	assert.Equal(t, "two", got[1].Name)

	_, err = Collect([]string{single, single})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate scenario name")

	_, err = Collect([]string{filepath.Join(dir, "missing.yaml")})
	require.Error(t, err)
}
