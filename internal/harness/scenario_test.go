package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")

	content := `
name: test_scenario
description: "Test scenario for validation"
encoding: US-ASCII
steps:
  - apply: {op: "+", left: "1", right: "2"}
    expect: {value: "3"}
  - step: {start: "1", args: ["10"], options: {by: "2"}}
    expect: {size: "5"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "test_scenario", scenario.Name)
	assert.Equal(t, "Test scenario for validation", scenario.Description)
	assert.Equal(t, "US-ASCII", scenario.Encoding)
	require.Len(t, scenario.Steps, 2)
	assert.Equal(t, KindApply, scenario.Steps[0].Kind())
	assert.Equal(t, "+", scenario.Steps[0].Apply.Op)
	require.NotNil(t, scenario.Steps[0].Expect.Value)
	assert.Equal(t, "3", *scenario.Steps[0].Expect.Value)
	assert.Equal(t, KindStep, scenario.Steps[1].Kind())
	assert.Equal(t, []string{"10"}, scenario.Steps[1].Step.Args)
	assert.Equal(t, "2", scenario.Steps[1].Step.Options["by"])
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("/nonexistent/scenario.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestParseScenario_UnknownField(t *testing.T) {
	content := `
name: typo
description: "Unknown fields are rejected"
steps:
  - apply: {op: "+", left: "1", right: "2"}
    expcet: {value: "3"}
`
	_, err := ParseScenario([]byte(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
	assert.Contains(t, err.Error(), "expcet")
}

func TestParseScenario_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "missing name",
			content: "description: d\nsteps:\n  - compare: {left: \"1\", right: \"2\"}\n",
			want:    "name is required",
		},
		{
			name:    "missing description",
			content: "name: n\nsteps:\n  - compare: {left: \"1\", right: \"2\"}\n",
			want:    "description is required",
		},
		{
			name:    "no steps",
			content: "name: n\ndescription: d\nsteps: []\n",
			want:    "steps list is required",
		},
		{
			name:    "empty step",
			content: "name: n\ndescription: d\nsteps:\n  - expect: {value: \"1\"}\n",
			want:    "steps[0]: one of apply",
		},
		{
			name: "two calls",
			content: "name: n\ndescription: d\nsteps:\n" +
				"  - compare: {left: \"1\", right: \"2\"}\n    unary: {fn: abs, value: \"1\"}\n",
			want: "only one call per step",
		},
		{
			name:    "apply without op",
			content: "name: n\ndescription: d\nsteps:\n  - apply: {left: \"1\", right: \"2\"}\n",
			want:    "steps[0].apply: op is required",
		},
		{
			name:    "missing operand",
			content: "name: n\ndescription: d\nsteps:\n  - relational: {op: \"<\", left: \"1\"}\n",
			want:    "left and right are required",
		},
		{
			name:    "unknown unary fn",
			content: "name: n\ndescription: d\nsteps:\n  - unary: {fn: sqrt, value: \"4\"}\n",
			want:    `unknown fn "sqrt"`,
		},
		{
			name:    "unknown binary fn",
			content: "name: n\ndescription: d\nsteps:\n  - binary: {fn: pow, left: \"2\", right: \"3\"}\n",
			want:    `unknown fn "pow"`,
		},
		{
			name:    "step without start",
			content: "name: n\ndescription: d\nsteps:\n  - step: {args: [\"10\"]}\n",
			want:    "step: start is required",
		},
		{
			name: "unknown ordering",
			content: "name: n\ndescription: d\nsteps:\n" +
				"  - compare: {left: \"1\", right: \"2\"}\n    expect: {ordering: smaller}\n",
			want: `unknown ordering "smaller"`,
		},
		{
			name: "size on non-step",
			content: "name: n\ndescription: d\nsteps:\n" +
				"  - compare: {left: \"1\", right: \"2\"}\n    expect: {size: \"3\"}\n",
			want: "apply to step calls only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid scenario")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFindScenarios(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b_step.yaml", "a_coerce.yml", "notes.txt", "sub/c_compare.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}

	files, err := FindScenarios(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a_coerce.yml"),
		filepath.Join(dir, "b_step.yaml"),
		filepath.Join(dir, "sub", "c_compare.yaml"),
	}, files)

	files, err = FindScenarios(dir, "*_step")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "b_step.yaml")}, files)
}

func TestFindScenarios_BadFilter(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("x"), 0644))

	_, err := FindScenarios(dir, "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter pattern")
}

func TestTestdataScenariosLoad(t *testing.T) {
	files, err := FindScenarios("testdata/scenarios", "")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, path := range files {
		scenario, err := LoadScenario(path)
		require.NoError(t, err, path)
		assert.Equal(t, scenario.Name+".yaml", filepath.Base(path))
	}
}
