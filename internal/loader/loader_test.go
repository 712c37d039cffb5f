package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := "0 5 2\n\n  1 3 1  \n# late arrival\n2\t8\t4\n"

	processes, err := Parse(strings.NewReader(input), NewIDGenerator())
	require.NoError(t, err)
	require.Len(t, processes, 3)

	for i, p := range processes {
		assert.Equal(t, i+1, p.ID)
		assert.False(t, p.StartTime.Valid)
		assert.Equal(t, p.BurstTime, p.RemainingTime)
	}
	assert.Equal(t, 2, processes[2].ArrivalTime)
	assert.Equal(t, 8, processes[2].BurstTime)
	assert.Equal(t, 4, processes[2].Priority)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "too few fields", input: "0 5 2\n1 3\n", want: "line 2: expected 3 values"},
		{name: "too many fields", input: "0 5 2 9\n", want: "line 1: expected 3 values"},
		{name: "not an integer", input: "\n0 five 2\n", want: `line 2: value "five" is not an integer`},
		{name: "negative arrival", input: "-1 5 2\n", want: "line 1: arrival time must be non-negative"},
		{name: "zero burst", input: "0 0 2\n", want: "line 1: burst time must be positive"},
		{name: "negative priority", input: "0 1 -2\n", want: "line 1: priority must be non-negative"},
		{name: "empty", input: "", want: "no valid process data"},
		{name: "only blanks", input: "\n  \n# nothing\n", want: "no valid process data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), NewIDGenerator())
			require.ErrorIs(t, err, ErrMalformedInput)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processes.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 5 2\n1 3 1\n"), 0o600))

	processes, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, processes, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, ErrMissingResource)
}

func TestLoad_MalformedNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 5 x\n"), 0o600))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrMalformedInput)
	assert.Contains(t, err.Error(), "bad.txt")
}

func TestIDGenerator(t *testing.T) {
	ids := NewIDGenerator()
	assert.Equal(t, 1, ids.Next())
	assert.Equal(t, 2, ids.Next())
	assert.Equal(t, 1, NewIDGenerator().Next())
}
