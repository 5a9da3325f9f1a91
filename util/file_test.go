package util

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteToFile(t *testing.T) {
	p := path.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteToFile(p, "a", "b"))

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, "a\nb\n", string(data))
}

func TestAppendToFile(t *testing.T) {
	p := path.Join(t.TempDir(), "out.jsonl")
	require.NoError(t, AppendToFile(p, "one"))
	require.NoError(t, AppendToFile(p, "two"))

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, "one\ntwo\n", string(data))
}
