package puzzlefile_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlesolver/internal/puzzlefile"
)

func TestScanner_SkipsBlankLines(t *testing.T) {
	s := puzzlefile.NewScanner(strings.NewReader("3 4\n\n   \nG . R\n"))

	fields, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, []string{"3", "4"}, fields)
	require.Equal(t, 1, s.Line())

	fields, err = s.Next()
	require.NoError(t, err)
	require.Equal(t, []string{"G", ".", "R"}, fields)
	require.Equal(t, 4, s.Line())

	_, err = s.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestScanner_RequireAndErrors(t *testing.T) {
	s := puzzlefile.NewScanner(strings.NewReader("x\n"))
	_, err := s.Require("header")
	require.NoError(t, err)

	_, err = s.Require("goal line")
	require.ErrorIs(t, err, puzzlefile.ErrMalformed)
	require.Contains(t, err.Error(), "line 2")
	require.Contains(t, err.Error(), "goal line")

	err = s.Errorf("bad token %q", "zz")
	require.ErrorIs(t, err, puzzlefile.ErrMalformed)
	require.Contains(t, err.Error(), `line 1: bad token "zz"`)

	inner := errors.New("inner")
	err = s.Wrap(inner)
	require.ErrorIs(t, err, puzzlefile.ErrMalformed)
	require.ErrorIs(t, err, inner)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world\n"), 0o644))

	count := func(r io.Reader) (int, error) {
		fields, err := puzzlefile.NewScanner(r).Next()
		return len(fields), err
	}
	n, err := puzzlefile.Load(path, count)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = puzzlefile.Load(filepath.Join(dir, "missing.txt"), count)
	require.ErrorIs(t, err, os.ErrNotExist)

	failing := func(io.Reader) (int, error) { return 0, puzzlefile.ErrMalformed }
	_, err = puzzlefile.Load(path, failing)
	require.ErrorIs(t, err, puzzlefile.ErrMalformed)
	require.Contains(t, err.Error(), "p.txt")
}
