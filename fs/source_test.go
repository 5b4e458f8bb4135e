package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/mediacsv"
	"github.com/fwojciec/mediacsv/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))
}

func TestRangeSource_Inputs(t *testing.T) {
	t.Parallel()

	t.Run("default range lists 1 through 61", func(t *testing.T) {
		t.Parallel()

		paths, err := fs.NewRangeSource("").Inputs(context.Background())

		require.NoError(t, err)
		require.Len(t, paths, 61)
		assert.Equal(t, "1.html", paths[0])
		assert.Equal(t, "30.html", paths[29])
		assert.Equal(t, "61.html", paths[60])
	})

	t.Run("lists files regardless of existence", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := &fs.RangeSource{Dir: dir, Range: mediacsv.Range{From: 3, To: 4}, Pattern: "page-%02d.html"}

		paths, err := src.Inputs(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "page-03.html"),
			filepath.Join(dir, "page-04.html"),
		}, paths)
	})

	t.Run("rejects reversed range", func(t *testing.T) {
		t.Parallel()

		src := &fs.RangeSource{Range: mediacsv.Range{From: 5, To: 1}}

		_, err := src.Inputs(context.Background())

		require.Error(t, err)
		assert.Equal(t, mediacsv.EINVALID, mediacsv.ErrorCode(err))
	})

	t.Run("rejects pattern without integer verb", func(t *testing.T) {
		t.Parallel()

		src := &fs.RangeSource{Range: mediacsv.Range{From: 1, To: 2}, Pattern: "export.html"}

		_, err := src.Inputs(context.Background())

		require.Error(t, err)
		assert.Equal(t, mediacsv.EINVALID, mediacsv.ErrorCode(err))
	})
}

func TestListSource_Inputs(t *testing.T) {
	t.Parallel()

	src := &fs.ListSource{Paths: []string{"b.html", "a.html"}}

	paths, err := src.Inputs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"b.html", "a.html"}, paths)
}

func TestGlobSource_Inputs(t *testing.T) {
	t.Parallel()

	t.Run("matches nested files with double star", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		touch(t, filepath.Join(dir, "a.html"))
		touch(t, filepath.Join(dir, "nested", "deep", "b.html"))
		touch(t, filepath.Join(dir, "nested", "notes.txt"))

		paths, err := (&fs.GlobSource{Pattern: filepath.Join(dir, "**", "*.html")}).Inputs(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.html"),
			filepath.Join(dir, "nested", "deep", "b.html"),
		}, paths)
	})

	t.Run("returns nothing when no file matches", func(t *testing.T) {
		t.Parallel()

		paths, err := (&fs.GlobSource{Pattern: filepath.Join(t.TempDir(), "*.html")}).Inputs(context.Background())

		require.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("rejects malformed pattern", func(t *testing.T) {
		t.Parallel()

		_, err := (&fs.GlobSource{Pattern: "exports/[.html"}).Inputs(context.Background())

		require.Error(t, err)
		assert.Equal(t, mediacsv.EINVALID, mediacsv.ErrorCode(err))
	})
}

func TestDirSource_Inputs(t *testing.T) {
	t.Parallel()

	t.Run("lists html files in the top directory only", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		touch(t, filepath.Join(dir, "2.html"))
		touch(t, filepath.Join(dir, "1.html"))
		touch(t, filepath.Join(dir, "1.csv"))
		touch(t, filepath.Join(dir, "sub", "3.html"))

		paths, err := (&fs.DirSource{Dir: dir}).Inputs(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "1.html"),
			filepath.Join(dir, "2.html"),
		}, paths)
	})

	t.Run("descends into subdirectories when recursive", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		touch(t, filepath.Join(dir, "1.html"))
		touch(t, filepath.Join(dir, "sub", "3.html"))

		paths, err := (&fs.DirSource{Dir: dir, Recursive: true}).Inputs(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "1.html"),
			filepath.Join(dir, "sub", "3.html"),
		}, paths)
	})

	t.Run("returns not found for missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := (&fs.DirSource{Dir: filepath.Join(t.TempDir(), "missing")}).Inputs(context.Background())

		require.Error(t, err)
		assert.Equal(t, mediacsv.ENOTFOUND, mediacsv.ErrorCode(err))
	})

	t.Run("rejects a file path", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "1.html")
		touch(t, file)

		_, err := (&fs.DirSource{Dir: file}).Inputs(context.Background())

		require.Error(t, err)
		assert.Equal(t, mediacsv.EINVALID, mediacsv.ErrorCode(err))
	})
}
