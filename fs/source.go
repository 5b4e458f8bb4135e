package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"github.com/fwojciec/mediacsv"
)

// Ensure sources implement mediacsv.InputSource at compile time.
var (
	_ mediacsv.InputSource = (*RangeSource)(nil)
	_ mediacsv.InputSource = (*ListSource)(nil)
	_ mediacsv.InputSource = (*GlobSource)(nil)
	_ mediacsv.InputSource = (*DirSource)(nil)
)

// RangeSource lists numbered files in a closed range, whether or not they
// exist. Pattern is a fmt format with a single integer verb.
type RangeSource struct {
	Dir     string
	Range   mediacsv.Range
	Pattern string
}

// NewRangeSource creates a RangeSource over mediacsv.DefaultRange in dir.
func NewRangeSource(dir string) *RangeSource {
	return &RangeSource{
		Dir:     dir,
		Range:   mediacsv.DefaultRange,
		Pattern: mediacsv.DefaultPattern,
	}
}

// Inputs returns one path per number in the range.
func (s *RangeSource) Inputs(ctx context.Context) ([]string, error) {
	if err := s.Range.Validate(); err != nil {
		return nil, err
	}
	pattern := s.Pattern
	if pattern == "" {
		pattern = mediacsv.DefaultPattern
	}
	if err := validatePattern(pattern); err != nil {
		return nil, err
	}

	paths := make([]string, 0, s.Range.To-s.Range.From+1)
	for i := s.Range.From; i <= s.Range.To; i++ {
		paths = append(paths, filepath.Join(s.Dir, fmt.Sprintf(pattern, i)))
	}
	return paths, nil
}

func validatePattern(pattern string) error {
	a, b := fmt.Sprintf(pattern, 1), fmt.Sprintf(pattern, 2)
	if a == b || strings.Contains(a, "%!") {
		return mediacsv.Errorf(mediacsv.EINVALID, "file pattern %q must contain one integer verb such as %%d", pattern)
	}
	return nil
}

// ListSource lists an explicit set of paths in the given order.
type ListSource struct {
	Paths []string
}

// Inputs returns a copy of the configured paths.
func (s *ListSource) Inputs(ctx context.Context) ([]string, error) {
	return slices.Clone(s.Paths), nil
}

// GlobSource lists the files matching a doublestar pattern such as
// "exports/**/*.html", sorted by path.
type GlobSource struct {
	Pattern string
}

// Inputs returns the files matching the pattern.
func (s *GlobSource) Inputs(ctx context.Context) ([]string, error) {
	if !doublestar.ValidatePathPattern(s.Pattern) {
		return nil, mediacsv.Errorf(mediacsv.EINVALID, "invalid glob pattern %q", s.Pattern)
	}
	matches, err := doublestar.FilepathGlob(s.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", s.Pattern, err)
	}
	slices.Sort(matches)
	return matches, nil
}

// DirSource lists the .html files in a directory, sorted by path.
// Subdirectories are only descended into when Recursive is set.
type DirSource struct {
	Dir       string
	Recursive bool
}

// Inputs walks the directory and returns the export files found.
func (s *DirSource) Inputs(ctx context.Context) ([]string, error) {
	info, err := os.Stat(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mediacsv.Errorf(mediacsv.ENOTFOUND, "directory %s does not exist", s.Dir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, mediacsv.Errorf(mediacsv.EINVALID, "%s is not a directory", s.Dir)
	}

	var (
		mu    sync.Mutex
		paths []string
	)
	root := filepath.Clean(s.Dir)
	conf := fastwalk.Config{Follow: false}

	// walkFn is called from multiple goroutines.
	err = fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if !s.Recursive && filepath.Clean(p) != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(p), ".html") {
			return nil
		}

		mu.Lock()
		paths = append(paths, p)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(paths)
	return paths, nil
}
