// Package cleaner removes Python build and cache artifacts from the managed
// project tree. The sweep is best-effort: paths that vanish mid-walk or
// cannot be removed are logged, not fatal.
package cleaner

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/nourabuild/meetxctl/internal/fsops"
	"github.com/nourabuild/meetxctl/internal/logs"
)

// artifactDirs are directory names removed wholesale wherever they appear.
var artifactDirs = map[string]bool{
	"__pycache__":   true,
	".pytest_cache": true,
	".mypy_cache":   true,
	".ruff_cache":   true,
	"build":         true,
	"dist":          true,
}

// artifactExts are file extensions removed individually.
var artifactExts = map[string]bool{
	".pyc": true,
	".pyo": true,
}

type Cleaner struct {
	ops fsops.Ops
}

func New() *Cleaner {
	return NewWithOps(fsops.DefaultOps())
}

func NewWithOps(ops fsops.Ops) *Cleaner {
	return &Cleaner{ops: ops}
}

// Clean sweeps root and returns how many entries were removed.
func (c *Cleaner) Clean(root string) (int, error) {
	abs, err := c.ops.Path.Abs(root)
	if err != nil {
		return 0, fmt.Errorf("cleaner: resolve %q: %w", root, err)
	}

	removed := 0
	err = c.ops.Walker.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if os.IsNotExist(walkErr) {
				return nil
			}
			return walkErr
		}
		if path == abs {
			return nil
		}

		switch {
		case d.IsDir() && c.isArtifactDir(d.Name()):
			if rmErr := c.ops.OS.RemoveAll(path); rmErr != nil {
				logs.Warnf("can't remove %s: %v", path, rmErr)
			} else {
				logs.Debugf("removed %s", path)
				removed++
			}
			return fs.SkipDir
		case !d.IsDir() && artifactExts[c.ops.Path.Ext(d.Name())]:
			if rmErr := c.ops.OS.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
				logs.Warnf("can't remove %s: %v", path, rmErr)
			} else if rmErr == nil {
				logs.Debugf("removed %s", path)
				removed++
			}
		}
		return nil
	})
	if err != nil {
		return removed, fmt.Errorf("cleaner: walk %s: %w", abs, err)
	}
	return removed, nil
}

func (c *Cleaner) isArtifactDir(name string) bool {
	return artifactDirs[name] || strings.HasSuffix(name, ".egg-info")
}
