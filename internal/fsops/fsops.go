// Package fsops exposes thin interfaces over os and filepath helpers so the
// rest of the project can be tested without touching the real filesystem.
package fsops

import (
	"io/fs"
	"os"
	"path/filepath"
)

// PathOps abstracts common filepath operations to allow mocking in tests.
type PathOps interface {
	Abs(path string) (string, error)
	Join(elem ...string) string
	Clean(path string) string
	Ext(name string) string
}

// OSOps abstracts filesystem metadata queries and removals.
type OSOps interface {
	Stat(name string) (fs.FileInfo, error)
	Remove(name string) error
	RemoveAll(path string) error
}

// DirWalker abstracts directory walking (e.g., filepath.WalkDir).
type DirWalker interface {
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// Ops groups together the filesystem dependencies of the cleaner.
type Ops struct {
	Path   PathOps
	OS     OSOps
	Walker DirWalker
}

// DefaultOps returns an Ops configured with the standard library implementations.
func DefaultOps() Ops {
	return Ops{
		Path:   stdPathOps{},
		OS:     stdOSOps{},
		Walker: stdDirWalker{},
	}
}

type stdPathOps struct{}

func (stdPathOps) Abs(path string) (string, error) { return filepath.Abs(path) }
func (stdPathOps) Join(elem ...string) string      { return filepath.Join(elem...) }
func (stdPathOps) Clean(path string) string        { return filepath.Clean(path) }
func (stdPathOps) Ext(name string) string          { return filepath.Ext(name) }

type stdOSOps struct{}

func (stdOSOps) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }
func (stdOSOps) Remove(name string) error              { return os.Remove(name) }
func (stdOSOps) RemoveAll(path string) error           { return os.RemoveAll(path) }

type stdDirWalker struct{}

func (stdDirWalker) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}
