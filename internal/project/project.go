// Package project reads and updates the managed project's metadata file
// (pyproject.toml). Only the name and version keys are touched; the rewrite
// is line-preserving so the rest of the file never gets reformatted.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const MetadataFile = "pyproject.toml"

var (
	sectionRe = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)
	nameRe    = regexp.MustCompile(`^(\s*name\s*=\s*")([^"]*)(".*)$`)
	versionRe = regexp.MustCompile(`^(\s*version\s*=\s*")([^"]*)(".*)$`)
)

// metadataSections are the pyproject tables that may carry name/version:
// Poetry's own table and the PEP 621 project table.
var metadataSections = map[string]bool{
	"tool.poetry": true,
	"project":     true,
}

type Project struct {
	// Root is the directory containing pyproject.toml.
	Root    string
	Name    string
	Version string
}

// Load locates pyproject.toml starting at dir and walking up, then parses
// the project name and version out of it.
func Load(dir string) (*Project, error) {
	root, err := findRoot(dir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(root, MetadataFile))
	if err != nil {
		return nil, fmt.Errorf("project: read metadata: %w", err)
	}

	p := &Project{Root: root}
	section := ""
	for _, line := range strings.Split(string(data), "\n") {
		if m := sectionRe.FindStringSubmatch(line); m != nil {
			section = m[1]
			continue
		}
		if !metadataSections[section] {
			continue
		}
		if m := nameRe.FindStringSubmatch(line); m != nil && p.Name == "" {
			p.Name = m[2]
		}
		if m := versionRe.FindStringSubmatch(line); m != nil && p.Version == "" {
			p.Version = m[2]
		}
	}

	if p.Version == "" {
		return nil, fmt.Errorf("project: no version found in %s", filepath.Join(root, MetadataFile))
	}
	if p.Name == "" {
		p.Name = filepath.Base(root)
	}
	return p, nil
}

// WriteVersion replaces the version value in pyproject.toml, leaving every
// other line byte-identical, and updates p.Version on success.
func (p *Project) WriteVersion(version string) error {
	path := filepath.Join(p.Root, MetadataFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("project: read metadata: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	section := ""
	replaced := false
	for i, line := range lines {
		if m := sectionRe.FindStringSubmatch(line); m != nil {
			section = m[1]
			continue
		}
		if !metadataSections[section] || replaced {
			continue
		}
		if m := versionRe.FindStringSubmatch(line); m != nil {
			lines[i] = m[1] + version + m[3]
			replaced = true
		}
	}
	if !replaced {
		return fmt.Errorf("project: no version line found in %s", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("project: stat metadata: %w", err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), info.Mode().Perm()); err != nil {
		return fmt.Errorf("project: write metadata: %w", err)
	}

	p.Version = version
	return nil
}

// findRoot walks up from dir until it finds a directory containing
// pyproject.toml.
func findRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("project: resolve %q: %w", dir, err)
	}

	for cur := abs; ; {
		if _, err := os.Stat(filepath.Join(cur, MetadataFile)); err == nil {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", fmt.Errorf("project: no %s found in %s or any parent", MetadataFile, abs)
		}
		cur = parent
	}
}
