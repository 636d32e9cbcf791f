// Tests in this file cover pyproject.toml parsing and version rewriting.
package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const samplePyproject = `[tool.poetry]
name = "meetx"
version = "0.1.1"
description = "Backend for user management, meetings, and social features"
authors = ["Noura Build"]

[tool.poetry.dependencies]
python = "^3.11"
fastapi = "^0.111"

# a comment with version = "9.9.9" that must be ignored
[tool.ruff]
line-length = 100
`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, MetadataFile), []byte(content), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := writeSample(t, samplePyproject)
	p, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Name != "meetx" {
		t.Fatalf("Name = %q, want %q", p.Name, "meetx")
	}
	if p.Version != "0.1.1" {
		t.Fatalf("Version = %q, want %q", p.Version, "0.1.1")
	}
	if p.Root != dir {
		t.Fatalf("Root = %q, want %q", p.Root, dir)
	}
}

func TestLoadWalksUp(t *testing.T) {
	t.Parallel()

	dir := writeSample(t, samplePyproject)
	nested := filepath.Join(dir, "app", "routes")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	p, err := Load(nested)
	if err != nil {
		t.Fatalf("Load from nested dir failed: %v", err)
	}
	if p.Root != dir {
		t.Fatalf("Root = %q, want %q", p.Root, dir)
	}
}

func TestLoadMissingMetadata(t *testing.T) {
	t.Parallel()

	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected error when pyproject.toml is absent")
	}
}

func TestWriteVersion(t *testing.T) {
	t.Parallel()

	dir := writeSample(t, samplePyproject)
	p, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := p.WriteVersion("0.2.0"); err != nil {
		t.Fatalf("WriteVersion failed: %v", err)
	}
	if p.Version != "0.2.0" {
		t.Fatalf("in-memory Version = %q, want %q", p.Version, "0.2.0")
	}

	reloaded, err := Load(dir)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Version != "0.2.0" {
		t.Fatalf("persisted Version = %q, want %q", reloaded.Version, "0.2.0")
	}

	// Everything except the version line must be untouched.
	data, err := os.ReadFile(filepath.Join(dir, MetadataFile))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	got := string(data)
	want := strings.Replace(samplePyproject, `version = "0.1.1"`, `version = "0.2.0"`, 1)
	if got != want {
		t.Fatalf("metadata rewrite not line-preserving:\n%s", got)
	}
}

func TestWriteVersionOnlyTouchesMetadataSection(t *testing.T) {
	t.Parallel()

	content := `[tool.something]
version = "5.5.5"

[tool.poetry]
name = "meetx"
version = "1.0.0"
`
	dir := writeSample(t, content)
	p, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Version != "1.0.0" {
		t.Fatalf("Version = %q, want %q", p.Version, "1.0.0")
	}

	if err := p.WriteVersion("1.1.0"); err != nil {
		t.Fatalf("WriteVersion failed: %v", err)
	}
	data, _ := os.ReadFile(filepath.Join(dir, MetadataFile))
	if !strings.Contains(string(data), `version = "5.5.5"`) {
		t.Fatal("version in unrelated section was modified")
	}
	if !strings.Contains(string(data), `version = "1.1.0"`) {
		t.Fatal("poetry version was not updated")
	}
}
