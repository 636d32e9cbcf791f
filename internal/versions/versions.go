// Package versions implements the semantic-version bump categories accepted
// by the version operation.
package versions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// BumpKind is a version increment category.
type BumpKind string

const (
	BumpPatch      BumpKind = "patch"
	BumpMinor      BumpKind = "minor"
	BumpMajor      BumpKind = "major"
	BumpPremajor   BumpKind = "premajor"
	BumpPreminor   BumpKind = "preminor"
	BumpPrerelease BumpKind = "prerelease"
)

// firstPrerelease is the prerelease identifier attached by premajor,
// preminor, and by prerelease when the current version is a stable one.
const firstPrerelease = "rc.0"

// ParseBumpKind validates a user-supplied bump category.
func ParseBumpKind(s string) (BumpKind, error) {
	switch k := BumpKind(strings.ToLower(strings.TrimSpace(s))); k {
	case BumpPatch, BumpMinor, BumpMajor, BumpPremajor, BumpPreminor, BumpPrerelease:
		return k, nil
	default:
		return "", fmt.Errorf("invalid bump type %q (expected patch|minor|major|premajor|preminor|prerelease)", s)
	}
}

// Bump returns the version string that follows v under the given category.
// The result always compares strictly greater than v.
func Bump(v string, kind BumpKind) (string, error) {
	cur, err := semver.StrictNewVersion(v)
	if err != nil {
		return "", fmt.Errorf("invalid version %q: %w", v, err)
	}

	var next semver.Version
	switch kind {
	case BumpPatch:
		next = cur.IncPatch()
	case BumpMinor:
		next = cur.IncMinor()
	case BumpMajor:
		next = cur.IncMajor()
	case BumpPremajor:
		next, err = cur.IncMajor().SetPrerelease(firstPrerelease)
	case BumpPreminor:
		next, err = cur.IncMinor().SetPrerelease(firstPrerelease)
	case BumpPrerelease:
		next, err = nextPrerelease(cur)
	default:
		return "", fmt.Errorf("invalid bump type %q", kind)
	}
	if err != nil {
		return "", fmt.Errorf("bump %s of %q: %w", kind, v, err)
	}

	return next.String(), nil
}

// nextPrerelease increments the trailing numeric identifier of the current
// prerelease (rc.0 -> rc.1). A stable version starts a new patch prerelease.
func nextPrerelease(cur *semver.Version) (semver.Version, error) {
	pre := cur.Prerelease()
	if pre == "" {
		return cur.IncPatch().SetPrerelease(firstPrerelease)
	}

	parts := strings.Split(pre, ".")
	last := parts[len(parts)-1]
	if n, err := strconv.Atoi(last); err == nil {
		parts[len(parts)-1] = strconv.Itoa(n + 1)
	} else {
		parts = append(parts, "0")
	}

	return cur.SetPrerelease(strings.Join(parts, "."))
}

// compare returns -1, 0 or 1 depending on semver ordering of a and b.
func compare(a, b string) (int, error) {
	va, err := semver.StrictNewVersion(a)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", a, err)
	}
	vb, err := semver.StrictNewVersion(b)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", b, err)
	}
	return va.Compare(vb), nil
}

// IsValid reports whether v is a strict semantic version.
func IsValid(v string) bool {
	_, err := semver.StrictNewVersion(v)
	return err == nil
}
