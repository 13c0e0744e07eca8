package types

import "strings"

// RevisionPin is a tagged union: either a 40-hex source-control commit or
// a published package version. Exactly one of Commit/Version is set,
// selected by Kind.
type RevisionPin struct {
	Kind    PinKind
	Commit  string
	Version string
}

// NewCommitPin builds a commit-form pin. Callers must only pass values
// that satisfy IsCommitHash; anything else belongs in NewVersionPin.
func NewCommitPin(hash string) RevisionPin {
	return RevisionPin{Kind: PinKindCommit, Commit: hash}
}

// NewVersionPin builds a package-version-form pin. The version is kept
// as an opaque string and never validated further.
func NewVersionPin(version string) RevisionPin {
	return RevisionPin{Kind: PinKindVersion, Version: version}
}

// Value returns the underlying commit hash or version string.
func (p RevisionPin) Value() string {
	if p.Kind == PinKindCommit {
		return p.Commit
	}
	return p.Version
}

// String renders the pin with its kind, e.g. "commit:abc..." or
// "version:21.0.1", so mismatch diagnostics show both the form and
// the value.
func (p RevisionPin) String() string {
	return string(p.Kind) + ":" + p.Value()
}

// Equal is exact tagged-union equality: same kind, same value, no
// normalization between hash forms or between tags and commits.
func (p RevisionPin) Equal(other RevisionPin) bool {
	return p.Kind == other.Kind && p.Value() == other.Value()
}

// IsCommitHash reports whether value is exactly 40 hexadecimal
// characters. Everything else extracted from dependency-tree text is
// treated as a package version.
func IsCommitHash(value string) bool {
	if len(value) != 40 {
		return false
	}
	for _, r := range strings.ToLower(value) {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

// DependencyReference is one ecosystem's resolved pin for a named
// package.
type DependencyReference struct {
	Ecosystem Ecosystem
	Package   string
	Pin       RevisionPin
}
