package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/shantanu-hashcash/soroban-tools/internal/types"
)

// revAnnotationPattern matches the source-control pin annotation a cargo
// dependency line carries for git dependencies, e.g.
//
//	hcnet-xdr v23.0.0 (https://host/org/repo?rev=<40 hex>#<short>)
var revAnnotationPattern = regexp.MustCompile(`rev=([0-9a-fA-F]{40})`)

// ExtractPin resolves one ecosystem's pin for packageName from raw
// dependency-tree text. Exactly one line may mention the package: zero
// lines means the dependency is absent (abnormal, the surrounding build
// must halt), two or more means the ecosystem resolved multiple versions
// of a dependency that must be singular.
func ExtractPin(ecosystem types.Ecosystem, treeText string, packageName string) (types.DependencyReference, error) {
	matches := matchingLines(treeText, packageName)
	if len(matches) == 0 {
		return types.DependencyReference{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("dependency not found: no %s dependency line mentions %q", ecosystem, packageName))
	}
	if len(matches) > 1 {
		return types.DependencyReference{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf(
				"multiple resolved versions of %q in %s dependency tree; deduplicate the dependency before checking:\n%s",
				packageName, ecosystem, strings.Join(matches, "\n"),
			))
	}
	pin, err := pinFromLine(matches[0], packageName)
	if err != nil {
		return types.DependencyReference{}, err
	}
	return types.DependencyReference{
		Ecosystem: ecosystem,
		Package:   packageName,
		Pin:       pin,
	}, nil
}

// ExtractTranscriptPin resolves packageName's pin from a full dependency
// transcript, where a crate legitimately appears on several lines.
// First match wins; the transcript is generated tooling output, so
// repeated lines carry the same pin.
func ExtractTranscriptPin(transcript string, packageName string) (types.RevisionPin, error) {
	matches := matchingLines(transcript, packageName)
	if len(matches) == 0 {
		return types.RevisionPin{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("dependency not found: transcript has no line mentioning %q", packageName))
	}
	return pinFromLine(matches[0], packageName)
}

// pinFromLine turns one dependency line into a RevisionPin. A rev=
// annotation with a full 40-hex hash wins; otherwise the token following
// the package name, stripped of a leading "v", is taken as an opaque
// package version.
func pinFromLine(line string, packageName string) (types.RevisionPin, error) {
	if captured := revAnnotationPattern.FindStringSubmatch(line); captured != nil {
		hash := strings.ToLower(captured[1])
		if types.IsCommitHash(hash) {
			return types.NewCommitPin(hash), nil
		}
	}
	versionPattern := regexp.MustCompile(regexp.QuoteMeta(packageName) + `\s+v?([^\s]+)`)
	captured := versionPattern.FindStringSubmatch(line)
	if captured == nil || captured[1] == "" {
		return types.RevisionPin{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("no match: cannot extract a pin for %q from line %q", packageName, strings.TrimSpace(line)))
	}
	return types.NewVersionPin(captured[1]), nil
}

// matchingLines filters text to non-empty lines containing needle.
func matchingLines(text string, needle string) []string {
	var matches []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.Contains(line, needle) {
			matches = append(matches, line)
		}
	}
	return matches
}

// ModuleRevision maps a Go module version to the revision usable in a
// raw-content URL. Pseudo-versions ("v0.0.0-<timestamp>-<12 hex>") yield
// their trailing commit prefix; tagged versions yield the git tag, which
// carries the "v" prefix that pin extraction strips.
func ModuleRevision(version string) string {
	trimmed := strings.TrimSpace(version)
	parts := strings.Split(trimmed, "-")
	if len(parts) >= 3 {
		suffix := parts[len(parts)-1]
		if len(suffix) == 12 && isHex(suffix) {
			return suffix
		}
	}
	if trimmed == "" || strings.HasPrefix(trimmed, "v") {
		return trimmed
	}
	return "v" + trimmed
}

func isHex(value string) bool {
	for _, r := range value {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return value != ""
}
