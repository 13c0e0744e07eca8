package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	debversion "github.com/knqyf263/go-deb-version"
)

// ExtractField applies one positional pattern to line-oriented text and
// returns the first capture group of the first matching line. The files
// this runs against (compose descriptors, CI workflows) are never parsed
// structurally; swapping this for a real format parser only touches this
// function and the pattern builders below.
func ExtractField(text string, pattern *regexp.Regexp) (string, error) {
	for _, line := range strings.Split(text, "\n") {
		if captured := pattern.FindStringSubmatch(line); captured != nil {
			return captured[1], nil
		}
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("no match: pattern %q matched no line", pattern.String()))
}

// ImageCommitPattern matches a compose image line for the named image
// and captures the commit segment of its tag, which has the form
// <version>-<build>.<commit>.<series>, e.g.
//
//	image: docker.io/hcnet/hcnet-core:21.0.0-1812.0241e79f7.focal
func ImageCommitPattern(image string) *regexp.Regexp {
	return regexp.MustCompile(
		`image:\s*\S*` + regexp.QuoteMeta(image) + `:\S+\.([0-9a-f]{6,40})\.[0-9A-Za-z~+-]+\s*$`,
	)
}

// ImageVersionPattern matches the same compose image line and captures
// the whole tag, for version-ordering hints when the pins drift.
func ImageVersionPattern(image string) *regexp.Regexp {
	return regexp.MustCompile(
		`image:\s*\S*` + regexp.QuoteMeta(image) + `:([0-9]\S*)\s*$`,
	)
}

// WorkflowVersionPattern matches the workflow line assigning the server
// package version to the given key and captures the full version field.
func WorkflowVersionPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(
		regexp.QuoteMeta(key) + `\s*[:=]\s*["']?([0-9][^\s"']*)`,
	)
}

// DebianVersionCommit validates a server package version as a Debian
// version and slices out its embedded commit: the last dot-separated
// segment of the revision part that is entirely hex.
func DebianVersionCommit(version string) (string, error) {
	trimmed := strings.TrimSpace(version)
	if _, err := debversion.NewVersion(trimmed); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("no match: %q is not a valid package version", trimmed)).
			WithCause(err)
	}
	segments := strings.Split(trimmed, ".")
	for i := len(segments) - 1; i >= 0; i-- {
		segment := segments[i]
		if len(segment) >= 6 && isHex(segment) {
			return segment, nil
		}
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("no match: package version %q embeds no commit segment", trimmed))
}
