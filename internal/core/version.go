package core

import (
	"fmt"

	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"
)

// OrderCrateVersions compares two crate version strings and returns a
// remediation hint naming the older side, or "" when either side does
// not parse as a version. Ordering is advisory only; the equality check
// that detected the drift stays exact string comparison.
func OrderCrateVersions(left string, right string) string {
	parsedLeft, err := pep440.Parse(left)
	if err != nil {
		return ""
	}
	parsedRight, err := pep440.Parse(right)
	if err != nil {
		return ""
	}
	return orderHint(parsedLeft.Compare(parsedRight), left, right)
}

// OrderPackageVersions compares two server package version strings using
// Debian version ordering. Returns "" when either side does not parse.
func OrderPackageVersions(left string, right string) string {
	parsedLeft, err := debversion.NewVersion(left)
	if err != nil {
		return ""
	}
	parsedRight, err := debversion.NewVersion(right)
	if err != nil {
		return ""
	}
	return orderHint(parsedLeft.Compare(parsedRight), left, right)
}

func orderHint(cmp int, left string, right string) string {
	switch {
	case cmp < 0:
		return fmt.Sprintf("%s is older than %s; bump the left-hand pin", left, right)
	case cmp > 0:
		return fmt.Sprintf("%s is older than %s; bump the right-hand pin", right, left)
	default:
		return ""
	}
}
