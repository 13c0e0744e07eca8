package core

import (
	"strings"

	"github.com/shantanu-hashcash/soroban-tools/internal/types"
)

// CompareRevisions checks two independently-derived revision strings for
// exact equality after trimming surrounding whitespace. Short and long
// hash forms, or a tag versus the commit it points at, are never
// reconciled; both renderings are reported verbatim so the operator sees
// the difference.
func CompareRevisions(dimension types.MismatchDimension, left string, right string) *types.Mismatch {
	trimmedLeft := strings.TrimSpace(left)
	trimmedRight := strings.TrimSpace(right)
	if trimmedLeft == trimmedRight {
		return nil
	}
	return &types.Mismatch{
		Dimension: dimension,
		Left:      trimmedLeft,
		Right:     trimmedRight,
	}
}

// ComparePins checks two pins at the tagged-union level: same kind and
// same value, with no cross-form tolerance.
func ComparePins(dimension types.MismatchDimension, left types.RevisionPin, right types.RevisionPin) *types.Mismatch {
	if left.Equal(right) {
		return nil
	}
	return &types.Mismatch{
		Dimension: dimension,
		Left:      left.String(),
		Right:     right.String(),
	}
}
