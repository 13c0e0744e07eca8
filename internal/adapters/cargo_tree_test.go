package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCargoAmbiguity(t *testing.T) {
	output := []byte("error: There are multiple `hcnet-xdr` packages in your project, and the specification `hcnet-xdr` is ambiguous.")
	ambiguous, raw := classifyCargoAmbiguity(output, "hcnet-xdr")
	assert.True(t, ambiguous)
	assert.Contains(t, raw, "multiple")
}

func TestClassifyCargoAmbiguityOtherError(t *testing.T) {
	ambiguous, _ := classifyCargoAmbiguity([]byte("error: package ID specification `hcnet-xdr` did not match any packages"), "hcnet-xdr")
	assert.False(t, ambiguous)
}
