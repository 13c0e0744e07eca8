package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinsListsAllSourcesWithoutComparing(t *testing.T) {
	// Deliberately drifted pins: pins never compares, only reports.
	fix := newFixture("0241e79f7", "deadbee12", otherCommit+"\n", otherCommit)
	result, err := fix.service.Pins(t.Context(), PinsRequest{})
	require.NoError(t, err)
	require.Len(t, result.Pins, 4)
	assert.Equal(t, "cargo:hcnet-xdr", result.Pins[0].Source)
	assert.Equal(t, "commit:"+xdrCommit, result.Pins[0].Value)
	assert.Equal(t, "version:0.0.0-20240101120000-abcdefabcdef", result.Pins[1].Value)
	assert.Equal(t, "0241e79f7", result.Pins[2].Value)
	assert.Equal(t, "deadbee12", result.Pins[3].Value)
}
