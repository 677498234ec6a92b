package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/pkg/adapters/memory"
)

func scriptedAsker(replies ...string) *tendril.Asker {
	return tendril.New(
		tendril.WithSource(memory.New(replies...)),
		tendril.WithOutput(&bytes.Buffer{}),
	)
}

func TestAskValuePhoneUsesCountry(t *testing.T) {
	ask := scriptedAsker("09123456789")

	got, err := askValue(context.Background(), ask, "phone", "Mobile", nil, "IR", nil)
	require.NoError(t, err)
	assert.Equal(t, "09123456789", got)
}

func TestAskValuePhoneDefaultsToE164(t *testing.T) {
	ask := scriptedAsker("09123456789", "+989123456789")

	// Without a country the national format is rejected; strict E.164
	// is required.
	got, err := askValue(context.Background(), ask, "phone", "Mobile", nil, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "+989123456789", got)
}

func TestAskValueUnknownKind(t *testing.T) {
	ask := scriptedAsker()

	_, err := askValue(context.Background(), ask, "nope", "Value", nil, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown kind "nope"`)
}
