package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashRoundTrip(t *testing.T) {
	hash, err := GenerateHash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	ok, err := CompareHash(hash, "correct horse battery staple")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = CompareHash(hash, "wrong password")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	h1, err := GenerateHash("secret12")
	require.NoError(t, err)
	h2, err := GenerateHash("secret12")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
