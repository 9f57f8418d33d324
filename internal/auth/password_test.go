package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialHashing(t *testing.T) {
	hash, err := HashCredential("1234")
	require.NoError(t, err)
	require.NotEqual(t, "1234", hash)

	assert.True(t, CompareCredential(hash, "1234"))
	assert.False(t, CompareCredential(hash, "12345"))
	assert.False(t, CompareCredential(hash, ""))
}
