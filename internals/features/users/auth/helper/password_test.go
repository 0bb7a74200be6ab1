package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hashed)

	assert.NoError(t, CheckPasswordHash(hashed, "s3cret-password"))
	assert.Error(t, CheckPasswordHash(hashed, "wrong-password"))
}

func TestCheckPasswordHashRejectsSentinel(t *testing.T) {
	// google-only accounts store a non-bcrypt sentinel instead of a hash
	assert.Error(t, CheckPasswordHash("!google-login", "!google-login"))
}
