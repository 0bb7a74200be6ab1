package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomTokenLength(t *testing.T) {
	for _, n := range []int{1, 16, 32, 64} {
		assert.Len(t, RandomToken(n), n)
	}
}

func TestRandomTokenAlphabet(t *testing.T) {
	token := RandomToken(256)
	for _, r := range token {
		assert.True(t, strings.ContainsRune(tokenAlphabet, r),
			"unexpected character %q in token", r)
	}
}

func TestRandomTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok := RandomToken(32)
		assert.False(t, seen[tok], "duplicate token generated")
		seen[tok] = true
	}
}
