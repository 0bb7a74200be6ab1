package helper

import (
	"crypto/rand"
	"math/big"
)

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomToken returns a random alphanumeric string of length n, drawn from
// crypto/rand. Used for attendance QR tokens; collision resistance matters,
// cryptographic structure does not.
func RandomToken(n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic(err)
		}
		out[i] = tokenAlphabet[idx.Int64()]
	}
	return string(out)
}
