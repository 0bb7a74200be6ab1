package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRPayloadRoundTrip(t *testing.T) {
	in := QRPayload{
		EventID: uuid.New(),
		Token:   "a1B2c3D4e5F6g7H8i9J0k1L2m3N4o5P6",
	}

	raw, err := in.Encode()
	require.NoError(t, err)
	assert.Contains(t, raw, in.Token)

	out, err := DecodeQRPayload(raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeQRPayloadRejectsGarbage(t *testing.T) {
	_, err := DecodeQRPayload("not json at all")
	assert.Error(t, err)

	_, err = DecodeQRPayload(`{"event_id":"not-a-uuid","token":"x"}`)
	assert.Error(t, err)
}
