package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tokenlib/pkg/token"
)

func TestEncodeBytes_URLSafe(t *testing.T) {
	t.Parallel()

	// 0xfb 0xff encodes to "+/" in the standard alphabet.
	enc := token.EncodeBytes([]byte{0xfb, 0xff, 0xfe})
	assert.Equal(t, "-__-", enc)
	assert.Equal(t, "YQ==", token.EncodeBytes([]byte("a")))
	assert.Empty(t, token.EncodeBytes(nil))
}

func TestDecodeBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"padded", "YQ==", []byte("a")},
		{"unpadded", "YQ", []byte("a")},
		{"url alphabet", "-__-", []byte{0xfb, 0xff, 0xfe}},
		{"empty", "", []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := token.DecodeBytes(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeBytes_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"+/+/",  // standard alphabet
		"YQ=",   // broken padding
		"Y",     // impossible length
		"YR==",  // non-zero trailing bits
		"a b c", // whitespace
		"****",
	} {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			_, err := token.DecodeBytes(in)
			require.ErrorIs(t, err, token.ErrMalformedToken)
			require.ErrorIs(t, err, token.ErrInvalidToken)
		})
	}
}

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	for n := range 40 {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(i*37 + n)
		}
		got, err := token.DecodeBytes(token.EncodeBytes(b))
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
}
