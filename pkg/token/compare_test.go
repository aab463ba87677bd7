package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/tokenlib/pkg/token"
)

func TestStringsDiffer(t *testing.T) {
	t.Parallel()

	assert.True(t, token.StringsDiffer("", "a"))
	assert.True(t, token.StringsDiffer("b", "a"))
	assert.True(t, token.StringsDiffer("cc", "a"))
	assert.True(t, token.StringsDiffer("cc", "aa"))
	assert.True(t, token.StringsDiffer("abc", "abd"))
	assert.False(t, token.StringsDiffer("", ""))
	assert.False(t, token.StringsDiffer("D", "D"))
	assert.False(t, token.StringsDiffer("EEE", "EEE"))
}

func TestBytesDiffer(t *testing.T) {
	t.Parallel()

	assert.False(t, token.BytesDiffer(nil, nil))
	assert.False(t, token.BytesDiffer(nil, []byte{}))
	assert.True(t, token.BytesDiffer(nil, []byte{0}))
	assert.True(t, token.BytesDiffer([]byte{0, 0}, []byte{0}))
	assert.True(t, token.BytesDiffer([]byte{1, 2, 3}, []byte{1, 2, 4}))
	assert.True(t, token.BytesDiffer([]byte{0x80, 2, 3}, []byte{0, 2, 3}))
	assert.False(t, token.BytesDiffer([]byte{0xff, 0, 7}, []byte{0xff, 0, 7}))
}
