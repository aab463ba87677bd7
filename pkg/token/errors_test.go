package token_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/tokenlib/pkg/hashes"
	"github.com/dmitrymomot/tokenlib/pkg/token"
)

func TestErrorCategories(t *testing.T) {
	t.Parallel()

	for _, err := range []error{
		token.ErrMalformedToken,
		token.ErrInvalidSignature,
		token.ErrExpiredToken,
		token.ErrMissingSalt,
	} {
		assert.ErrorIs(t, err, token.ErrInvalidToken, err.Error())
	}

	assert.ErrorIs(t, token.ErrMissingSalt, token.ErrMalformedToken)
	assert.NotErrorIs(t, hashes.ErrUnsupportedAlgorithm, token.ErrInvalidToken)
	assert.NotErrorIs(t, token.ErrEncodeClaims, token.ErrInvalidToken)
	assert.NotErrorIs(t, token.ErrExpiredToken, token.ErrInvalidSignature)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want token.Kind
		name string
	}{
		{nil, token.KindValid, "valid"},
		{token.ErrMalformedToken, token.KindMalformed, "malformed"},
		{token.ErrMissingSalt, token.KindMalformed, "malformed"},
		{errors.Join(token.ErrMalformedToken, errors.New("bad json")), token.KindMalformed, "malformed"},
		{token.ErrInvalidSignature, token.KindInvalidSignature, "invalid_signature"},
		{fmt.Errorf("parse: %w", token.ErrExpiredToken), token.KindExpired, "expired"},
		{token.ErrInvalidToken, token.KindOther, "other"},
		{hashes.ErrUnsupportedAlgorithm, token.KindOther, "other"},
	}
	for _, tt := range tests {
		got := token.Classify(tt.err)
		assert.Equal(t, tt.want, got, "%v", tt.err)
		assert.Equal(t, tt.name, got.String())
	}
}
