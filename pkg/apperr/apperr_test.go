package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(NewValidation("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NewNotFound("product")))
	assert.Equal(t, KindIntegrity, KindOf(NewIntegrity("has history")))
	assert.Equal(t, KindUnauthorized, KindOf(NewUnauthorized("bad credentials")))
	assert.Equal(t, KindForbidden, KindOf(NewForbidden("product:manage")))
	assert.Equal(t, KindInsufficientStock, KindOf(&InsufficientStockError{Current: 4, Requested: 10}))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("applying transaction: %w", &InsufficientStockError{Current: 1, Requested: 2})
	assert.Equal(t, KindInsufficientStock, KindOf(err))

	err = fmt.Errorf("loading: %w", NewNotFound("supplier"))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NewValidation("bad"), 400},
		{NewUnauthorized("nope"), 401},
		{NewForbidden("user:manage"), 403},
		{NewNotFound("user"), 404},
		{&InsufficientStockError{Current: 0, Requested: 1}, 409},
		{NewIntegrity("referenced"), 409},
		{errors.New("boom"), 500},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestInsufficientStockMessage(t *testing.T) {
	err := &InsufficientStockError{Current: 4, Requested: 100}
	assert.Equal(t, "insufficient stock: current stock 4, requested 100", err.Error())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &Error{Kind: KindInternal, Message: "query failed", Err: cause}

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "query failed: connection refused", err.Error())
}
