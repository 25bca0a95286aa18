package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrInvalidRule, "value is not a rule")

	assert.Equal(t, ErrInvalidRule, err.Code)
	assert.Equal(t, "[INVALID_RULE] value is not a rule", err.Error())
	assert.Nil(t, err.Wrapped)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrUnknownOperator, "no operator named %q", "exactly-two")

	assert.Equal(t, ErrUnknownOperator, err.Code)
	assert.Contains(t, err.Error(), `no operator named "exactly-two"`)
}

func TestWrap(t *testing.T) {
	t.Run("wraps an error", func(t *testing.T) {
		inner := fmt.Errorf("read failed")
		err := Wrap(inner, ErrRulesetLoad, "could not load ruleset")

		require.NotNil(t, err)
		assert.Equal(t, ErrRulesetLoad, err.Code)
		assert.ErrorIs(t, err, inner)
		assert.Contains(t, err.Error(), "read failed")
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrInternal, "should vanish"))
		assert.Nil(t, Wrapf(nil, ErrInternal, "should %s", "vanish"))
	})
}

func TestIs(t *testing.T) {
	err := New(ErrNotAggregable, "plain value")

	assert.True(t, errors.Is(err, New(ErrNotAggregable, "other message")))
	assert.False(t, errors.Is(err, New(ErrInvalidRule, "other code")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrInvalidRule, "unclassifiable value").
		WithDetail("value", "not a rule").
		WithDetail("type", "string")

	details := GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "not a rule", details["value"])
	assert.Equal(t, "string", details["type"])
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrOutcomeType, "clause produced %T, want bool", 42)

	assert.True(t, IsErrorCode(err, ErrOutcomeType))
	assert.False(t, IsErrorCode(err, ErrInvalidRule))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrOutcomeType))
	assert.False(t, IsErrorCode(nil, ErrOutcomeType))
}

func TestIsErrorCodeWrapped(t *testing.T) {
	inner := New(ErrInvalidRule, "bad clause")
	outer := fmt.Errorf("evaluating tree: %w", inner)

	assert.True(t, IsErrorCode(outer, ErrInvalidRule))
	assert.Equal(t, ErrInvalidRule, GetErrorCode(outer))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrNotFound, GetErrorCode(New(ErrNotFound, "missing")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}
