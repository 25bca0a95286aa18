package predicates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdictlab/verdict/pkg/errors"
	"github.com/verdictlab/verdict/pkg/predicates"
	"github.com/verdictlab/verdict/pkg/rules"
)

func evaluate(t *testing.T, name string, input any) bool {
	t.Helper()

	p, err := predicates.Lookup(name)
	require.NoError(t, err)

	out, err := rules.Evaluate(p, input)
	require.NoError(t, err)

	b, ok := out.(bool)
	require.True(t, ok, "predicate %s produced %T, want bool", name, out)
	return b
}

func TestBuiltins(t *testing.T) {
	tests := []struct {
		predicate string
		input     any
		want      bool
	}{
		{"is-string", "text", true},
		{"is-string", 42, false},
		{"is-bool", true, true},
		{"is-bool", "true", false},
		{"is-int", 42, true},
		{"is-int", int64(42), true},
		{"is-int", uint8(7), true},
		{"is-int", 3.14, false},
		{"is-float", 3.14, true},
		{"is-float", float32(1), true},
		{"is-float", 42, false},
		{"is-number", 42, true},
		{"is-number", 3.14, true},
		{"is-number", "42", false},
		{"is-list", []any{1, 2}, true},
		{"is-list", [2]int{1, 2}, true},
		{"is-list", map[string]any{}, false},
		{"is-map", map[string]any{}, true},
		{"is-map", []any{}, false},
		{"is-nil", nil, true},
		{"is-nil", 0, false},
		{"not-nil", 0, true},
		{"not-nil", nil, false},
		{"non-empty", "x", true},
		{"non-empty", "", false},
		{"non-empty", []any{1}, true},
		{"non-empty", []any{}, false},
		{"non-empty", map[string]any{"k": 1}, true},
		{"non-empty", 42, false},
	}

	for _, tt := range tests {
		t.Run(tt.predicate, func(t *testing.T) {
			assert.Equal(t, tt.want, evaluate(t, tt.predicate, tt.input),
				"%s(%v)", tt.predicate, tt.input)
		})
	}
}

func TestNames(t *testing.T) {
	names := predicates.Names()
	assert.Contains(t, names, "is-string")
	assert.Contains(t, names, "is-map")
	assert.Contains(t, names, "non-empty")
}

func TestRegister(t *testing.T) {
	t.Run("valid rule", func(t *testing.T) {
		err := predicates.Register("is-even", func(v any) bool {
			n, ok := v.(int)
			return ok && n%2 == 0
		})
		require.NoError(t, err)

		assert.True(t, predicates.Has("is-even"))
		assert.True(t, evaluate(t, "is-even", 4))
		assert.False(t, evaluate(t, "is-even", 3))
	})

	t.Run("non-rule value rejected", func(t *testing.T) {
		err := predicates.Register("broken", 42)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidRule))
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		err := predicates.Register("is-string", func(v any) bool { return true })
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	})
}

func TestLookupUnknown(t *testing.T) {
	_, err := predicates.Lookup("does-not-exist")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}
