package predicates

import (
	"reflect"

	"github.com/verdictlab/verdict/pkg/errors"
	"github.com/verdictlab/verdict/pkg/registry"
	"github.com/verdictlab/verdict/pkg/rules"
)

var reg = registry.New[rules.Rule]()

// Register adds a named rule to the predicate registry. The value must be
// accepted by a registered rule kind.
func Register(name string, rule rules.Rule) error {
	if !rules.IsRule(rule) {
		return errors.Newf(errors.ErrInvalidRule, "value of type %T is not a rule", rule)
	}
	return reg.Register(name, rule)
}

// Lookup retrieves a named rule from the predicate registry.
func Lookup(name string) (rules.Rule, error) {
	return reg.Get(name)
}

// Has checks whether a predicate is registered under the name.
func Has(name string) bool {
	return reg.Has(name)
}

// Names returns all registered predicate names in sorted order.
func Names() []string {
	return reg.Names()
}

func init() {
	builtins := map[string]func(any) bool{
		"is-string": func(v any) bool { _, ok := v.(string); return ok },
		"is-bool":   func(v any) bool { _, ok := v.(bool); return ok },
		"is-int":    isInt,
		"is-float":  isFloat,
		"is-number": func(v any) bool { return isInt(v) || isFloat(v) },
		"is-list":   func(v any) bool { return kindOf(v) == reflect.Slice || kindOf(v) == reflect.Array },
		"is-map":    func(v any) bool { return kindOf(v) == reflect.Map },
		"is-nil":    func(v any) bool { return v == nil },
		"not-nil":   func(v any) bool { return v != nil },
		"non-empty": nonEmpty,
	}

	for name, p := range builtins {
		registry.MustRegister[rules.Rule](reg, name, p)
	}
}

func kindOf(v any) reflect.Kind {
	if v == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(v).Kind()
}

func isInt(v any) bool {
	switch kindOf(v) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isFloat(v any) bool {
	switch kindOf(v) {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// nonEmpty is true for strings, slices, arrays and maps with at least one
// element; everything else fails.
func nonEmpty(v any) bool {
	switch kindOf(v) {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return reflect.ValueOf(v).Len() > 0
	default:
		return false
	}
}
