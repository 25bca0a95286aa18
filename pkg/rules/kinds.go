package rules

import (
	"github.com/verdictlab/verdict/pkg/errors"
)

// Kind classifies and evaluates one variant of rule. Kinds are consulted
// in registration order; the first kind whose Matches accepts a value is
// authoritative for it.
type Kind interface {
	// Name returns the unique name of this kind
	Name() string

	// Matches reports whether the value is a rule of this kind
	Matches(v any) bool

	// Evaluate evaluates a rule of this kind against the input
	Evaluate(rule Rule, input any) (any, error)
}

const (
	OperatorKindName = "operator"
	ModuleKindName   = "module"
	FuncKindName     = "func"
)

// operatorKind handles any value implementing Aggregable, built-in
// operators and third-party composites alike.
type operatorKind struct{}

func (operatorKind) Name() string { return OperatorKindName }

func (operatorKind) Matches(v any) bool {
	_, ok := v.(Aggregable)
	return ok
}

func (operatorKind) Evaluate(rule Rule, input any) (any, error) {
	op, err := AsAggregable(rule)
	if err != nil {
		return nil, err
	}
	return evaluateClauses(op, input)
}

// moduleKind handles named units that carry their own evaluation behavior.
type moduleKind struct{}

func (moduleKind) Name() string { return ModuleKindName }

func (moduleKind) Matches(v any) bool {
	_, ok := v.(Evaluator)
	return ok
}

func (moduleKind) Evaluate(rule Rule, input any) (any, error) {
	ev, ok := rule.(Evaluator)
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidRule, "value of type %T is not a module rule", rule)
	}
	return ev.Evaluate(input)
}

// funcKind handles plain single-argument functions.
type funcKind struct{}

func (funcKind) Name() string { return FuncKindName }

func (funcKind) Matches(v any) bool {
	switch v.(type) {
	case Predicate, func(any) bool, func(any) (any, error):
		return true
	default:
		return false
	}
}

func (funcKind) Evaluate(rule Rule, input any) (any, error) {
	switch fn := rule.(type) {
	case Predicate:
		return fn(input), nil
	case func(any) bool:
		return fn(input), nil
	case func(any) (any, error):
		// Outcome and failure pass through unchanged
		return fn(input)
	default:
		return nil, errors.Newf(errors.ErrInvalidRule, "value of type %T is not a func rule", rule)
	}
}

// AsAggregable returns the value's aggregation capability, or a coded
// error when the value's kind does not implement it.
func AsAggregable(v any) (Aggregable, error) {
	op, ok := v.(Aggregable)
	if !ok {
		return nil, errors.Newf(errors.ErrNotAggregable,
			"value of type %T does not implement the aggregation capability", v).
			WithDetail("value", v)
	}
	return op, nil
}
