package rules

import (
	"sync"

	"github.com/verdictlab/verdict/pkg/errors"
	"github.com/verdictlab/verdict/pkg/logging"
)

// The kind list is the capability registry: an ordered list of variant
// classifiers consulted first-match-wins. It is assembled at startup and
// only read during evaluation.
var (
	kindsMu sync.RWMutex
	kinds   []Kind
)

func init() {
	// Priority order: composites before modules before plain functions
	kinds = []Kind{operatorKind{}, moduleKind{}, funcKind{}}
}

// RegisterKind appends a kind to the capability registry. Registration
// order determines classification priority; kinds registered later are
// consulted after the built-in ones. Intended for startup wiring only.
func RegisterKind(k Kind) error {
	if k == nil || k.Name() == "" {
		return errors.New(errors.ErrInvalidInput, "kind must have a name")
	}

	kindsMu.Lock()
	defer kindsMu.Unlock()

	for _, existing := range kinds {
		if existing.Name() == k.Name() {
			return errors.Newf(errors.ErrAlreadyExists, "kind '%s' is already registered", k.Name())
		}
	}
	kinds = append(kinds, k)
	return nil
}

// Kinds returns the registered kinds in priority order.
func Kinds() []Kind {
	kindsMu.RLock()
	defer kindsMu.RUnlock()

	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Classify returns the first kind accepting the value, or false if no
// registered kind does.
func Classify(v any) (Kind, bool) {
	kindsMu.RLock()
	defer kindsMu.RUnlock()

	for _, k := range kinds {
		if k.Matches(v) {
			return k, true
		}
	}
	return nil, false
}

// IsRule reports whether any registered kind accepts the value.
func IsRule(v any) bool {
	_, ok := Classify(v)
	return ok
}

// Evaluate classifies the rule and delegates to the matched kind. An
// unclassifiable value fails with ErrInvalidRule carrying the offending
// value; failures from the rule itself propagate unchanged.
func Evaluate(rule Rule, input any) (any, error) {
	k, ok := Classify(rule)
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidRule, "value of type %T is not a rule", rule).
			WithDetail("value", rule)
	}

	logger := logging.GetLogger("rules.dispatch")
	logger.Trace().Str("kind", k.Name()).Msg("evaluating rule")

	return k.Evaluate(rule, input)
}

// Check evaluates the rule and wraps the outcome into a Result. Any
// evaluation failure propagates unchanged.
func Check(rule Rule, input any) (Result, error) {
	outcome, err := Evaluate(rule, input)
	if err != nil {
		return Result{}, err
	}
	return Result{Rule: rule, Input: input, Outcome: outcome}, nil
}

// evaluateClauses runs the recursive operator algorithm: evaluate each
// clause in declaration order, collect the boolean outcomes, and fold
// them through the operator's aggregator. The aggregator's Done test lets
// evaluation short-circuit, in which case remaining clauses are skipped,
// never reordered.
func evaluateClauses(op Aggregable, input any) (any, error) {
	clauses := op.Clauses()
	agg := op.Aggregator()
	outcomes := make([]bool, 0, len(clauses))

	for _, clause := range clauses {
		outcome, err := Evaluate(clause, input)
		if err != nil {
			return nil, err
		}

		b, ok := outcome.(bool)
		if !ok {
			return nil, errors.Newf(errors.ErrOutcomeType,
				"clause outcome of type %T cannot feed a boolean aggregator", outcome).
				WithDetail("clause", clause)
		}

		outcomes = append(outcomes, b)
		if agg.Done != nil && agg.Done(outcomes) {
			break
		}
	}

	return agg.Fold(outcomes), nil
}

// NumberOfClauses computes the structural size of a rule tree without
// evaluating it: a sequence sums its elements, a composite contributes the
// count of its clauses, and any other single rule counts exactly 1.
func NumberOfClauses(v any) int {
	switch r := v.(type) {
	case []Rule:
		n := 0
		for _, elem := range r {
			n += NumberOfClauses(elem)
		}
		return n
	case Aggregable:
		return NumberOfClauses(r.Clauses())
	default:
		return 1
	}
}
