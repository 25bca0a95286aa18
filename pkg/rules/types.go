package rules

// Rule is any value that can be evaluated against an input. Which values
// qualify is decided by the registered kinds; see IsRule.
type Rule = any

// Predicate is a convenience alias for the most common leaf rule: a pure
// single-argument function returning pass/fail.
type Predicate func(input any) bool

// Evaluator is the contract for module rules: a named unit that carries
// its own evaluation behavior. The input is passed through unchanged and
// the outcome is returned without coercion.
type Evaluator interface {
	Evaluate(input any) (any, error)
}

// Aggregable is the capability contract every composite rule kind must
// satisfy. Operator rules report their ordered sub-rules, the function
// used to fold evaluated sub-results, and can construct a fresh instance
// of the same kind from a clause sequence.
type Aggregable interface {
	// Clauses returns the ordered sequence of sub-rules.
	Clauses() []Rule

	// Aggregator returns the boolean fold applied to clause outcomes.
	Aggregator() Aggregator

	// WithClauses returns a new instance of the same kind holding exactly
	// the given clauses, all other state at kind-defined defaults.
	WithClauses(clauses []Rule) Aggregable
}

// Result pairs a rule with the input it was evaluated against and the
// evaluation outcome. Purely observational; never mutated.
type Result struct {
	Rule    Rule
	Input   any
	Outcome any
}

// Passed reports whether the outcome is the boolean true. Non-boolean
// outcomes from custom kinds report false.
func (r Result) Passed() bool {
	b, ok := r.Outcome.(bool)
	return ok && b
}

// OperatorFactory builds a fresh composite instance from a clause sequence.
type OperatorFactory func(clauses ...Rule) Aggregable
