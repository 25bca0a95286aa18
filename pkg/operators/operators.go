package operators

import (
	"fmt"

	"github.com/verdictlab/verdict/pkg/rules"
)

// Operator is the one composite implementation behind every operator
// kind: a kind name, an ordered clause sequence, and the aggregator that
// folds clause outcomes. It satisfies rules.Aggregable.
type Operator struct {
	kind    string
	clauses []rules.Rule
	agg     rules.Aggregator
}

// Kind returns the operator kind name ("all", "any", ...).
func (o Operator) Kind() string { return o.kind }

// Clauses returns the ordered sequence of sub-rules.
func (o Operator) Clauses() []rules.Rule { return o.clauses }

// Aggregator returns the boolean fold for this operator kind.
func (o Operator) Aggregator() rules.Aggregator { return o.agg }

// WithClauses returns a fresh composite of the same kind holding exactly
// the given clauses.
func (o Operator) WithClauses(clauses []rules.Rule) rules.Aggregable {
	return Operator{kind: o.kind, clauses: clauses, agg: o.agg}
}

func (o Operator) String() string {
	return fmt.Sprintf("%s(%d clauses)", o.kind, rules.NumberOfClauses(o.clauses))
}

// Define creates a new operator kind from an aggregator, registers its
// factory under the kind name, and returns its constructor. It replaces
// per-kind boilerplate; the built-ins below and third-party kinds such as
// "exactly-one" are all defined the same way. Define panics on a
// duplicate kind name, so it is intended for package init wiring.
func Define(name string, agg rules.Aggregator) func(clauses ...rules.Rule) Operator {
	ctor := func(clauses ...rules.Rule) Operator {
		return Operator{kind: name, clauses: clauses, agg: agg}
	}

	err := rules.RegisterOperator(name, func(clauses ...rules.Rule) rules.Aggregable {
		return ctor(clauses...)
	})
	if err != nil {
		panic(fmt.Sprintf("failed to define operator %s: %v", name, err))
	}

	return ctor
}

// The three built-in operator kinds. An empty clause sequence is
// well-defined: All is vacuously true, Any vacuously false, None
// vacuously true.
var (
	// All is true iff every clause passes (stops at the first false).
	All = Define("all", rules.AllAggregator)

	// Any is true iff at least one clause passes (stops at the first true).
	Any = Define("any", rules.AnyAggregator)

	// None is true iff no clause passes (stops at the first true).
	None = Define("none", rules.NoneAggregator)
)
