package rules

// Aggregator folds an ordered sequence of clause outcomes into a single
// boolean.
//
// Fold is the combining function proper: a pure function of the full
// outcome sequence. An empty sequence is well-defined and yields the
// kind's vacuous result.
//
// Done is the short-circuit test. It may be nil; when set, Done(prefix)
// reporting true means the result is already determined, i.e. Fold(prefix)
// equals Fold of any extension of prefix, so remaining clauses can be
// skipped without changing the outcome.
type Aggregator struct {
	Fold func(outcomes []bool) bool
	Done func(prefix []bool) bool
}

// Built-in aggregators. All stops at the first false clause, Any and None
// stop at the first true clause.
var (
	// AllAggregator is true iff every clause outcome is true
	// (vacuously true when empty).
	AllAggregator = Aggregator{
		Fold: func(outcomes []bool) bool { return !contains(outcomes, false) },
		Done: func(prefix []bool) bool { return contains(prefix, false) },
	}

	// AnyAggregator is true iff at least one clause outcome is true
	// (vacuously false when empty).
	AnyAggregator = Aggregator{
		Fold: func(outcomes []bool) bool { return contains(outcomes, true) },
		Done: func(prefix []bool) bool { return contains(prefix, true) },
	}

	// NoneAggregator is true iff no clause outcome is true, logical NOR
	// (vacuously true when empty).
	NoneAggregator = Aggregator{
		Fold: func(outcomes []bool) bool { return !contains(outcomes, true) },
		Done: func(prefix []bool) bool { return contains(prefix, true) },
	}
)

func contains(outcomes []bool, wanted bool) bool {
	for _, o := range outcomes {
		if o == wanted {
			return true
		}
	}
	return false
}
