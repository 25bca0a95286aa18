package ruleset

import (
	"github.com/verdictlab/verdict/pkg/errors"
	"github.com/verdictlab/verdict/pkg/predicates"
	"github.com/verdictlab/verdict/pkg/rules"
)

// resolver turns raw decoded nodes into rule trees. Name references hit
// the predicate registry first and sibling rules second; rule-to-rule
// references are memoized and cycle-checked so the resulting trees are
// always finite.
type resolver struct {
	raw       map[string]any
	built     map[string]rules.Rule
	resolving map[string]bool
}

func resolve(raw map[string]any) (*Set, error) {
	r := &resolver{
		raw:       raw,
		built:     make(map[string]rules.Rule, len(raw)),
		resolving: make(map[string]bool),
	}

	for name := range raw {
		if _, err := r.rule(name); err != nil {
			return nil, err
		}
	}

	return &Set{rules: r.built}, nil
}

func (r *resolver) rule(name string) (rules.Rule, error) {
	if built, ok := r.built[name]; ok {
		return built, nil
	}
	if r.resolving[name] {
		return nil, errors.Newf(errors.ErrRulesetInvalid, "rule '%s' is part of a reference cycle", name)
	}

	r.resolving[name] = true
	defer delete(r.resolving, name)

	built, err := r.node(r.raw[name])
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesetInvalid, "in rule '%s'", name)
	}

	r.built[name] = built
	return built, nil
}

// node resolves one tree node: a string is a predicate or sibling-rule
// reference, a single-key map is an operator over a clause list.
func (r *resolver) node(n any) (rules.Rule, error) {
	switch v := n.(type) {
	case string:
		return r.reference(v)

	case map[string]any:
		if len(v) != 1 {
			return nil, errors.Newf(errors.ErrRulesetInvalid,
				"operator node must have exactly one key, got %d", len(v))
		}
		var op string
		var rawClauses any
		for k, c := range v {
			op, rawClauses = k, c
		}
		return r.operator(op, rawClauses)

	default:
		return nil, errors.Newf(errors.ErrRulesetInvalid,
			"unexpected node of type %T, want name or operator map", n)
	}
}

func (r *resolver) reference(name string) (rules.Rule, error) {
	if predicates.Has(name) {
		return predicates.Lookup(name)
	}
	if _, ok := r.raw[name]; ok {
		return r.rule(name)
	}
	return nil, errors.Newf(errors.ErrRulesetInvalid,
		"'%s' names neither a predicate nor a rule in this set", name)
}

func (r *resolver) operator(op string, rawClauses any) (rules.Rule, error) {
	list, ok := rawClauses.([]any)
	if !ok {
		return nil, errors.Newf(errors.ErrRulesetInvalid,
			"operator '%s' wants a clause list, got %T", op, rawClauses)
	}

	clauses := make([]rules.Rule, 0, len(list))
	for _, rawClause := range list {
		clause, err := r.node(rawClause)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}

	composite, err := rules.NewOperator(op, clauses...)
	if err != nil {
		return nil, err
	}
	return composite, nil
}
