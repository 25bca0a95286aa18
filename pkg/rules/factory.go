package rules

import (
	"github.com/verdictlab/verdict/pkg/errors"
	"github.com/verdictlab/verdict/pkg/registry"
)

// Named operator factories, populated at init by the operators package and
// by any third-party composite kinds.
var operatorFactories = registry.New[OperatorFactory]()

// RegisterOperator registers a factory for building composites of the
// named operator kind.
func RegisterOperator(name string, factory OperatorFactory) error {
	return operatorFactories.Register(name, factory)
}

// NewOperator builds a fresh composite of a registered operator kind from
// a clause sequence. Unknown kinds fail with ErrUnknownOperator.
func NewOperator(name string, clauses ...Rule) (Aggregable, error) {
	factory, err := operatorFactories.Get(name)
	if err != nil {
		return nil, errors.Newf(errors.ErrUnknownOperator, "no operator kind named '%s'", name)
	}
	return factory(clauses...), nil
}

// OperatorNames returns the names of all registered operator kinds.
func OperatorNames() []string {
	return operatorFactories.Names()
}
