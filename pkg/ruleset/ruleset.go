package ruleset

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/verdictlab/verdict/pkg/errors"
	"github.com/verdictlab/verdict/pkg/logging"
	"github.com/verdictlab/verdict/pkg/rules"

	// Ensure the built-in operator kinds are registered before any
	// ruleset references them.
	_ "github.com/verdictlab/verdict/pkg/operators"
)

// Supported ruleset file formats
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Set holds named rule trees resolved from a declarative ruleset file.
type Set struct {
	rules map[string]rules.Rule
}

// Load reads a ruleset file, picking the format from the file extension
// (.yaml, .yml or .toml).
func Load(path string) (*Set, error) {
	logger := logging.GetLogger("ruleset.loader")

	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesetLoad, "could not read ruleset file %s", path)
	}

	set, err := Parse(data, format)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("format", format).
		Int("ruleCount", len(set.rules)).
		Msg("Loaded ruleset")

	return set, nil
}

// Parse decodes ruleset data in the given format and resolves every rule
// tree against the predicate registry and the registered operator kinds.
func Parse(data []byte, format string) (*Set, error) {
	var raw struct {
		Rules map[string]any `yaml:"rules" toml:"rules"`
	}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrRulesetParse, "invalid YAML ruleset")
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrRulesetParse, "invalid TOML ruleset")
		}
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported ruleset format '%s'", format)
	}

	if len(raw.Rules) == 0 {
		return nil, errors.New(errors.ErrRulesetInvalid, "ruleset defines no rules")
	}

	return resolve(raw.Rules)
}

// Rule returns the named rule tree.
func (s *Set) Rule(name string) (rules.Rule, error) {
	r, ok := s.rules[name]
	if !ok {
		return nil, errors.Newf(errors.ErrNotFound, "ruleset has no rule named '%s'", name)
	}
	return r, nil
}

// Names returns the rule names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.rules))
	for name := range s.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of rules in the set.
func (s *Set) Len() int {
	return len(s.rules)
}

// Check evaluates the named rule against the input and wraps the outcome.
func (s *Set) Check(name string, input any) (rules.Result, error) {
	r, err := s.Rule(name)
	if err != nil {
		return rules.Result{}, err
	}
	return rules.Check(r, input)
}

func formatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput,
			"cannot determine ruleset format from extension of %s", path)
	}
}
