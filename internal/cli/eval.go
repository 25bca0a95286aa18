package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/verdictlab/verdict/pkg/logging"
	"github.com/verdictlab/verdict/pkg/ruleset"
)

// ErrRuleFailed reports a rule that evaluated to a false outcome. The
// eval command returns it instead of exiting so callers stay testable;
// main translates it to exit code 1 rather than printing it.
var ErrRuleFailed = errors.New("rule failed")

func newEvalCmd(rulesetPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "eval RULE [FILE]",
		Short: "Evaluate a named rule against a JSON input value",
		Long: `Evaluates the named rule from the ruleset against a JSON value read
from FILE, or from stdin when FILE is omitted. JSON numbers decode as
floats.

Exits 0 when the rule passes, 1 when it fails, 2 on any error.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.eval")

			set, err := ruleset.Load(*rulesetPath)
			if err != nil {
				return err
			}

			input, err := readInput(args)
			if err != nil {
				return err
			}

			ruleName := args[0]
			res, err := set.Check(ruleName, input)
			if err != nil {
				return err
			}

			logger.Debug().
				Str("rule", ruleName).
				Bool("passed", res.Passed()).
				Msg("Evaluation complete")

			fmt.Fprintln(cmd.OutOrStdout(), renderResult(ruleName, res))

			if !res.Passed() {
				return ErrRuleFailed
			}
			return nil
		},
	}
}

// readInput decodes the JSON input value from the optional FILE argument
// or from stdin.
func readInput(args []string) (any, error) {
	var data []byte
	var err error

	if len(args) > 1 {
		data, err = os.ReadFile(args[1])
		if err != nil {
			return nil, fmt.Errorf("could not read input file: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("could not read stdin: %w", err)
		}
	}

	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("input is not valid JSON: %w", err)
	}
	return input, nil
}
