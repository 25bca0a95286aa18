package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdictlab/verdict/pkg/ruleset"
)

func newCheckCmd(rulesetPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the ruleset file without evaluating anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := ruleset.Load(*rulesetPath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s defines %d valid rule(s)\n",
				passStyle.Render("OK"), *rulesetPath, set.Len())
			return nil
		},
	}
}
