package cli

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/verdictlab/verdict/pkg/predicates"
	"github.com/verdictlab/verdict/pkg/rules"
	"github.com/verdictlab/verdict/pkg/ruleset"
)

func newListCmd(rulesetPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List ruleset rules, predicates and operator kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := ruleset.Load(*rulesetPath)
			if err != nil {
				return err
			}

			tableData := pterm.TableData{{"Rule", "Clauses"}}
			for _, name := range set.Names() {
				r, err := set.Rule(name)
				if err != nil {
					return err
				}
				tableData = append(tableData, []string{
					name, fmt.Sprintf("%d", rules.NumberOfClauses(r)),
				})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, table)
			fmt.Fprintln(out, mutedStyle.Render("predicates: ")+strings.Join(predicates.Names(), ", "))
			fmt.Fprintln(out, mutedStyle.Render("operators:  ")+strings.Join(rules.OperatorNames(), ", "))
			return nil
		},
	}
}
