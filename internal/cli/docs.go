package cli

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed docs/rules.md
var rulesDoc string

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Show the rule kind, operator and ruleset format documentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
			if err != nil {
				// Fall back to plain markdown
				fmt.Fprint(cmd.OutOrStdout(), rulesDoc)
				return nil
			}

			rendered, err := renderer.Render(rulesDoc)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), rulesDoc)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
