package cli

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/verdictlab/verdict/internal/version"
	"github.com/verdictlab/verdict/pkg/logging"
)

// defaultRulesetPath is where eval, list and check look for a ruleset
// when --ruleset is not given.
func defaultRulesetPath() string {
	return filepath.Join(xdg.ConfigHome, "verdict", "rules.yaml")
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity   int
		rulesetPath string
	)

	rootCmd := &cobra.Command{
		Use:   "verdict",
		Short: "Evaluate composable rules against JSON values",
		Long: `verdict evaluates rule trees against input values. Rules are plain
predicates, named modules, or composites combining sub-rules under the
all/any/none operators, defined declaratively in a YAML or TOML ruleset.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&rulesetPath, "ruleset", "r", defaultRulesetPath(), "Path to the ruleset file")

	rootCmd.SetVersionTemplate(fmt.Sprintf("verdict %s (commit %s, built %s)\n",
		version.Version, version.Commit, version.Date))

	rootCmd.AddCommand(newEvalCmd(&rulesetPath))
	rootCmd.AddCommand(newListCmd(&rulesetPath))
	rootCmd.AddCommand(newCheckCmd(&rulesetPath))
	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}
