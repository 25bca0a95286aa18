package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/verdictlab/verdict/pkg/rules"
)

var (
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func init() {
	// Plain output when not talking to a terminal
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// renderResult formats a single evaluation result as a pass/fail line.
func renderResult(ruleName string, res rules.Result) string {
	verdict := failStyle.Render("FAIL")
	if res.Passed() {
		verdict = passStyle.Render("PASS")
	}

	detail := mutedStyle.Render(fmt.Sprintf("(%d clauses, input %v)",
		rules.NumberOfClauses(res.Rule), res.Input))

	return fmt.Sprintf("%s  %s %s", verdict, ruleName, detail)
}
