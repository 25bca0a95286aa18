package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/verdictlab/verdict/internal/cli"

	// Import packages to ensure their init() functions are called for registration
	_ "github.com/verdictlab/verdict/pkg/operators"
	_ "github.com/verdictlab/verdict/pkg/predicates"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// A false outcome is not an error, just a non-zero exit
		if errors.Is(err, cli.ErrRuleFailed) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}
