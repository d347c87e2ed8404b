// gradectl is an answer-key QA tool: it runs the equivalence engine
// from the command line so question authors can check how a stored
// answer will grade before publishing.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
