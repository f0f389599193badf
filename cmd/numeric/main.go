// Command numeric evaluates numeric operators with coercion, produces step
// sequences and runs conformance scenarios.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/numeric/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
