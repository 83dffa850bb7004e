// Command numkit encodes IEEE 754 doubles, computes greatest common divisors
// and spells out numbers. See "numkit --help".
package main

import (
	"fmt"
	"os"

	"github.com/roach88/numkit/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
