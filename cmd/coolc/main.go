// Command coolc is the Cool compiler front-end CLI. It wires the lexer,
// parser, and semantic analyzer together into a file-driven tool; the
// analyzer itself (internal/semantic) is the part this repository is about.
package main

import (
	"fmt"
	"os"

	"github.com/coolc/coolc/cmd/coolc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
