package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "coolc",
	Short: "Cool compiler front-end",
	Long: `coolc is a front-end for Cool, a small statically-typed class-based
object-oriented language with single inheritance, SELF_TYPE, and method
dispatch.

This CLI drives the lexer, parser, and semantic analyzer over a .cl source
file and reports diagnostics in the compiler's wire format. Code generation
is out of scope; "coolc check" stops at the semantic analyzer's output
contract.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
