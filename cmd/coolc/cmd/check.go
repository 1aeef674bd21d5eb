package cmd

import (
	"fmt"
	"os"

	"github.com/coolc/coolc/internal/errors"
	"github.com/coolc/coolc/internal/lexer"
	"github.com/coolc/coolc/internal/parser"
	"github.com/coolc/coolc/internal/semantic"
	"github.com/spf13/cobra"
)

var (
	checkPretty    bool
	checkNoPrelude bool
)

var checkCmd = &cobra.Command{
	Use:   "check <file...>",
	Short: "Run the semantic analyzer over one or more .cl files",
	Long: `Lex, parse, and semantically analyze Cool source files, printing
diagnostics in the compiler's wire format:

  "<filename>", line <L>:<C>, Semantic error: <message>

coolc exits non-zero if any file produced a semantic error.

Examples:
  coolc check good.cl
  coolc check --pretty broken.cl
  coolc check --no-prelude isolated.cl`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkPretty, "pretty", false, "print caret-annotated human diagnostics instead of the wire format")
	checkCmd.Flags().BoolVar(&checkNoPrelude, "no-prelude", false, "skip installing Object/IO/Int/String/Bool (for isolated registrar testing)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	hadErrors := false
	for _, filename := range args {
		result, err := checkFile(filename, verbose)
		if err != nil {
			return err
		}
		if result.HadErrors {
			hadErrors = true
		}
	}

	if hadErrors {
		return fmt.Errorf("compilation halted due to semantic error(s)")
	}
	return nil
}

func checkFile(filename string, verbose bool) (*semantic.Result, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	if verbose {
		fmt.Fprintf(os.Stderr, "Checking %s...\n", filename)
	}

	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, perr := range p.Errors() {
			fmt.Fprintf(os.Stderr, "%q: %s\n", filename, perr)
		}
		return nil, fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	analyzer := semantic.NewAnalyzer()
	if checkNoPrelude {
		analyzer = semantic.NewAnalyzerWithoutPrelude()
	}

	result, err := analyzer.Analyze(program, source, filename)
	if err != nil {
		return nil, err
	}

	printDiagnostics(result, checkPretty)
	return result, nil
}

func printDiagnostics(result *semantic.Result, pretty bool) {
	for _, e := range result.Diags.Errors() {
		if pretty {
			fmt.Println(formatPretty(e))
		} else {
			fmt.Println(e.FormatSemantic())
		}
	}
}

func formatPretty(e *errors.CompilerError) string {
	return e.Format(true)
}
