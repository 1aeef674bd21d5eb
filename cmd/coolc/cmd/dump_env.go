package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/coolc/coolc/internal/lexer"
	"github.com/coolc/coolc/internal/parser"
	"github.com/coolc/coolc/internal/semantic"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var dumpEnvFormat string

var dumpEnvCmd = &cobra.Command{
	Use:   "dump-env <file>",
	Short: "Print the resolved object/method environments for a file",
	Long: `Run the semantic analyzer over a single .cl file and print the
resolved object environment (attribute bindings per class) and method
environment (method signatures visible per class) as structured data.

Useful for debugging the analyzer's output contract independent of code
generation.`,
	Args: cobra.ExactArgs(1),
	RunE: runDumpEnv,
}

func init() {
	rootCmd.AddCommand(dumpEnvCmd)

	dumpEnvCmd.Flags().StringVar(&dumpEnvFormat, "format", "json", "output format: json or yaml")
}

// envDump is the structured payload dump-env serializes, keyed by class
// name so both JSON and YAML renderings are stable and diffable.
type envDump struct {
	HadErrors bool                    `json:"had_errors" yaml:"had_errors"`
	Classes   map[string]classEnvDump `json:"classes" yaml:"classes"`
}

type classEnvDump struct {
	Parent     string          `json:"parent,omitempty" yaml:"parent,omitempty"`
	Attributes []bindingDump   `json:"attributes" yaml:"attributes"`
	Methods    []methodSigDump `json:"methods" yaml:"methods"`
}

type bindingDump struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

type methodSigDump struct {
	Name          string        `json:"name" yaml:"name"`
	ReturnType    string        `json:"return_type" yaml:"return_type"`
	DefiningClass string        `json:"defining_class" yaml:"defining_class"`
	Formals       []bindingDump `json:"formals" yaml:"formals"`
}

func runDumpEnv(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	analyzer := semantic.NewAnalyzer()
	result, err := analyzer.Analyze(program, source, filename)
	if err != nil {
		return err
	}

	dump := buildEnvDump(result)

	switch dumpEnvFormat {
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(dump)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(dump)
	default:
		return fmt.Errorf("unknown --format %q (want json or yaml)", dumpEnvFormat)
	}
}

func buildEnvDump(result *semantic.Result) envDump {
	dump := envDump{HadErrors: result.HadErrors, Classes: make(map[string]classEnvDump)}

	for _, ci := range result.Classes.Classes() {
		var attrs []bindingDump
		for _, b := range result.ObjectEnvs[ci.Name] {
			attrs = append(attrs, bindingDump{Name: b.Name, Type: string(b.Type)})
		}

		var methods []methodSigDump
		for name, sig := range result.Methods.ClassMethods(ci.Name) {
			var formals []bindingDump
			for _, f := range sig.Formals {
				formals = append(formals, bindingDump{Name: f.Name, Type: string(f.Type)})
			}
			methods = append(methods, methodSigDump{
				Name:          name,
				ReturnType:    string(sig.ReturnType),
				DefiningClass: string(sig.DefiningClass),
				Formals:       formals,
			})
		}
		sort.Slice(methods, func(i, j int) bool { return methods[i].Name < methods[j].Name })

		parent := ""
		if ci.Parent != nil {
			parent = string(ci.Parent.Name)
		}

		dump.Classes[string(ci.Name)] = classEnvDump{
			Parent:     parent,
			Attributes: attrs,
			Methods:    methods,
		}
	}
	return dump
}
