package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stone-lang/stonec/internal/checker"
	"github.com/stone-lang/stonec/internal/lexer"
	"github.com/stone-lang/stonec/internal/parser"
)

var checkColor bool

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Lex, parse, and check Stone source code",
	Long: `Lex, parse, and run the statement and declaration checker over Stone
source code, reporting every diagnostic found.

If no file is provided, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkColor, "color", false, "colorize diagnostic output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	file := "<stdin>"
	var src string

	if len(args) > 0 {
		file = args[0]
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		src = string(data)
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		src = string(data)
	}

	l := lexer.New(src)
	prog, parseErrs := parser.Parse(l)
	if len(parseErrs) > 0 {
		for _, e := range parseErrs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", file, e.Error())
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(parseErrs))
	}

	ctx := checker.CheckProgram(src, file, prog)
	if ctx.HasErrors() {
		for _, d := range ctx.Errors {
			fmt.Fprintln(os.Stderr, d.Format(checkColor))
			fmt.Fprintln(os.Stderr)
		}
		return fmt.Errorf("checking failed with %d error(s)", len(ctx.Errors))
	}

	if v, _ := cmd.Flags().GetBool("verbose"); v {
		fmt.Printf("%s: ok (%d statement(s))\n", file, len(prog.Statements))
	}
	return nil
}
