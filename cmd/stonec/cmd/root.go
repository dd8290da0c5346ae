package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "stonec",
	Short: "Stone compiler front-end",
	Long: `stonec is the statement and declaration checker for Stone, a
statically-typed, imperative systems language.

Given source text it lexes, parses, and checks each statement and
declaration: it resolves identifiers, assigns types to expressions,
enforces assignability between the type system's fragments (named vs
unnamed, typed vs untyped, pointers vs raw pointers, arrays vs
slices), and verifies that procedure bodies are guaranteed to
terminate with a return.`,
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

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
