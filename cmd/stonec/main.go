// Command stonec is the Stone compiler front-end driver: it lexes,
// parses, and checks a source file and reports diagnostics.
package main

import (
	"os"

	"github.com/stone-lang/stonec/cmd/stonec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
