// Command akkad conjugates Akkadian G-stem verbs from a root dictionary.
package main

import (
	"fmt"
	"os"

	"github.com/ppiankov/akkad/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
