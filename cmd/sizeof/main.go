// Command sizeof prints the compiler-reported sizes of the two reference
// records, S1 first. It takes no flags and reads nothing from the
// environment; the output is the same on every run on a given target.
package main

import (
	"fmt"
	"os"

	"github.com/wippyai/layout/demo"
)

func main() {
	if err := demo.Fprint(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
