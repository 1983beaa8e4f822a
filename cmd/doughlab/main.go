// Doughlab is a dough calculator and baking advisor.
//
// Usage:
//
//	doughlab calc --style new-york --balls 3 --weight 280
//	doughlab advise --recipe pizza.yaml --oven home-electric
//	doughlab tui
package main

import (
	"os"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
