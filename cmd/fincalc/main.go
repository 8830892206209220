// SPDX-License-Identifier: MIT
// fincalc assesses the affordability and risk of a purchase with the
// built-in fuzzy rule base.
//
// Usage:
//
//	fincalc --income 8000 --price 15000 --savings 2000 --credit 680
//	fincalc                      # prompts for every value
//	fincalc --edge-cases --explain
//	fincalc --model ./my-model.yaml --log-level warn
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
