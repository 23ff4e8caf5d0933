// Command make-resistance synthesizes a resistor network approximating a
// target resistance from a preferred-number catalogue.
//
// Usage:
//
//	make-resistance [flags] <target>
//
// target accepts a metric-prefixed value such as "4.7k" or "2.2Meg".
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
