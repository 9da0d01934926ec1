// clarion - Clarity notation tooling for simnet test suites.
//
// Usage:
//
//	clarion inspect [value]        Decode a notation string and print its structure
//	clarion manifest check [path]  Validate a project manifest and print deploy order
//	clarion version                Print version info
//
// inspect reads from stdin when no value argument is given.
package main

import (
	"os"

	"github.com/stacksforge/clarion/cmd/clarion/commands"
)

func main() {
	if err := commands.Root().Execute(); err != nil {
		os.Exit(1)
	}
}
