//go:build mage

// Command mage drives this module's build: Test/Vet/Generate as mage
// targets rather than a shell script or Makefile.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// Default target to run when none is specified.
var Default = Test

// Test runs the full test suite, including the tz subpackage, with the
// race detector enabled.
func Test() error {
	return run("go", "test", "-race", "./...")
}

// Vet runs go vet across every package.
func Vet() error {
	return run("go", "vet", "./...")
}

// Generate runs go generate across every package. Nothing in this module
// currently has //go:generate directives; this target exists so CI has a
// single entry point regardless.
func Generate() error {
	return run("go", "generate", "./...")
}

// CI runs the checks a pull request must pass.
func CI() error {
	mg.Deps(Vet, Test)
	return nil
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if mg.Verbose() {
		fmt.Println(cmd.String())
	}
	return cmd.Run()
}
