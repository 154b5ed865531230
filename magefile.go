//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
var Default = Build

// Build builds the wymowa binary
func Build() error {
	mg.Deps(Test)
	return sh.RunV("go", "build", "-o", "wymowa", "./cmd/wymowa")
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs wymowa into $GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/wymowa")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("wymowa")
}
