//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the toonify binary into bin/.
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/toonify", "./cmd/toonify")
}

// Test runs the full test suite with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet and staticcheck when available.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	if _, err := sh.Exec(nil, nil, nil, "staticcheck", "./..."); err != nil {
		fmt.Println("staticcheck not available, skipping")
	}
	return nil
}

// QA runs lint and tests.
func QA() {
	mg.SerialDeps(Lint, Test)
}

// Install installs toonify into GOBIN.
func Install() error {
	return sh.RunV("go", "install", "./cmd/toonify")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}
