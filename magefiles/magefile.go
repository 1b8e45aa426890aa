//go:build mage

// Package main provides build targets for the dex project using Mage.
//
// Usage:
//
//	mage build             Compile dex binary to bin/
//	mage test:all          Run all tests
//	mage test:unit         Run tests without the live catalog
//	mage test:integration  Run tests against the live catalog
//	mage lint              Run golangci-lint
//	mage clean             Remove build artifacts
//	mage install           Install dex to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "dex"
	binaryDir  = "bin"
	cmdDir     = "./cmd/dex"
	binGo      = "go"
)

// Build compiles the dex binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test groups test targets (all, unit, integration).
type Test mg.Namespace

// All runs every test; live catalog tests skip unless INTEGRATION_TEST=1.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Unit runs tests in short mode.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-short", "./...")
}

// Integration runs the live catalog tests.
func (Test) Integration() error {
	mg.Deps(Build)
	env := map[string]string{"INTEGRATION_TEST": "1"}
	return sh.RunWithV(env, binGo, "test", "-v", "-run", "TestLive", "./internal/infrastructure/catalog/...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm(binaryDir)
}

// Install installs dex to GOPATH/bin.
func Install() error {
	return sh.RunV(binGo, "install", cmdDir)
}
