//go:build mage

// Package main provides build targets for contactdesk using Mage.
//
// Usage:
//
//	mage build          Compile the contactdesk binary to bin/
//	mage test:all       Run every package's tests
//	mage test:race      Run every package's tests with the race detector
//	mage test:postgres  Run the PostgreSQL adapter tests against $CONTACTDESK_TEST_POSTGRES_DSN
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install contactdesk to GOPATH/bin
//	mage demo           Build, then seed and list a scratch contact list
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "contactdesk"
	binaryDir  = "bin"
	cmdDir     = "./cmd/contactdesk"

	envPostgresDSN = "CONTACTDESK_TEST_POSTGRES_DSN"
)

// Build compiles the contactdesk binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test groups test targets.
type Test mg.Namespace

// All runs every package's tests.
func (Test) All() error {
	return sh.RunV(binGo, "test", "./...")
}

// Race runs every package's tests with the race detector.
func (Test) Race() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Postgres runs the PostgreSQL adapter tests. They skip unless
// CONTACTDESK_TEST_POSTGRES_DSN names a disposable database.
func (Test) Postgres() error {
	if os.Getenv(envPostgresDSN) == "" {
		return fmt.Errorf("%s is not set", envPostgresDSN)
	}
	return sh.RunV(binGo, "test", "-v", "-count=1", "./internal/postgres/...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Demo builds the binary, seeds a scratch contact list, and prints its
// first page.
func Demo() error {
	mg.Deps(Build)
	dir, err := os.MkdirTemp("", "contactdesk-demo-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	bin := filepath.Join(binaryDir, binaryName)
	args := []string{"--config-dir", filepath.Join(dir, "config"), "--data-dir", filepath.Join(dir, "data")}
	if err := sh.RunV(bin, append(args, "seed")...); err != nil {
		return err
	}
	return sh.RunV(bin, append(args, "list")...)
}
