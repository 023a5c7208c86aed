//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var (
	binDir  = "bin"
	appName = "raajabaackiam-web"
)

var Default = Dev

// Dev runs tidy first, then hot-reload with air if available.
func Dev() error {
	mg.Deps(Tidy)

	if _, err := exec.LookPath("air"); err == nil {
		fmt.Println("Starting hot-reload with air ...")
		return sh.RunV("air")
	}

	fmt.Println("air not found. Falling back to `go run ./cmd/web`.")
	return Run()
}

// Run starts the web server without reload.
func Run() error {
	return sh.RunV("go", "run", "./cmd/web")
}

// Build compiles the server binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	out := filepath.Join(binDir, appName)
	return sh.RunV("go", "build", "-o", out, "./cmd/web")
}

// Tidy runs go mod tidy.
func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

// Test runs the test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs golangci-lint if installed.
func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println("golangci-lint not found; install it first.")
		return err
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// SyncAssets uploads product images to the configured storage driver.
func SyncAssets() error {
	return sh.RunV("go", "run", "./cmd/tools/syncassets")
}
