// cli_test.go
package main

import (
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestMain triggers the CLI as a subprocess when GO_HELPER_PROCESS is set.
func TestMain(m *testing.M) {
	if os.Getenv("GO_HELPER_PROCESS") == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// runCLI runs the CLI in helper process mode with optional extra environment vars.
func runCLI(args []string, extraEnv ...string) (string, error) {
	cmd := exec.Command(os.Args[0], args...)
	cmd.Env = append(os.Environ(), "GO_HELPER_PROCESS=1")
	cmd.Env = append(cmd.Env, extraEnv...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestCLIHelp(t *testing.T) {
	out, _ := runCLI([]string{"--help"})
	if !strings.Contains(out, "USAGE:") {
		t.Errorf("expected help output, got:\n%s", out)
	}
	if !strings.Contains(out, "--manifest") {
		t.Errorf("expected --manifest in help output, got:\n%s", out)
	}
}

func TestCLIVersionFlag(t *testing.T) {
	out, _ := runCLI([]string{"--version"})
	if !strings.Contains(out, Version) {
		t.Errorf("expected CLI version in output, got:\n%s", out)
	}
}

func TestCLIMissingVersionArg(t *testing.T) {
	out, err := runCLI([]string{})
	if err == nil {
		t.Fatalf("expected non-zero exit, output:\n%s", out)
	}
	if !strings.Contains(out, "Error: <version-bump> positional argument is required") {
		t.Errorf("expected missing positional argument error, got:\n%s", out)
	}
}

func TestCLITooManyArgs(t *testing.T) {
	out, err := runCLI([]string{"patch", "minor"})
	if err == nil {
		t.Fatalf("expected non-zero exit, output:\n%s", out)
	}
	if !strings.Contains(out, "positional argument is required") {
		t.Errorf("expected positional argument error, got:\n%s", out)
	}
}
