package cli

import (
	"context"
	"os"
	"testing"
)

// runRoot executes the CLI with the given argv, restoring os.Args afterward.
func runRoot(t *testing.T, args ...string) error {
	t.Helper()
	old := os.Args
	defer func() { os.Args = old }()
	os.Args = append([]string{"ribbon"}, args...)
	return Execute(context.Background())
}

func TestExecuteVersion(t *testing.T) {
	if err := runRoot(t, "--version"); err != nil {
		t.Errorf("--version: %v", err)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	if err := runRoot(t, "bogus"); err == nil {
		t.Error("unknown subcommand should fail")
	}
}
