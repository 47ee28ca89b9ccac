package cmdexec

import (
	"context"
	"os/exec"
)

type Executor struct{}

func New() *Executor {
	return &Executor{}
}

// Execute runs command through the shell and returns its combined output.
// The command is killed when ctx is cancelled.
func (e *Executor) Execute(ctx context.Context, command string) (string, error) {
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// ExitCode extracts the process exit code from an Execute error, or -1
// when the command never ran.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return -1
}
