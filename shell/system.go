package shell

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SystemExec is the production ExecFunc. It splits the composed command line
// with shell-style quoting rules, runs the resulting command on the host,
// and captures its output.
func SystemExec(ctx context.Context, commandLine string) (string, string, int, error) {
	segments, err := shellquote.Split(commandLine)
	if err != nil {
		return "", "", 0, errors.Wrapf(err, "could not split %v", commandLine)
	}
	if len(segments) == 0 {
		return "", "", 0, errors.New("empty command line")
	}

	log.Debugf("Invoking: %v", commandLine)
	cmd := exec.CommandContext(ctx, segments[0], segments[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err = cmd.Run()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return stdout.String(), stderr.String(), exitErr.ExitCode(), nil
		}
		return stdout.String(), stderr.String(), 0, errors.Wrapf(err, "could not run %v", segments[0])
	}
	return stdout.String(), stderr.String(), 0, nil
}
