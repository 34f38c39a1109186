package external

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
)

// waitDelay bounds how long a canceled tool's children may hold its output open.
const waitDelay = 2 * time.Second

// RunTool runs an external program and returns its combined output.
// The output is logged at debug level and attached to the error on failure.
func RunTool(ctx context.Context, tag string, name string, args []string) (string, error) {
	logger.Debugf("[%s] Running: %s %s", tag, name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay
	output, err := cmd.CombinedOutput()
	outputStr := string(output)

	if outputStr != "" {
		logger.Debugf("[%s] Output:\n%s", tag, outputStr)
	}

	if err != nil {
		return outputStr, fmt.Errorf("%s failed: %w\nOutput:\n%s", name, err, outputStr)
	}
	return outputStr, nil
}
