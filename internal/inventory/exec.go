package inventory

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// commandTimeout bounds every detection subprocess. Detection is
// sequential, so one hung tool would otherwise stall the whole run.
const commandTimeout = 10 * time.Second

// runCommand executes a detection tool and returns its trimmed stdout.
// A non-zero exit, a missing binary, or a timeout all come back as an
// error for the chain to swallow.
func runCommand(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return strings.TrimSpace(string(out)), nil
}
