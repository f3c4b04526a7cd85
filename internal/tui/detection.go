package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs are environment variables set by common CI providers.
var ciEnvs = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"JENKINS_HOME",
	"BUILDKITE",
	"TF_BUILD",
}

// IsInteractive reports whether a prompt can be shown: both stdin and stdout
// must be terminals and no CI environment may be detected.
func IsInteractive() bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !IsTTY() { //nolint:gosec // G115: fd is a small value
		return false
	}
	return !isCI()
}

// IsTTY checks if stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value
}

func isCI() bool {
	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}
