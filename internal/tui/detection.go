package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs are environment variables set by common CI systems.
var ciEnvs = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"JENKINS_HOME",
	"BUILDKITE",
	"TF_BUILD",
	"CODEBUILD_BUILD_ID",
}

// isTerminal is swapped in tests.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}

// IsInteractive reports whether prompts can be shown: both stdin and
// stdout must be terminals and no CI environment may be detected.
func IsInteractive() bool {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return false
	}
	return !InCI(os.Getenv)
}

// InCI reports whether any known CI variable is set.
func InCI(getenv func(string) string) bool {
	for _, env := range ciEnvs {
		if getenv(env) != "" {
			return true
		}
	}
	return false
}

// IsTTY checks if stdout is a terminal.
func IsTTY() bool {
	return isTerminal(os.Stdout)
}
