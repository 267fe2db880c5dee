// Package util provides shared utility functions for the CLI.
package util

import (
	"fmt"
	"strings"
)

// injectionChars are shell metacharacters that would allow command injection
// when the launch command is embedded into a terminal invocation.
const injectionChars = ";|&`$(){}<>\n\r"

// ValidateCommand checks a user-configured command string for shell
// metacharacters and unbalanced quotes. Windows paths (backslashes) and
// quoted paths with spaces are allowed.
//
// Parameters:
//   - cmd: The command string to validate.
//
// Returns:
//   - error: Description of the first problem found, or nil if the command is safe.
func ValidateCommand(cmd string) error {
	if strings.TrimSpace(cmd) == "" {
		return fmt.Errorf("command is empty")
	}

	var bad []rune
	seen := map[rune]bool{}
	for _, r := range cmd {
		if strings.ContainsRune(injectionChars, r) && !seen[r] {
			bad = append(bad, r)
			seen[r] = true
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("command contains shell metacharacters: %q", string(bad))
	}

	if strings.Count(cmd, "'")%2 != 0 {
		return fmt.Errorf("unbalanced single quotes in command")
	}
	if strings.Count(cmd, `"`)%2 != 0 {
		return fmt.Errorf("unbalanced double quotes in command")
	}

	return nil
}

// ValidateOptionalCommand is ValidateCommand for fields that may be empty,
// such as default flags or the skip-permissions flag.
func ValidateOptionalCommand(cmd string) error {
	if strings.TrimSpace(cmd) == "" {
		return nil
	}
	return ValidateCommand(cmd)
}
