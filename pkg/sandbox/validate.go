package sandbox

import (
	"fmt"
	"path"
	"strings"
)

// maxCommandLength caps the size of a single command dispatched to the
// sandbox provider.
const maxCommandLength = 8192

// shellMetacharacters that are rejected outright in a raw command string.
// The sandbox executes commands through a provider-side shell, so these
// are real injection vectors, not mere style nits.
var shellMetacharacters = []string{";", "&&", "||", "`", "$(", ">", "<", "|"}

// ValidatePath rejects path escapes (".." segments, absolute paths outside
// the working directory) before a file operation is dispatched.
func ValidatePath(p string) error {
	cleaned := path.Clean(p)
	if strings.HasPrefix(cleaned, "..") || strings.HasPrefix(cleaned, "/") {
		return fmt.Errorf("%w: %s escapes the sandbox working directory", ErrInvalidPath, p)
	}
	return nil
}

// ValidateCommand rejects shell metacharacter injection and oversized
// commands before dispatch.
func ValidateCommand(cmd string) error {
	if len(cmd) == 0 {
		return fmt.Errorf("%w: empty command", ErrInvalidCommand)
	}
	if len(cmd) > maxCommandLength {
		return fmt.Errorf("%w: command exceeds %d bytes", ErrInvalidCommand, maxCommandLength)
	}
	for _, meta := range shellMetacharacters {
		if strings.Contains(cmd, meta) {
			return fmt.Errorf("%w: command contains disallowed shell metacharacter %q", ErrInvalidCommand, meta)
		}
	}
	return nil
}
