package sandbox_test

import (
	"strings"
	"testing"

	"github.com/codeready-toolchain/builder/pkg/sandbox"
	"github.com/stretchr/testify/assert"
)

func TestValidatePath_RejectsEscapes(t *testing.T) {
	assert.ErrorIs(t, sandbox.ValidatePath("../../etc/passwd"), sandbox.ErrInvalidPath)
	assert.ErrorIs(t, sandbox.ValidatePath("/etc/passwd"), sandbox.ErrInvalidPath)
	assert.NoError(t, sandbox.ValidatePath("src/main.go"))
}

func TestValidateCommand_RejectsMetacharacters(t *testing.T) {
	assert.ErrorIs(t, sandbox.ValidateCommand("ls; rm -rf /"), sandbox.ErrInvalidCommand)
	assert.ErrorIs(t, sandbox.ValidateCommand("echo $(whoami)"), sandbox.ErrInvalidCommand)
	assert.NoError(t, sandbox.ValidateCommand("npm test"))
}

func TestValidateCommand_RejectsOversized(t *testing.T) {
	huge := strings.Repeat("a", 9000)
	assert.ErrorIs(t, sandbox.ValidateCommand(huge), sandbox.ErrInvalidCommand)
}
