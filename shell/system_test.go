package shell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemExec(t *testing.T) {
	stdout, stderr, code, err := SystemExec(context.Background(), `echo "hello world"`)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", stdout)
	assert.Empty(t, stderr)
	assert.Equal(t, 0, code)
}

func TestSystemExecBadQuoting(t *testing.T) {
	_, _, _, err := SystemExec(context.Background(), `echo "unterminated`)
	assert.Error(t, err)
}

func TestSystemExecEmptyCommandLine(t *testing.T) {
	_, _, _, err := SystemExec(context.Background(), "")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	c := &Context{Dir: "/wd"}
	assert.Equal(t, "/wd/a.txt", c.Resolve("a.txt"))
	assert.Equal(t, "/wd/d/c.txt", c.Resolve("d/c.txt"))
	assert.Equal(t, "/abs", c.Resolve("/abs"))
	assert.Equal(t, "/wd", c.Resolve("."))
}
