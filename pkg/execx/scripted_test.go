package execx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedLookPath(t *testing.T) {
	r := NewScriptedRunner()
	r.OnPath["fzf"] = "/usr/local/bin/fzf"

	path, err := r.LookPath("fzf")
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/fzf", path)

	_, err = r.LookPath("missing")
	assert.Error(t, err)
}

func TestScriptedOutput(t *testing.T) {
	r := NewScriptedRunner()
	r.OnPath["nvim"] = "/usr/bin/nvim"
	r.Outputs["/usr/bin/nvim --version"] = "NVIM v0.10.0"

	out, err := r.Output(context.Background(), "/usr/bin/nvim", "--version")
	require.NoError(t, err)
	assert.Equal(t, "NVIM v0.10.0", out)
}

func TestScriptedOutputUnknownCommandFails(t *testing.T) {
	r := NewScriptedRunner()
	_, err := r.Output(context.Background(), "ghost", "--version")
	assert.Error(t, err)
}

func TestScriptedRunByResolvedPath(t *testing.T) {
	r := NewScriptedRunner()
	r.OnPath["sudo"] = "/usr/bin/sudo"

	err := r.Run(context.Background(), nil, "/usr/bin/sudo", "true")
	require.NoError(t, err)
	assert.True(t, r.CommandRan("/usr/bin/sudo"))
}

func TestScriptedForcedFailure(t *testing.T) {
	r := NewScriptedRunner()
	r.OnPath["brew"] = "/usr/local/bin/brew"
	r.Fail["/usr/local/bin/brew install kitty"] = true

	err := r.Run(context.Background(), nil, "/usr/local/bin/brew", "install", "kitty")
	assert.Error(t, err)
}

func TestScriptedRecordsInputAndEnv(t *testing.T) {
	r := NewScriptedRunner()
	r.OnPath["fzf"] = "/bin/fzf"
	r.Outputs["/bin/fzf --filter beta"] = "beta"

	out, err := r.OutputInput(context.Background(), "alpha\nbeta\n", "/bin/fzf", "--filter", "beta")
	require.NoError(t, err)
	assert.Equal(t, "beta", out)
	require.Len(t, r.Calls, 1)
	assert.Equal(t, "alpha\nbeta\n", r.Calls[0].Input)

	_, err = r.OutputEnv(context.Background(), []string{"TMUX="}, "/bin/fzf", "--filter", "beta")
	require.NoError(t, err)
	assert.Equal(t, []string{"TMUX="}, r.Calls[1].Env)
}
