package cmd

import (
	"io"
	"testing"

	"github.com/quantmind-br/appfind/internal/core"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchCmdByVersion(t *testing.T) {
	withTestFs(t,
		"/apps/App1.2/bin1.2",
		"/apps/App1.3/bin1.3",
	)
	mock := withMockLauncher(t)

	cfg := testConfig("/apps/App[{major}.{minor}]/bin{major}.{minor}")
	log := zerolog.New(io.Discard)

	cmd := NewRootCmd(cfg, &log, "test")
	cmd.SetArgs([]string{"launch", "--appver", "1.2"})
	require.NoError(t, cmd.Execute())

	require.Len(t, mock.Calls, 1)
	assert.Equal(t, []string{"/apps/App1.2/bin1.2"}, mock.Calls[0])
}

func TestLaunchCmdByTag(t *testing.T) {
	withTestFs(t,
		"/apps/App1.2/bin1.2",
		"/apps/App1.3/bin1.3",
	)
	mock := withMockLauncher(t)

	cfg := testConfig("/apps/App[{major}.{minor}]/bin{major}.{minor}")
	log := zerolog.New(io.Discard)

	cmd := NewRootCmd(cfg, &log, "test")
	cmd.SetArgs([]string{"launch", "--appver", "latest"})
	require.NoError(t, cmd.Execute())

	require.Len(t, mock.Calls, 1)
	assert.Equal(t, "/apps/App1.3/bin1.3", mock.Calls[0][0])
}

func TestLaunchCmdPassThroughArgs(t *testing.T) {
	withTestFs(t, "/apps/App1.3/bin1.3")
	mock := withMockLauncher(t)

	cfg := testConfig("/apps/App[{major}.{minor}]/bin{major}.{minor}")
	log := zerolog.New(io.Discard)

	cmd := NewRootCmd(cfg, &log, "test")
	cmd.SetArgs([]string{"launch", "--", "--scene", "shot01"})
	require.NoError(t, cmd.Execute())

	require.Len(t, mock.Calls, 1)
	assert.Equal(t, []string{"/apps/App1.3/bin1.3", "--scene", "shot01"}, mock.Calls[0])
}

func TestLaunchCmdAppHelp(t *testing.T) {
	withTestFs(t, "/apps/App1.3/bin1.3")
	mock := withMockLauncher(t)

	cfg := testConfig("/apps/App[{major}.{minor}]/bin{major}.{minor}")
	log := zerolog.New(io.Discard)

	cmd := NewRootCmd(cfg, &log, "test")
	cmd.SetArgs([]string{"launch", "--apphelp"})
	require.NoError(t, cmd.Execute())

	require.Len(t, mock.Calls, 1)
	assert.Equal(t, []string{"/apps/App1.3/bin1.3", "--help"}, mock.Calls[0])
}

func TestLaunchCmdUnknownSelector(t *testing.T) {
	withTestFs(t, "/apps/App1.3/bin1.3")
	mock := withMockLauncher(t)

	cfg := testConfig("/apps/App[{major}.{minor}]/bin{major}.{minor}")
	log := zerolog.New(io.Discard)

	cmd := NewRootCmd(cfg, &log, "test")
	cmd.SetArgs([]string{"launch", "--appver", "9.9"})
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)

	var selErr *core.SelectionError
	assert.ErrorAs(t, err, &selErr)
	assert.Empty(t, mock.Calls)
}

func TestLaunchCmdConfigErrorAborts(t *testing.T) {
	withTestFs(t, "/apps/App1.3/bin1.3")
	mock := withMockLauncher(t)

	cfg := testConfig("/apps/App{major}.{minor}/bin") // missing brackets
	log := zerolog.New(io.Discard)

	cmd := NewRootCmd(cfg, &log, "test")
	cmd.SetArgs([]string{"launch"})
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)

	var cfgErr *core.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Empty(t, mock.Calls)
}
