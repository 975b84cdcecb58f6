package launcher

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/quantmind-br/appfind/internal/core"
	"github.com/quantmind-br/appfind/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatches() []*core.Match {
	return []*core.Match{
		{Path: "/apps/App1.3/bin", Version: "1.3", Tags: []string{"default", "latest"}},
		{Path: "/apps/App1.3beta1/bin", Version: "1.3beta1", Tags: []string{"beta"}},
		{Path: "/apps/App1.2/bin", Version: "1.2"},
	}
}

func TestSelectByTag(t *testing.T) {
	t.Parallel()

	matches := testMatches()

	m, err := Select(matches, "latest")
	require.NoError(t, err)
	assert.Equal(t, "1.3", m.Version)

	m, err = Select(matches, "beta")
	require.NoError(t, err)
	assert.Equal(t, "1.3beta1", m.Version)
}

func TestSelectByVersion(t *testing.T) {
	t.Parallel()

	m, err := Select(testMatches(), "1.2")
	require.NoError(t, err)
	assert.Equal(t, "/apps/App1.2/bin", m.Path)
}

func TestSelectTagWinsOverVersion(t *testing.T) {
	t.Parallel()

	// A tag named like a version resolves to the tagged match first.
	matches := []*core.Match{
		{Path: "/a", Version: "2.0", Tags: []string{"1.0"}},
		{Path: "/b", Version: "1.0"},
	}

	m, err := Select(matches, "1.0")
	require.NoError(t, err)
	assert.Equal(t, "/a", m.Path)
}

func TestSelectNotFound(t *testing.T) {
	t.Parallel()

	_, err := Select(testMatches(), "9.9")
	require.Error(t, err)

	var selErr *core.SelectionError
	require.ErrorAs(t, err, &selErr)
	assert.Equal(t, "9.9", selErr.Selector)
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	suggestions := Suggest(testMatches(), "1.3bta1")
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "1.3beta1", suggestions[0])
}

func TestLaunchPassesArgsThrough(t *testing.T) {
	t.Parallel()

	mock := &MockCommandRunner{}
	l := &Launcher{Runner: mock, Logger: logging.NewTestLogger(io.Discard)}

	match := &core.Match{Path: "/apps/App1.3/bin", Version: "1.3"}
	err := l.Launch(context.Background(), match, []string{"--foo", "bar"}, false)
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	assert.Equal(t, []string{"/apps/App1.3/bin", "--foo", "bar"}, mock.Calls[0])
}

func TestLaunchAppHelpPrependsHelpFlag(t *testing.T) {
	t.Parallel()

	mock := &MockCommandRunner{}
	l := &Launcher{Runner: mock, Logger: logging.NewTestLogger(io.Discard)}

	match := &core.Match{Path: "/apps/App1.3/bin", Version: "1.3"}
	err := l.Launch(context.Background(), match, []string{"--verbose"}, true)
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	assert.Equal(t, []string{"/apps/App1.3/bin", "--help", "--verbose"}, mock.Calls[0])
}

func TestLaunchWrapsRunnerError(t *testing.T) {
	t.Parallel()

	mock := &MockCommandRunner{
		RunInteractiveFunc: func(ctx context.Context, name string, args ...string) error {
			return errors.New("exec format error")
		},
	}
	l := &Launcher{Runner: mock, Logger: logging.NewTestLogger(io.Discard)}

	err := l.Launch(context.Background(), &core.Match{Path: "/x", Version: "1.0"}, nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1.0")
}

func TestOSCommandRunnerGetExitCode(t *testing.T) {
	t.Parallel()

	r := NewOSCommandRunner()
	assert.Equal(t, 0, r.GetExitCode(nil))
	assert.Equal(t, -1, r.GetExitCode(errors.New("not an exit error")))
}
