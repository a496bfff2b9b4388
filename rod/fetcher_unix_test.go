//go:build integration && !windows

package rod_test

import (
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/mensafeed/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(5 * time.Second))
	require.NoError(t, err)

	pid := fetcher.LauncherPID()
	require.NotZero(t, pid)
	require.NoError(t, syscall.Kill(pid, syscall.Signal(0)), "browser should run while the fetcher is open")

	require.NoError(t, fetcher.Close())
	require.NoError(t, fetcher.Close(), "a second Close is a no-op")

	assert.Zero(t, fetcher.LauncherPID())
	assert.Eventually(t, func() bool {
		return syscall.Kill(pid, syscall.Signal(0)) != nil
	}, 2*time.Second, 50*time.Millisecond, "browser process should exit after Close")
}
