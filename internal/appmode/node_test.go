package appmode_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRunNodeGracefulShutdown(t *testing.T) {
	addr := freeAddress(t)
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- appmode.RunNode(ctx, stop, &model.NodeParam{Address: addr}, zerolog.Nop())
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	stop()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("RunNode did not return after cancel")
	}
}

func TestRunNodeAddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	err = appmode.RunNode(ctx, stop, &model.NodeParam{Address: busy.Addr().String()}, zerolog.Nop())
	require.Error(t, err)
}

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}
