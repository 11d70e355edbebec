package appmode

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/UnendingLoop/minigrep/internal/config"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServeUntilCancelled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Address = ln.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- serve(ctx, ln, &cfg, zap.NewNop()) }()

	base := "http://" + ln.Addr().String()

	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	raw, err := json.Marshal(model.SearchRequest{Query: "tap", Contents: "lolz \n\n        trolllz \ntap colts"})
	require.NoError(t, err)

	resp, err := http.Post(base+"/search", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	var res model.SearchResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []string{"tap colts"}, res.Lines)
	require.NotEmpty(t, res.RequestID)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(cfg.ShutdownTimeout + time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestRunServerBadAddress(t *testing.T) {
	cfg := config.Default()
	cfg.Address = "256.0.0.1:bad"

	err := RunServer(context.Background(), &cfg, zap.NewNop())

	require.ErrorContains(t, err, "failed to listen")
}
