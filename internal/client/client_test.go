package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/UnendingLoop/minigrep/internal/client"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/transport"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	node := httptest.NewServer(transport.NewNodeServer("", processor.New(zerolog.Nop()), zerolog.Nop()).Handler)
	defer node.Close()

	require.NoError(t, client.New(node.URL, node.Client(), zerolog.Nop()).Ping(context.Background()))

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	err := client.New(down.URL, down.Client(), zerolog.Nop()).Ping(context.Background())
	require.ErrorIs(t, err, model.ErrNodeUnavailable)

	err = client.New("http://127.0.0.1:0", nil, zerolog.Nop()).Ping(context.Background())
	require.ErrorIs(t, err, model.ErrNodeUnavailable)
}

func TestSearch(t *testing.T) {
	node := httptest.NewServer(transport.NewNodeServer("", processor.New(zerolog.Nop()), zerolog.Nop()).Handler)
	defer node.Close()

	c := client.New(node.URL, node.Client(), zerolog.Nop())

	lines, err := c.Search(context.Background(), model.NewSearchTask("Day", false, "hello\ntoday is tuesday\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"today is tuesday"}, lines)

	lines, err = c.Search(context.Background(), model.NewSearchTask("Day", true, "hello\ntoday is tuesday\n"))
	require.NoError(t, err)
	require.Equal(t, []string{}, lines)
}

func TestSearchRejectsBadNodes(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name: "Negative - hash mismatch",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var task model.SearchTask
				_ = json.NewDecoder(r.Body).Decode(&task)
				_ = json.NewEncoder(w).Encode(model.SearchResult{TaskID: task.TaskID, Lines: []string{"forged"}, HashSumm: 1})
			},
			wantErr: model.ErrHashMismatch.Error(),
		},
		{
			name: "Negative - foreign task id",
			handler: func(w http.ResponseWriter, r *http.Request) {
				lines := []string{"a"}
				_ = json.NewEncoder(w).Encode(model.SearchResult{TaskID: "other", Lines: lines, HashSumm: processor.Hash(lines)})
			},
			wantErr: "instead of",
		},
		{
			name: "Negative - bad status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"nope"}`))
			},
			wantErr: "answered 400",
		},
		{
			name: "Negative - garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
			wantErr: "failed to UNMARSHAL",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			node := httptest.NewServer(tt.handler)
			defer node.Close()

			lines, err := client.New(node.URL, node.Client(), zerolog.Nop()).Search(context.Background(), model.NewSearchTask("a", false, "a"))
			require.ErrorContains(t, err, tt.wantErr)
			require.Nil(t, lines)
		})
	}
}
