package client

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wstail/wstail/pkg/configuration"
	"github.com/wstail/wstail/pkg/logger"
	"github.com/wstail/wstail/pkg/resolver"
	"github.com/wstail/wstail/pkg/session"
)

func TestMain(m *testing.M) {
	logger.Log = logger.NewLogger("error", []string{"stdout"}, []string{"stderr"})
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, root string) *httptest.Server {
	t.Helper()

	conf := configuration.NewConfig()
	conf.Root = root
	conf.PollInterval = 10 * time.Millisecond

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %s", err)
			return
		}

		sess := session.New(conn, conf)
		_ = sess.Run(r.Context())
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestFollowReadsSnapshot(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "app.log")
	require.NoError(t, os.WriteFile(path, []byte("first\nsecond\n"), 0644))

	server := newTestServer(t, root)
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"

	output := &bytes.Buffer{}
	cli := New(url, &session.Request{Path: "app.log", Follow: false}, output)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := cli.Follow(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", output.String())
}

func TestFollowSurfacesServerError(t *testing.T) {
	server := newTestServer(t, t.TempDir())
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"

	output := &bytes.Buffer{}
	cli := New(url, &session.Request{Path: "missing.log", Follow: false}, output)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := cli.Follow(ctx)

	assert.EqualError(t, err, resolver.ErrNotFound.Error())
	assert.Equal(t, 0, output.Len())
}

func TestRequestRewritesScheme(t *testing.T) {
	server := newTestServer(t, t.TempDir())

	conn, err := Request(server.URL + "/ws")

	require.NoError(t, err)
	require.NoError(t, conn.Close())
}
