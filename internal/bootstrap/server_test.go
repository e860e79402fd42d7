package bootstrap

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingAuditLogger struct {
	mu      sync.Mutex
	entries []AuditLog
}

func (l *recordingAuditLogger) Log(ctx context.Context, entry AuditLog) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

func freePort(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)
	defer ln.Close()
	return strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
}

func TestServe_GracefulShutdown(t *testing.T) {
	audit := &recordingAuditLogger{}
	cfg := DefaultServerConfig(freePort(t))
	ctx, cancel := context.WithCancel(context.Background())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	done := make(chan error, 1)
	go func() { done <- serve(ctx, handler, cfg, audit) }()

	assert.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + cfg.Port + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	audit.mu.Lock()
	defer audit.mu.Unlock()
	if assert.Len(t, audit.entries, 1) {
		assert.Equal(t, "SERVER_SHUTDOWN", audit.entries[0].Action)
	}
}

func TestServe_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	assert.NoError(t, err)
	defer ln.Close()

	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
	err = serve(context.Background(), http.NotFoundHandler(), DefaultServerConfig(port), &recordingAuditLogger{})

	assert.Error(t, err)
}
