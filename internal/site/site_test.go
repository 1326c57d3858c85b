package site

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderDefault(t *testing.T) []byte {
	t.Helper()
	page, err := RenderBytes(DefaultPage())
	require.NoError(t, err)
	return page
}

func TestRenderDefaultPage(t *testing.T) {
	html := string(renderDefault(t))

	for _, want := range []string{
		"<title>Cold Calling Coach</title>",
		"Real Estate Training Assistant",
		"🎯 Coaching Mode",
		"🎭 Roleplay Mode",
		"• The 4 pillars of prequalifying",
		"• Price-focused homeowners",
		"The 4 Pillars of Prequalifying:",
		"<li>Condition of the home</li>",
		"<li>Timeline to sell</li>",
		"<li>Motivation</li>",
		"<li>Price</li>",
		"Ready to Practice?",
		"I am looking for [Name]",
	} {
		assert.Contains(t, html, want)
	}

	assert.NotContains(t, html, "<script")
}

func TestRenderEscapesContent(t *testing.T) {
	page := DefaultPage()
	page.Title = "<b>Coach</b>"

	html, err := RenderBytes(page)
	require.NoError(t, err)
	assert.Contains(t, string(html), "&lt;b&gt;Coach&lt;/b&gt;")
}

func TestHandler(t *testing.T) {
	handler := NewHandler(renderDefault(t))

	tests := []struct {
		method      string
		path        string
		status      int
		contentType string
		body        string
	}{
		{http.MethodGet, "/", http.StatusOK, "text/html; charset=utf-8", "Cold Calling Coach"},
		{http.MethodGet, "/healthz", http.StatusOK, "text/plain; charset=utf-8", "ok"},
		{http.MethodGet, "/character.json", http.StatusNotFound, "", ""},
		{http.MethodPost, "/", http.StatusMethodNotAllowed, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			}
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}

func TestServeLifecycle(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	pidFile := filepath.Join(t.TempDir(), "run", "server.pid")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, listener, Options{PIDFile: pidFile, ShutdownTimeout: time.Second}, NewHandler(renderDefault(t)))
	}()

	url := "http://" + listener.Addr().String() + "/healthz"
	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)
		body = string(data)
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "ok", body)

	data, err := os.ReadFile(pidFile)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), strings.TrimSpace(string(data)))
	assert.Equal(t, os.Getpid(), ReadPID(pidFile))

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = os.Stat(pidFile)
	assert.True(t, os.IsNotExist(err), "pid file should be removed")
	assert.Equal(t, 0, ReadPID(pidFile))
}

func TestReadPIDInvalid(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, 0, ReadPID(filepath.Join(dir, "missing.pid")))

	garbage := filepath.Join(dir, "garbage.pid")
	require.NoError(t, os.WriteFile(garbage, []byte("not-a-pid"), 0o644))
	assert.Equal(t, 0, ReadPID(garbage))

	negative := filepath.Join(dir, "negative.pid")
	require.NoError(t, os.WriteFile(negative, []byte("-5"), 0o644))
	assert.Equal(t, 0, ReadPID(negative))
}

func TestRunReportsListenError(t *testing.T) {
	err := Run(context.Background(), Options{Bind: "not-an-address"}, http.NotFoundHandler())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "site: listen")
}
