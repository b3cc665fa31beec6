package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/client/config"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WiresSessionIntoTransport(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login/":
			_, _ = w.Write([]byte(`{"token":"zzz123"}`))
		case "/notes/":
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{"notes":[]}`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()

	var cfg config.Config
	cfg.LoadDefaults()
	cfg.APIBaseURL = srv.URL
	cfg.DatabaseDSN = ":memory:"

	ctx := context.Background()
	d, err := New(ctx, &cfg, logging.Discard())
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.Auth.Submit(ctx, "bob", "pw1234"))
	assert.True(t, d.Session.IsAuthenticated())

	d.Loader.Load(ctx)
	assert.Equal(t, "Bearer zzz123", gotAuth)
}

func TestNew_BadDatabase(t *testing.T) {
	var cfg config.Config
	cfg.LoadDefaults()
	cfg.DatabaseDSN = t.TempDir() + "/missing/dir/notes.db"

	_, err := New(context.Background(), &cfg, logging.Discard())
	require.Error(t, err)
}

func TestRequestContext_HasDeadline(t *testing.T) {
	d := &Deps{Config: &config.Config{RequestTimeout: time.Second}}
	ctx, cancel := d.RequestContext(context.Background())
	defer cancel()

	_, ok := ctx.Deadline()
	assert.True(t, ok)
}
