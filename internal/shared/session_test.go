package shared

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionManager(t *testing.T) *SessionManager {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionManager(client, "test_session", "super-secret", time.Hour, false)
}

func commitAndCookie(t *testing.T, sm *SessionManager, sess *Session) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, sm.Commit(context.Background(), w, sess))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestSessionRoundTrip(t *testing.T) {
	sm := newSessionManager(t)
	ctx := context.Background()

	sess, err := sm.Load(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	sess.Set("cart", "line-1")
	sess.SetUser("admin-1")

	cookie := commitAndCookie(t, sm, sess)
	assert.True(t, strings.HasPrefix(cookie.Value, sess.ID+"."))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	restored, err := sm.Load(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, restored.ID)
	assert.Equal(t, "line-1", restored.Get("cart"))
	assert.Equal(t, "admin-1", restored.User())
}

func TestSessionRejectsTamperedCookie(t *testing.T) {
	sm := newSessionManager(t)
	ctx := context.Background()

	sess, err := sm.Load(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	sess.Set("cart", "line-1")
	cookie := commitAndCookie(t, sm, sess)

	// Swap the session ID while keeping the old signature.
	id, sig, _ := strings.Cut(cookie.Value, ".")
	forged := &http.Cookie{Name: cookie.Name, Value: "not-" + id + "." + sig}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(forged)
	fresh, err := sm.Load(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, sess.ID, fresh.ID)
	assert.Empty(t, fresh.Get("cart"))
}

func TestSessionDestroy(t *testing.T) {
	sm := newSessionManager(t)
	ctx := context.Background()

	sess, err := sm.Load(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	sess.Set("cart", "line-1")
	cookie := commitAndCookie(t, sm, sess)

	sm.Destroy(sess)
	expired := commitAndCookie(t, sm, sess)
	assert.Equal(t, -1, expired.MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	reloaded, err := sm.Load(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Get("cart"))
}
