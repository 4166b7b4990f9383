package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscord_NotifySold(t *testing.T) {
	var received payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d := NewDiscord(srv.URL, WithClient(srv.Client()))
	require.True(t, d.Enabled())

	err := d.NotifySold(context.Background(), []string{"1001", "1042"})
	require.NoError(t, err)

	assert.Contains(t, received.Content, "2 item(s) sold!")
	assert.Contains(t, received.Content, "1001, 1042")
	assert.Equal(t, "Trashion Monitor", received.Username)
}

func TestDiscord_NoSoldItemsIsNoop(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	d := NewDiscord(srv.URL, WithClient(srv.Client()))
	require.NoError(t, d.NotifySold(context.Background(), nil))
	assert.False(t, called)
}

func TestDiscord_Disabled(t *testing.T) {
	d := NewDiscord("")
	assert.False(t, d.Enabled())
	assert.NoError(t, d.Send(context.Background(), "ignored"))
}

func TestDiscord_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	d := NewDiscord(srv.URL, WithClient(srv.Client()))
	err := d.Send(context.Background(), "hello")
	assert.ErrorContains(t, err, "429")
}
