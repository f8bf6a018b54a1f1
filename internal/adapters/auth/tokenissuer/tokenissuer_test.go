package tokenissuer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, verifyPath, r.URL.Path)
		assert.Equal(t, "k-1", r.Header.Get("X-Api-Key"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Bearer "+body["token"], r.Header.Get("Authorization"))

		switch body["token"] {
		case "good":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"user_id":" sup-1 ","name":"Meera","email":"meera@farm.test"}`))
		case "empty":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"user_id":""}`))
		case "down":
			http.Error(w, "maintenance", http.StatusServiceUnavailable)
		default:
			http.Error(w, "invalid", http.StatusUnauthorized)
		}
	}))
}

func TestVerifier(t *testing.T) {
	srv := issuer(t)
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "k-1"})
	require.NoError(t, err)
	v := NewVerifier(c)
	ctx := context.Background()

	claims, err := v.Verify(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "sup-1", claims.UserID)
	assert.Equal(t, "Meera", claims.Name)

	_, err = v.Verify(ctx, "revoked")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = v.Verify(ctx, "down")
	assert.ErrorIs(t, err, ErrUpstream)

	_, err = v.Verify(ctx, "empty")
	assert.ErrorIs(t, err, ErrUpstream)

	_, err = v.Verify(ctx, "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}

func TestNewClient_RequiresConfig(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "http://issuer.local"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	var v *Verifier
	_, err = v.Verify(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
