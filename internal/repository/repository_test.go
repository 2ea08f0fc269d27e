package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jp-grammar/internal/config"
	"jp-grammar/internal/supabase"

	"github.com/stretchr/testify/require"
)

// newTestClient starts a fake PostgREST endpoint and returns a client
// pointed at it. The server is closed with the test.
func newTestClient(t *testing.T, handler http.HandlerFunc) *supabase.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := supabase.New(config.SupabaseConfig{URL: server.URL, ServiceKey: "test-key"})
	require.NoError(t, err)
	return client
}
