package supabase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"jp-grammar/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresCredentials(t *testing.T) {
	_, err := New(config.SupabaseConfig{URL: "https://x.supabase.co"})
	assert.Error(t, err)

	_, err = New(config.SupabaseConfig{ServiceKey: "key"})
	assert.Error(t, err)

	client, err := New(config.SupabaseConfig{URL: "https://x.supabase.co/", ServiceKey: "key"})
	require.NoError(t, err)
	assert.Equal(t, "https://x.supabase.co/rest/v1/grammar", client.endpoint("grammar"))
}

func TestQueryEncode(t *testing.T) {
	client, err := New(config.SupabaseConfig{URL: "https://x.supabase.co", ServiceKey: "key"})
	require.NoError(t, err)

	encoded := client.From("grammar").
		Select("id,title").
		Eq("level_code", "N5").
		Or("title.ilike.*te*,pattern.ilike.*te*").
		Order("level_code", true).
		Order("title", true).
		Limit(20).
		Offset(40).
		encode()

	params, err := url.ParseQuery(encoded)
	require.NoError(t, err)
	assert.Equal(t, "id,title", params.Get("select"))
	assert.Equal(t, "eq.N5", params.Get("level_code"))
	assert.Equal(t, "(title.ilike.*te*,pattern.ilike.*te*)", params.Get("or"))
	assert.Equal(t, "level_code.asc,title.asc", params.Get("order"))
	assert.Equal(t, "20", params.Get("limit"))
	assert.Equal(t, "40", params.Get("offset"))
}

func TestGetDecodesRowsAndTotal(t *testing.T) {
	var gotPrefer, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrefer = r.Header.Get("Prefer")
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "/rest/v1/grammar", r.URL.Path)
		assert.Equal(t, "in.(a,b)", r.URL.Query().Get("id"))

		w.Header().Set("Content-Range", "0-1/57")
		w.Write([]byte(`[{"id":"a"},{"id":"b"}]`))
	}))
	defer server.Close()

	client, err := New(config.SupabaseConfig{URL: server.URL, ServiceKey: "test-key"})
	require.NoError(t, err)

	var rows []struct {
		ID string `json:"id"`
	}
	total, err := client.From("grammar").Count().In("id", []string{"a", "b"}).Get(context.Background(), &rows)
	require.NoError(t, err)

	assert.Equal(t, 57, total)
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].ID)
	assert.Equal(t, "count=exact", gotPrefer)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestGetWithoutCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Prefer"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, err := New(config.SupabaseConfig{URL: server.URL, ServiceKey: "test-key"})
	require.NoError(t, err)

	var rows []struct{}
	total, err := client.From("grammar").Get(context.Background(), &rows)
	require.NoError(t, err)
	assert.Equal(t, CountNone, total)
}

func TestGetStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"relation does not exist"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client, err := New(config.SupabaseConfig{URL: server.URL, ServiceKey: "test-key"})
	require.NoError(t, err)

	var rows []struct{}
	_, err = client.From("missing").Get(context.Background(), &rows)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Status)
	assert.Contains(t, statusErr.Body, "relation does not exist")
}

func TestInsertReturnsRepresentation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id":"new-id"}]`))
	}))
	defer server.Close()

	client, err := New(config.SupabaseConfig{URL: server.URL, ServiceKey: "test-key"})
	require.NoError(t, err)

	var created []struct {
		ID string `json:"id"`
	}
	err = client.Insert(context.Background(), "grammar", []map[string]string{{"title": "x"}}, &created)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "new-id", created[0].ID)
}

func TestUpdatePatchesFilteredRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.gp-1", r.URL.Query().Get("id"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := New(config.SupabaseConfig{URL: server.URL, ServiceKey: "test-key"})
	require.NoError(t, err)

	err = client.From("grammar").Eq("id", "gp-1").Update(context.Background(), map[string]string{"notes": "n"})
	assert.NoError(t, err)
}

func TestParseContentRangeTotal(t *testing.T) {
	assert.Equal(t, 57, parseContentRangeTotal("0-19/57"))
	assert.Equal(t, 0, parseContentRangeTotal("*/0"))
	assert.Equal(t, CountNone, parseContentRangeTotal("0-19/*"))
	assert.Equal(t, CountNone, parseContentRangeTotal(""))
}
