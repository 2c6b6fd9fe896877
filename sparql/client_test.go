package sparql_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-login/sparql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsBody = `{
	"head": {"vars": ["uri", "uuid"]},
	"results": {"bindings": [
		{
			"uri": {"type": "uri", "value": "http://example.com/accounts/1"},
			"uuid": {"type": "literal", "value": "abc-123"}
		}
	]}
}`

func TestClientQuery(t *testing.T) {
	var got *http.Request
	var form string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		require.NoError(t, r.ParseForm())
		form = r.PostForm.Get("query")
		w.Header().Set("Content-Type", "application/sparql-results+json")
		w.Write([]byte(resultsBody))
	}))
	defer srv.Close()

	client := sparql.NewClient(srv.URL, sparql.Sudo())

	res, err := client.Query(context.Background(), "SELECT ?uri ?uuid WHERE { ?uri ?p ?uuid }")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "application/sparql-results+json", got.Header.Get("Accept"))
	assert.Equal(t, "true", got.Header.Get("mu-auth-sudo"))
	assert.Contains(t, form, "SELECT ?uri ?uuid")

	require.False(t, res.Empty())
	require.Len(t, res.Results.Bindings, 1)
	row := res.Results.Bindings[0]
	assert.Equal(t, "http://example.com/accounts/1", row.Value("uri"))
	assert.Equal(t, "abc-123", row.Value("uuid"))
	assert.Equal(t, "", row.Value("missing"))
}

func TestClientQueryEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"head":{"vars":["uri"]},"results":{"bindings":[]}}`))
	}))
	defer srv.Close()

	client := sparql.NewClient(srv.URL)

	res, err := client.Query(context.Background(), "SELECT ?uri WHERE { ?uri ?p ?o }")
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestClientUpdate(t *testing.T) {
	var form string
	var sudo string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm.Get("update")
		sudo = r.Header.Get("mu-auth-sudo")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := sparql.NewClient(srv.URL)

	err := client.Update(context.Background(), "INSERT DATA { <a> <b> <c> }")
	require.NoError(t, err)

	assert.Contains(t, form, "INSERT DATA")
	assert.Equal(t, "", sudo, "plain clients must not claim sudo")
}

func TestClientEndpointError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "syntax error", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := sparql.NewClient(srv.URL)

	_, err := client.Query(context.Background(), "SELECT")
	assert.ErrorIs(t, err, sparql.ErrEndpoint)

	err = client.Update(context.Background(), "INSERT")
	assert.ErrorIs(t, err, sparql.ErrEndpoint)
}

func TestClientContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := sparql.NewClient(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Query(ctx, "SELECT ?s WHERE { ?s ?p ?o }")
	assert.Error(t, err)
}
