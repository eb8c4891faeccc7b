package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(token string) *Server {
	return NewServer(ServerConfig{
		Port:      0,
		Token:     token,
		Version:   "test",
		GitCommit: "abc123",
		BuildTime: "now",
		GoVersion: "go-test",
	})
}

func postJSON(t *testing.T, server *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthAndVersion(t *testing.T) {
	server := testServer("")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/version", nil)
	rec = httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	version := decodeBody[VersionResponse](t, rec)
	assert.Equal(t, "test", version.Version)
	assert.Equal(t, "abc123", version.GitCommit)
}

func TestParseEndpoint(t *testing.T) {
	server := testServer("")

	t.Run("parses and expands content", func(t *testing.T) {
		rec := postJSON(t, server, "/api/v1/parse", ParseRequest{
			Content: "A=1\nB=${A}\n",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[ParseResponse](t, rec)
		assert.Equal(t, map[string]string{"A": "1", "B": "1"}, resp.Variables)
		assert.Equal(t, []string{"A", "B"}, resp.Keys)
		assert.Equal(t, 2, resp.Count)
	})

	t.Run("server environment does not leak into expansion", func(t *testing.T) {
		t.Setenv("LEAKY_TEST_VALUE", "secret")

		rec := postJSON(t, server, "/api/v1/parse", ParseRequest{
			Content: "A=${LEAKY_TEST_VALUE}\n",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[ParseResponse](t, rec)
		assert.Equal(t, "", resp.Variables["A"])
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", bytes.NewReader([]byte("{broken")))
		rec := httptest.NewRecorder()
		server.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestValidateEndpoint(t *testing.T) {
	server := testServer("")

	t.Run("typed result", func(t *testing.T) {
		rec := postJSON(t, server, "/api/v1/validate", ValidateRequest{
			Content: "PORT=8080\nDEBUG=on\n",
			Schema: &SchemaDocument{
				Variables: map[string]VariableSpecDocument{
					"PORT":  {Type: "number"},
					"DEBUG": {Type: "boolean"},
				},
			},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[ValidateResponse](t, rec)
		assert.Equal(t, float64(8080), resp.Variables["PORT"])
		assert.Equal(t, true, resp.Variables["DEBUG"])
	})

	t.Run("violations come back as 422 with the full list", func(t *testing.T) {
		rec := postJSON(t, server, "/api/v1/validate", ValidateRequest{
			Content: "PORT=eighty\n",
			Schema: &SchemaDocument{
				Required:  []string{"API_KEY"},
				Variables: map[string]VariableSpecDocument{"PORT": {Type: "number"}},
			},
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		resp := decodeBody[ValidationErrorResponse](t, rec)
		require.Len(t, resp.Violations, 2)

		kinds := map[string]string{}
		for _, v := range resp.Violations {
			kinds[v.Kind] = v.Key
		}
		assert.Equal(t, "API_KEY", kinds["required_missing"])
		assert.Equal(t, "PORT", kinds["type_conversion"])
	})

	t.Run("missing schema is a 400", func(t *testing.T) {
		rec := postJSON(t, server, "/api/v1/validate", ValidateRequest{Content: "A=1\n"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad schema document is a 400", func(t *testing.T) {
		rec := postJSON(t, server, "/api/v1/validate", ValidateRequest{
			Content: "A=1\n",
			Schema: &SchemaDocument{
				Variables: map[string]VariableSpecDocument{"A": {Type: "integer"}},
			},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRenderEndpoint(t *testing.T) {
	server := testServer("")

	t.Run("sorted by default", func(t *testing.T) {
		rec := postJSON(t, server, "/api/v1/render", RenderRequest{
			Source: map[string]string{"B": "2", "A": "1"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[RenderResponse](t, rec)
		assert.Equal(t, "A=1\nB=2", resp.Content)
	})

	t.Run("include exclude and quoting", func(t *testing.T) {
		sort := true
		rec := postJSON(t, server, "/api/v1/render", RenderRequest{
			Source:  map[string]string{"A": "has space", "B": "2", "C": "3"},
			Include: []string{"A", "B"},
			Exclude: []string{"B"},
			Sort:    &sort,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[RenderResponse](t, rec)
		assert.Equal(t, `A="has space"`, resp.Content)
	})
}

func TestTokenAuth(t *testing.T) {
	server := testServer("sekrit")

	t.Run("health stays public", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		rec := httptest.NewRecorder()
		server.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("pipeline endpoints reject missing token", func(t *testing.T) {
		rec := postJSON(t, server, "/api/v1/parse", ParseRequest{Content: "A=1"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong token is rejected", func(t *testing.T) {
		data, _ := json.Marshal(ParseRequest{Content: "A=1"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", bytes.NewReader(data))
		req.Header.Set("Authorization", "Bearer wrong")
		rec := httptest.NewRecorder()
		server.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("correct token passes", func(t *testing.T) {
		data, _ := json.Marshal(ParseRequest{Content: "A=1"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", bytes.NewReader(data))
		req.Header.Set("Authorization", "Bearer sekrit")
		rec := httptest.NewRecorder()
		server.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
