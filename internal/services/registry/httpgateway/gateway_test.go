package httpgateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/assetregistry/internal/services/registry/ledger"
	"github.com/louisbranch/assetregistry/internal/services/registry/principal"
	"github.com/louisbranch/assetregistry/internal/services/registry/storage/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, principals principal.Config) http.Handler {
	t.Helper()
	registry, err := ledger.New(memory.New(), ledger.WithClock(func() time.Time {
		return time.Unix(100, 0)
	}))
	require.NoError(t, err)
	return NewHandler(registry, principals, zerolog.Nop())
}

func do(t *testing.T, h http.Handler, method, path, caller, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if caller != "" {
		req.Header.Set(principal.HeaderPrincipal, caller)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode(t, rec)
	errBody, ok := body["error"].(map[string]any)
	require.True(t, ok, "missing error body: %s", rec.Body.String())
	code, _ := errBody["code"].(string)
	return code
}

func TestRegisterVerifyTransfer(t *testing.T) {
	h := newTestHandler(t, principal.Config{Mode: principal.ModeHeader})

	rec := do(t, h, http.MethodPost, "/v1/assets", "alice", `{"asset_hash":"h1","metadata":"ipfs://a"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	asset := decode(t, rec)["asset"].(map[string]any)
	require.Equal(t, "alice", asset["owner"])
	require.Equal(t, "1970-01-01T00:01:40Z", asset["registered_at"])
	require.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	rec = do(t, h, http.MethodGet, "/v1/assets/h1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ipfs://a", decode(t, rec)["asset"].(map[string]any)["metadata"])

	rec = do(t, h, http.MethodPost, "/v1/assets/h1/transfer", "alice", `{"new_owner":"bob"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	require.Equal(t, "alice", body["previous_owner"])
	require.Equal(t, "bob", body["asset"].(map[string]any)["owner"])

	rec = do(t, h, http.MethodGet, "/v1/assets/h1/exists", "", "")
	require.Equal(t, true, decode(t, rec)["exists"])
	rec = do(t, h, http.MethodGet, "/v1/assets/h2/exists", "", "")
	require.Equal(t, false, decode(t, rec)["exists"])

	rec = do(t, h, http.MethodGet, "/v1/asset-count", "", "")
	require.Equal(t, "1", decode(t, rec)["count"])

	rec = do(t, h, http.MethodGet, "/v1/asset-index/0", "", "")
	require.Equal(t, "h1", decode(t, rec)["asset_hash"])
}

func TestEscapedHashRoundTrip(t *testing.T) {
	h := newTestHandler(t, principal.Config{Mode: principal.ModeHeader})

	for _, hash := range []string{"sha256/abc", "h1 ", "a/b/c"} {
		body, err := json.Marshal(map[string]string{"asset_hash": hash})
		require.NoError(t, err)
		rec := do(t, h, http.MethodPost, "/v1/assets", "alice", string(body))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		path := "/v1/assets/" + url.PathEscape(hash)
		rec = do(t, h, http.MethodGet, path, "", "")
		require.Equal(t, http.StatusOK, rec.Code, "verify %q: %s", hash, rec.Body.String())
		require.Equal(t, hash, decode(t, rec)["asset"].(map[string]any)["asset_hash"])

		rec = do(t, h, http.MethodGet, path+"/exists", "", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.Equal(t, true, decode(t, rec)["exists"])

		rec = do(t, h, http.MethodPost, path+"/transfer", "alice", `{"new_owner":"bob"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.Equal(t, "bob", decode(t, rec)["asset"].(map[string]any)["owner"])
	}

	rec := do(t, h, http.MethodGet, "/v1/assets/"+url.PathEscape("sha256/abd")+"/exists", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, false, decode(t, rec)["exists"])

	rec = do(t, h, http.MethodGet, "/v1/asset-count", "", "")
	require.Equal(t, "3", decode(t, rec)["count"])
}

func TestErrorStatuses(t *testing.T) {
	h := newTestHandler(t, principal.Config{Mode: principal.ModeHeader})
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/v1/assets", "alice", `{"asset_hash":"h1"}`).Code)

	tests := []struct {
		name   string
		method string
		path   string
		caller string
		body   string
		status int
		code   string
	}{
		{"missing caller", http.MethodPost, "/v1/assets", "", `{"asset_hash":"h2"}`, http.StatusUnauthorized, "CALLER_MISSING"},
		{"empty hash", http.MethodPost, "/v1/assets", "alice", `{"asset_hash":""}`, http.StatusBadRequest, "ASSET_HASH_EMPTY"},
		{"duplicate", http.MethodPost, "/v1/assets", "bob", `{"asset_hash":"h1"}`, http.StatusConflict, "ASSET_ALREADY_REGISTERED"},
		{"not found", http.MethodGet, "/v1/assets/h9", "", "", http.StatusNotFound, "ASSET_NOT_FOUND"},
		{"not owner", http.MethodPost, "/v1/assets/h1/transfer", "bob", `{"new_owner":"bob"}`, http.StatusForbidden, "ASSET_NOT_OWNER"},
		{"empty new owner", http.MethodPost, "/v1/assets/h1/transfer", "alice", `{"new_owner":""}`, http.StatusBadRequest, "ASSET_NEW_OWNER_EMPTY"},
		{"out of range", http.MethodGet, "/v1/asset-index/5", "", "", http.StatusBadRequest, "ASSET_INDEX_OUT_OF_RANGE"},
		{"bad index", http.MethodGet, "/v1/asset-index/x", "", "", http.StatusBadRequest, "INVALID_INDEX"},
		{"bad body", http.MethodPost, "/v1/assets", "alice", `{`, http.StatusBadRequest, "INVALID_BODY"},
		{"bad page token", http.MethodGet, "/v1/assets?page_token=abc", "", "", http.StatusBadRequest, "PAGE_TOKEN_INVALID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.caller, tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			require.Equal(t, tt.code, errorCode(t, rec))
		})
	}
}

func TestLocalizedErrorMessage(t *testing.T) {
	h := newTestHandler(t, principal.Config{Mode: principal.ModeHeader})

	req := httptest.NewRequest(http.MethodGet, "/v1/assets/h9", nil)
	req.Header.Set("Accept-Language", "pt-BR")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	errBody := decode(t, rec)["error"].(map[string]any)
	require.Equal(t, "pt-BR", errBody["locale"])
	require.Equal(t, "O ativo h9 não está registrado", errBody["message"])
}

func TestListAssetsAndEvents(t *testing.T) {
	h := newTestHandler(t, principal.Config{Mode: principal.ModeHeader})
	for _, hash := range []string{"h1", "h2", "h3"} {
		require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/v1/assets", "alice", `{"asset_hash":"`+hash+`"}`).Code)
	}

	rec := do(t, h, http.MethodGet, "/v1/assets?page_size=2", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	require.Len(t, body["assets"], 2)
	require.Equal(t, "2", body["next_page_token"])

	rec = do(t, h, http.MethodGet, "/v1/events?after_sequence=1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	events := decode(t, rec)["events"].([]any)
	require.Len(t, events, 2)
	require.Equal(t, "h2", events[0].(map[string]any)["asset_hash"])
}

func TestJWTMode(t *testing.T) {
	cfg := principal.Config{
		Mode:     principal.ModeJWT,
		Issuer:   "assetregistry",
		Audience: "assetregistry",
		Key:      []byte("0123456789abcdef0123456789abcdef"),
		TTL:      time.Hour,
	}
	h := newTestHandler(t, cfg)

	token, err := principal.IssueToken("alice", cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/assets", strings.NewReader(`{"asset_hash":"h1"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Equal(t, "alice", decode(t, rec)["asset"].(map[string]any)["owner"])

	req = httptest.NewRequest(http.MethodPost, "/v1/assets", strings.NewReader(`{"asset_hash":"h2"}`))
	req.Header.Set("Authorization", "Bearer nope")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "CALLER_TOKEN_INVALID", errorCode(t, rec))

	// Header mode identity is ignored in jwt mode.
	rec = do(t, h, http.MethodPost, "/v1/assets", "mallory", `{"asset_hash":"h3"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "CALLER_MISSING", errorCode(t, rec))
}

func TestRequestIDEcho(t *testing.T) {
	h := newTestHandler(t, principal.Config{Mode: principal.ModeHeader})
	req := httptest.NewRequest(http.MethodGet, "/v1/asset-count", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, "req-7", rec.Header().Get(RequestIDHeader))
}
