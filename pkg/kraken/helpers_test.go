package kraken

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"kraken/internal/sign"
	"kraken/pkg/core"
)

const (
	testKey    = "test-api-key-0001"
	testSecret = "kQH5HW/8p1uGOVjbgWA7FunAmGO8lsSUXNsu3eow76sz84Q18fWxnyRzBHCd3pd5nE9qa99HAZtuZuj6F1huXg=="
)

// fixedNonce returns start, start+1, ...
type fixedNonce struct {
	mu   sync.Mutex
	next int64
}

func (f *fixedNonce) Next() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.next
	f.next++
	return n
}

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
	Header http.Header
}

// fakeExchange answers every request with a canned status and body and records what it got.
type fakeExchange struct {
	t        *testing.T
	server   *httptest.Server
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	response string
}

func newFakeExchange(t *testing.T, response string) *fakeExchange {
	t.Helper()
	f := &fakeExchange{t: t, status: http.StatusOK, response: response}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeExchange) handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Body:   string(body),
		Header: r.Header.Clone(),
	})
	status, response := f.status, f.response
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(response))
}

func (f *fakeExchange) setResponse(status int, response string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
	f.response = response
}

func (f *fakeExchange) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeExchange) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(f.t, f.requests, "no request reached the server")
	return f.requests[len(f.requests)-1]
}

// verifySignature recomputes API-Sign from the received body, the way the exchange does.
func verifySignature(t *testing.T, req recordedRequest) {
	t.Helper()
	values, err := url.ParseQuery(req.Body)
	require.NoError(t, err)
	nonce := values.Get("nonce")
	require.NotEmpty(t, nonce, "body carries no nonce")

	secret, err := base64.StdEncoding.DecodeString(testSecret)
	require.NoError(t, err)
	want := sign.SignEncoded(req.Path, nonce, req.Body, secret)
	require.Equal(t, want, req.Header.Get(HeaderAPISign))
	require.Equal(t, testKey, req.Header.Get(HeaderAPIKey))
}

func testCredential(t *testing.T) *core.Credential {
	t.Helper()
	cred, err := core.NewCredential(testKey, testSecret)
	require.NoError(t, err)
	return cred
}

func newTestClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()
	all := append([]Option{
		WithConfig(core.DefaultConfig().WithBaseURL(baseURL)),
		WithCredential(testCredential(t)),
		WithNonceSource(&fixedNonce{next: 1000}),
	}, opts...)
	client, err := New(all...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}
