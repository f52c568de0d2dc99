package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

// FakeUpstream is an httptest server that answers each path with a canned
// JSON body and records the requests it saw, in the style of a stubbed
// third-party API.
type FakeUpstream struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

// NewFakeUpstream starts a server answering each route path (matched against
// r.URL.Path) with its JSON body. Unknown paths return 404 with an empty
// object.
func NewFakeUpstream(routes map[string]string) *FakeUpstream {
	f := &FakeUpstream{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(r.Context()))
		f.mu.Unlock()

		body, ok := routes[r.URL.Path]
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"not found"}`))
			return
		}
		w.Write([]byte(body))
	}))
	return f
}

// Close shuts the underlying server down.
func (f *FakeUpstream) Close() {
	f.Server.Close()
}

// URL returns the base URL of the fake upstream.
func (f *FakeUpstream) URL() string {
	return f.Server.URL
}

// Requests returns a copy of the recorded requests.
func (f *FakeUpstream) Requests() []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*http.Request, len(f.requests))
	copy(out, f.requests)
	return out
}
