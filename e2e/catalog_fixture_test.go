//go:build e2e && unix

package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// fixtureNames is what the fake catalog lists
var fixtureNames = []string{"go", "node", "python", "pycharm", "rust"}

// catalogServer stands in for the template service
type catalogServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
}

func newCatalogServer(t *testing.T) *catalogServer {
	t.Helper()
	cs := &catalogServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/")
		cs.mu.Lock()
		cs.requests = append(cs.requests, path)
		cs.mu.Unlock()

		if path == "list" {
			_, _ = w.Write([]byte(strings.Join(fixtureNames, ",")))
			return
		}
		for _, name := range strings.Split(path, ",") {
			_, _ = w.Write([]byte("### " + name + " ###\n" + name + "-build/\n"))
		}
	}))
	t.Cleanup(cs.Close)
	return cs
}

func newFailingCatalog(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// Requests returns the paths requested so far
func (cs *catalogServer) Requests() []string {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return append([]string(nil), cs.requests...)
}
