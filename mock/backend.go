// Package mock provides an in-memory stand-in for the shopping helper REST
// backend, for tests.
package mock

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Request is one call received by the backend.
type Request struct {
	Method string
	Path   string
	Body   map[string]any
}

// Backend serves /stores, /products, /prices and /health. Deleting a store or
// product leaves its prices in place, like a backend without cascades.
type Backend struct {
	Server *httptest.Server

	mu       sync.Mutex
	nextID   map[string]uint
	records  map[string]map[uint]map[string]any
	requests []Request
	failures map[string]int // "METHOD /path" -> status
	holds    map[string]*hold
}

type hold struct {
	entered chan struct{}
	release chan struct{}
}

func NewBackend() *Backend {
	b := &Backend{
		nextID:   map[string]uint{},
		records:  map[string]map[uint]map[string]any{},
		failures: map[string]int{},
		holds:    map[string]*hold{},
	}
	for _, c := range []string{"stores", "products", "prices"} {
		b.records[c] = map[uint]map[string]any{}
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	return b
}

func (b *Backend) URL() string {
	return b.Server.URL
}

func (b *Backend) Close() {
	b.Server.Close()
}

// Fail makes every request matching method and path answer with status until
// Reset is called.
func (b *Backend) Fail(method, path string, status int) {
	b.mu.Lock()
	b.failures[method+" "+path] = status
	b.mu.Unlock()
}

// Hold parks the next request matching method and path until release is
// called. entered is closed once that request has arrived.
func (b *Backend) Hold(method, path string) (entered <-chan struct{}, release func()) {
	h := &hold{entered: make(chan struct{}), release: make(chan struct{})}
	b.mu.Lock()
	b.holds[method+" "+path] = h
	b.mu.Unlock()

	var once sync.Once
	return h.entered, func() { once.Do(func() { close(h.release) }) }
}

// Reset clears injected failures, holds and recorded requests.
func (b *Backend) Reset() {
	b.mu.Lock()
	b.failures = map[string]int{}
	b.holds = map[string]*hold{}
	b.requests = nil
	b.mu.Unlock()
}

// Requests returns a copy of the calls received so far.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

// Writes returns the received POST, PUT and DELETE calls.
func (b *Backend) Writes() []Request {
	var out []Request
	for _, r := range b.Requests() {
		if r.Method != http.MethodGet {
			out = append(out, r)
		}
	}
	return out
}

// Seed inserts a record directly and returns its id.
func (b *Backend) Seed(collection string, fields map[string]any) uint {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.insertLocked(collection, fields)
}

// Count returns how many records a collection holds.
func (b *Backend) Count(collection string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.records[collection])
}

func (b *Backend) insertLocked(collection string, fields map[string]any) uint {
	b.nextID[collection]++
	id := b.nextID[collection]
	rec := map[string]any{}
	for k, v := range fields {
		rec[k] = v
	}
	rec["id"] = id
	b.records[collection][id] = rec
	return id
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if r.Body != nil {
		data, _ := io.ReadAll(r.Body)
		if len(data) > 0 {
			if err := json.Unmarshal(data, &body); err != nil {
				http.Error(w, `{"detail":"invalid json"}`, http.StatusUnprocessableEntity)
				return
			}
		}
	}

	key := r.Method + " " + r.URL.Path
	b.mu.Lock()
	h := b.holds[key]
	delete(b.holds, key)
	b.mu.Unlock()
	if h != nil {
		close(h.entered)
		<-h.release
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.requests = append(b.requests, Request{Method: r.Method, Path: r.URL.Path, Body: body})

	if status, ok := b.failures[key]; ok {
		w.WriteHeader(status)
		_, _ = fmt.Fprintf(w, `{"detail":"injected failure %d"}`, status)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if parts[0] == "health" && r.Method == http.MethodGet {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "stores_in_db": len(b.records["stores"])})
		return
	}

	records, ok := b.records[parts[0]]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not Found"})
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		ids := make([]int, 0, len(records))
		for id := range records {
			ids = append(ids, int(id))
		}
		sort.Ints(ids)
		out := make([]map[string]any, 0, len(ids))
		for _, id := range ids {
			out = append(out, records[uint(id)])
		}
		writeJSON(w, http.StatusOK, out)

	case len(parts) == 1 && r.Method == http.MethodPost:
		id := b.insertLocked(parts[0], body)
		writeJSON(w, http.StatusCreated, records[id])

	case len(parts) == 2:
		id64, err := strconv.ParseUint(parts[1], 10, 0)
		rec, found := records[uint(id64)]
		if err != nil || !found {
			writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not Found"})
			return
		}
		switch r.Method {
		case http.MethodPut:
			for k, v := range body {
				rec[k] = v
			}
			writeJSON(w, http.StatusOK, rec)
		case http.MethodDelete:
			delete(records, uint(id64))
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		default:
			writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"detail": "Method Not Allowed"})
		}

	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"detail": "Method Not Allowed"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
