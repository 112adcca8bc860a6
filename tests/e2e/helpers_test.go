package e2e_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dnieto/retailcore/internal/backend"
	"github.com/dnieto/retailcore/internal/service/accounting"
	"github.com/dnieto/retailcore/internal/service/employee"
	"github.com/dnieto/retailcore/internal/service/inventory"
	"github.com/dnieto/retailcore/internal/service/sales"
)

// fakeBackend is an in-memory stand-in for the remote data backend. It keeps
// one table of raw JSON objects per resource and assigns sequential IDs, the
// same contract the real API exposes.
type fakeBackend struct {
	mu     sync.Mutex
	tables map[string]map[int64]map[string]any
	nextID int64
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		tables: map[string]map[int64]map[string]any{
			"products":  {},
			"sales":     {},
			"invoices":  {},
			"employees": {},
		},
	}
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	table, ok := f.tables[parts[0]]
	if !ok {
		http.NotFound(w, r)
		return
	}

	var id int64
	if len(parts) == 2 {
		var err error
		id, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			http.Error(w, `{"error":"bad id"}`, http.StatusBadRequest)
			return
		}
	}

	switch {
	case r.Method == http.MethodGet && len(parts) == 1:
		list := make([]map[string]any, 0, len(table))
		for i := int64(1); i <= f.nextID; i++ {
			if rec, ok := table[i]; ok {
				list = append(list, rec)
			}
		}
		writeJSON(w, http.StatusOK, list)

	case r.Method == http.MethodPost && len(parts) == 1:
		rec := decodeBody(w, r)
		if rec == nil {
			return
		}
		f.nextID++
		rec["id"] = f.nextID
		// Backend-owned fields the payload never carries.
		rec["createdAt"] = engineNow.Format(time.RFC3339)
		if parts[0] == "products" {
			rec["isActive"] = true
		}
		table[f.nextID] = rec
		writeJSON(w, http.StatusCreated, rec)

	case r.Method == http.MethodPut && len(parts) == 2:
		if _, ok := table[id]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}
		rec := decodeBody(w, r)
		if rec == nil {
			return
		}
		rec["id"] = id
		table[id] = rec
		writeJSON(w, http.StatusOK, rec)

	case r.Method == http.MethodPatch && len(parts) == 2:
		rec, ok := table[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}
		fields := decodeBody(w, r)
		if fields == nil {
			return
		}
		for k, v := range fields {
			rec[k] = v
		}
		writeJSON(w, http.StatusOK, rec)

	case r.Method == http.MethodDelete && len(parts) == 2:
		if _, ok := table[id]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}
		delete(table, id)
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request) map[string]any {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"error":"bad body"}`, http.StatusBadRequest)
		return nil
	}
	return body
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ---------------------------------------------------------------------------
// Test harness
// ---------------------------------------------------------------------------

type testEngine struct {
	Backend    *fakeBackend
	Clock      *clockwork.FakeClock
	Inventory  *inventory.Service
	Sales      *sales.Service
	Accounting *accounting.Service
	Employees  *employee.Service
}

var engineNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func setupEngine(t *testing.T) *testEngine {
	t.Helper()

	fake := newFakeBackend()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client := backend.NewClient(server.URL, 5*time.Second, slog.Default())
	clock := clockwork.NewFakeClockAt(engineNow)
	const pageSize = 10

	return &testEngine{
		Backend:    fake,
		Clock:      clock,
		Inventory:  inventory.NewService(slog.Default(), client, clock, pageSize),
		Sales:      sales.NewService(slog.Default(), client, clock, pageSize),
		Accounting: accounting.NewService(slog.Default(), client, clock, pageSize),
		Employees:  employee.NewService(slog.Default(), client, clock, pageSize),
	}
}
