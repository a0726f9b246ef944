package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/medebd/medicine-api/catalogparser"
	"github.com/medebd/medicine-api/catalogparser/entities"
	"github.com/medebd/medicine-api/config"
	"github.com/medebd/medicine-api/data"
	"github.com/medebd/medicine-api/logging"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logging.InitLogger(t.TempDir(), 1)

	store := data.NewContainer()
	store.UpdateCatalog(catalogparser.BuildCatalog(
		[]entities.Medicine{
			{BrandID: 1, BrandName: "Napa", GenericID: "1", CompanyID: 1},
			{BrandID: 2, BrandName: "Napa Extra", GenericID: "1", CompanyID: 1},
		},
		[]entities.Generic{{GenericID: 1, GenericName: "Paracetamol", Indication: []string{"Fever"}}},
		[]entities.Company{{CompanyID: 1, CompanyName: "Beximco"}}))
	store.SetServerStartTime(time.Now())

	cfg := &config.Config{
		Port:              "8000",
		Address:           "127.0.0.1",
		Env:               "test",
		MaxRequestBody:    1048576,
		MaxHeaderSize:     1048576,
		RateLimitRate:     1000,
		RateLimitCapacity: 100000,
	}

	s := NewServer(cfg, store)
	t.Cleanup(s.limiter.Stop)
	return s
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "198.51.100.30:5000"
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestServerRoutes(t *testing.T) {
	s := newTestServer(t)

	routes := []struct {
		path string
		want int
	}{
		{"/", http.StatusOK},
		{"/health", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/api/v2/medicine", http.StatusOK},
		{"/api/v2/medicine/search?symptom=fever", http.StatusOK},
		{"/api/v2/medicine/generic", http.StatusOK},
		{"/api/v2/medicine/searchByGeneric?id=1", http.StatusOK},
		{"/api/v2/medicine/company", http.StatusOK},
		{"/api/v2/medicine/searchByCompanyId?id=1", http.StatusOK},
		{"/api/v2/medicine/1", http.StatusOK},
		{"/api/v2/medicine/404404", http.StatusNotFound},
		{"/nonexistent", http.StatusNotFound},
	}

	for _, tt := range routes {
		rec := get(t, s, tt.path)
		if rec.Code != tt.want {
			t.Errorf("GET %s = %d, want %d", tt.path, rec.Code, tt.want)
		}
	}
}

func TestServerTrailingSlashRedirect(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/v2/medicine/generic/")
	if rec.Code != http.StatusMovedPermanently {
		t.Errorf("trailing slash: status = %d, want 301", rec.Code)
	}
}

func TestServerListEnvelope(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/v2/medicine?medicineName=napa")

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	for _, key := range []string{"status", "details", "total_count", "total_pages", "current_page"} {
		if _, ok := body[key]; !ok {
			t.Errorf("envelope missing %q", key)
		}
	}
	if body["total_count"].(float64) != 2 {
		t.Errorf("total_count = %v, want 2", body["total_count"])
	}
}

func TestServerRateLimitHeaders(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/v2/medicine")
	if rec.Header().Get("X-RateLimit-Limit") == "" {
		t.Error("X-RateLimit-Limit header missing")
	}
	if rec.Header().Get("X-RateLimit-Remaining") == "" {
		t.Error("X-RateLimit-Remaining header missing")
	}
}

func TestServerTimeoutsConfigured(t *testing.T) {
	s := newTestServer(t)

	if s.server.ReadTimeout != 15*time.Second {
		t.Errorf("ReadTimeout = %v", s.server.ReadTimeout)
	}
	if s.server.WriteTimeout != 15*time.Second {
		t.Errorf("WriteTimeout = %v", s.server.WriteTimeout)
	}
	if s.server.IdleTimeout != 60*time.Second {
		t.Errorf("IdleTimeout = %v", s.server.IdleTimeout)
	}
	if s.server.Addr != "127.0.0.1:8000" {
		t.Errorf("Addr = %q", s.server.Addr)
	}
}
