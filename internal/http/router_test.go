package httpapi

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/graphityenvato-oss/prime-elec-sub000/internal/config"
	"github.com/graphityenvato-oss/prime-elec-sub000/internal/domain"
	"github.com/graphityenvato-oss/prime-elec-sub000/internal/repo"
)

// --- test DB helper (pure-Go sqlite, no CGO) ---
func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// schema so handlers don't explode on search/stats endpoints
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func testConfig(basePath string) config.Config {
	return config.Config{
		APIBasePath: basePath,
		RateRPS:     100,
		RateBurst:   10,
		CORS:        config.CORSConfig{AllowedOrigins: nil}, // triggers AllowAllOrigins branch
		Security:    config.SecurityConfig{EnableHSTS: false, HSTSMaxAge: 0},
		OTEL:        config.OTELConfig{ServiceName: "test-svc"},
		Storage: config.StorageConfig{
			BaseURL:          "https://cdn.example.com/object/public",
			Bucket:           "catalog-images",
			PlaceholderImage: "/images/placeholder.png",
		},
	}
}

func TestRegisterRoutes_CORSAllowAll_Health_Metrics_Fallbacks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := testConfig("/api/v1")
	db := newTestDB(t, "routerdb")

	RegisterRoutes(r, db, cfg)

	// /health works
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	// CORS (AllowAllOrigins) → header "*"
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("AllowAllOrigins expected '*', got %q", got)
	}

	// /metrics is wired
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || len(w.Body.Bytes()) == 0 {
		t.Fatalf("GET /metrics bad: code=%d len=%d", w.Code, w.Body.Len())
	}

	// NoRoute → 404
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/nope", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /nope expected 404, got %d", w.Code)
	}

	// NoMethod → 405 (POST /health)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /health expected 405, got %d", w.Code)
	}
}

func TestRegisterRoutes_CORSWithOrigins_HeaderEcho(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := testConfig("/api/v2")
	cfg.CORS = config.CORSConfig{AllowedOrigins: []string{"http://example.com"}}
	db := newTestDB(t, "routerdb_cors")

	RegisterRoutes(r, db, cfg)

	// Any request runs through CORS middleware; header should reflect origin.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://example.com")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://example.com" {
		t.Fatalf("expected ACAO echo, got %q", got)
	}
}

func TestRegisterRoutes_SearchEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := testConfig("/api/v1")
	db := newTestDB(t, "routerdb_search")
	if err := db.Create(&domain.Product{
		Slug: "mccb-420x-3p", Title: "Molded Case Circuit Breaker 420A",
		Code: "MCCB-420X", Brand: "Eaton",
		Category: "Power Distribution", Subcategory: "Circuit Breakers",
	}).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	RegisterRoutes(r, db, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=mccb", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/v1/search = %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Query  string `json:"query"`
		Totals struct {
			StockProducts int `json:"stockProducts"`
		} `json:"totals"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Query != "mccb" || resp.Totals.StockProducts != 1 {
		t.Fatalf("unexpected search payload: %s", w.Body.String())
	}

	// Stats endpoint is wired too
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/catalog/stats", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/v1/catalog/stats = %d", w.Code)
	}
	var stats struct {
		StockProducts int64 `json:"stock_products"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.StockProducts != 1 {
		t.Fatalf("stats: %s", w.Body.String())
	}
}

func TestRegisterRoutes_GzipNegotiated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := testConfig("/api/v1")
	db := newTestDB(t, "routerdb_gzip")
	RegisterRoutes(r, db, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/v1/search = %d", w.Code)
	}
	if got := w.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("expected gzip encoding, got %q", got)
	}
	zr, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	body, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("gunzip: %v", err)
	}
	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func Test_limitBody_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// tiny cap to trigger MaxBytesReader
	r.Use(limitBody(10))
	r.POST("/echo", func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too big")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("0123456789AB")) // 12 bytes
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 from limitBody, got %d", w.Code)
	}
}

func Test_groupWithPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// "/" and "" should mount at root
	root1 := groupWithPrefix(r, "/")
	root1.GET("/one", func(c *gin.Context) { c.String(http.StatusOK, "one") })
	root2 := groupWithPrefix(r, "")
	root2.GET("/two", func(c *gin.Context) { c.String(http.StatusOK, "two") })

	// non-root prefix
	api := groupWithPrefix(r, "/api")
	api.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	// Hit all three
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/one", nil)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "one" {
		t.Fatalf("GET /one got %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/two", nil)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "two" {
		t.Fatalf("GET /two got %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("GET /api/ping got %d %q", rec.Code, rec.Body.String())
	}
}

// Smoke test that a request traverses ratelimit + otel + security headers pipeline.
func TestPipeline_Smoke(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := testConfig("/api/v1")
	cfg.Security = config.SecurityConfig{EnableHSTS: true, HSTSMaxAge: time.Hour} // enabled (but only set on https)
	db := newTestDB(t, "routerdb_smoke")
	RegisterRoutes(r, db, cfg)

	// Any request goes through the middleware stack
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	// simulate https so HSTS could be eligible if middleware checks scheme
	req.URL.Scheme = "https"
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("pipeline GET /health = %d", w.Code)
	}
	// RequestID header should be present (from RequestID middleware)
	if rid := w.Header().Get("X-Request-ID"); rid == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
}
