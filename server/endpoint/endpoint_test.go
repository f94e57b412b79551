package endpoint

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/pulse/component"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestPing_ReportsUptimeAndTimestamp(t *testing.T) {
	startedAt := time.Now().Add(-90 * time.Second)

	r := newTestRouter()
	r.GET("/ping", Ping(startedAt))

	before := time.Now().Unix()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	after := time.Now().Unix()

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp PingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
	if resp.Timestamp < before || resp.Timestamp > after {
		t.Errorf("expected timestamp within [%d, %d], got %d", before, after, resp.Timestamp)
	}
	if want := resp.Timestamp - startedAt.Unix(); resp.Uptime != want {
		t.Errorf("expected uptime == timestamp - start (%d), got %d", want, resp.Uptime)
	}
	if resp.Uptime < 90 {
		t.Errorf("expected at least 90s uptime, got %d", resp.Uptime)
	}
}

func TestPing_FreshProcessHasZeroUptime(t *testing.T) {
	r := newTestRouter()
	r.GET("/ping", Ping(time.Now()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	var resp PingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if resp.Uptime < 0 || resp.Uptime > 1 {
		t.Errorf("expected uptime near zero, got %d", resp.Uptime)
	}
}

func TestHealth_ExactPayload(t *testing.T) {
	r := newTestRouter()
	r.GET("/health", Health())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(body) != 1 || body["status"] != "ok" {
		t.Errorf(`expected exactly {"status":"ok"}, got %s`, w.Body.String())
	}
}

func TestStatus_AllHealthy(t *testing.T) {
	checker := func(ctx context.Context) []component.Health {
		return []component.Health{
			{Name: "redis", Status: component.StatusHealthy},
			{Name: "http-server", Status: component.StatusHealthy},
		}
	}

	r := newTestRouter()
	r.GET("/status", Status("pulse", checker))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if body.Status != "healthy" {
		t.Errorf("expected 'healthy', got %q", body.Status)
	}
	if body.Service != "pulse" {
		t.Errorf("expected service 'pulse', got %q", body.Service)
	}
}

func TestStatus_UnhealthyComponentReturns503(t *testing.T) {
	checker := func(ctx context.Context) []component.Health {
		return []component.Health{
			{Name: "redis", Status: component.StatusUnhealthy, Message: "ping failed"},
		}
	}

	r := newTestRouter()
	r.GET("/status", Status("pulse", checker))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestStatus_DegradedComponentStays200(t *testing.T) {
	checker := func(ctx context.Context) []component.Health {
		return []component.Health{
			{Name: "redis", Status: component.StatusDegraded},
		}
	}

	r := newTestRouter()
	r.GET("/status", Status("pulse", checker))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if body.Status != "degraded" {
		t.Errorf("expected 'degraded', got %q", body.Status)
	}
}

func TestStatus_NilChecker(t *testing.T) {
	r := newTestRouter()
	r.GET("/status", Status("pulse", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 with nil checker, got %d", w.Code)
	}
}

func TestVersion_ReportsBuildInfo(t *testing.T) {
	r := newTestRouter()
	r.GET("/version", Version())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := body["version"]; !ok {
		t.Error("expected a version field")
	}
}
