package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ByLCY/manifesto/fonts"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postRender(t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("encode request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/render", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	New(zap.NewNop(), fonts.NewTable()).Router().ServeHTTP(w, req)
	return w
}

// TestHealthz checks the liveness endpoint.
func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	New(zap.NewNop(), fonts.NewTable()).Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", w.Code)
	}
}

// TestRenderEndpoint posts a full template and expects an SVG back.
func TestRenderEndpoint(t *testing.T) {
	w := postRender(t, map[string]any{
		"template": map[string]any{
			"width": 1080, "height": 1350,
			"components": []map[string]any{
				{"type": "background_layer"},
				{"type": "text_only", "content_source": "headline"},
			},
		},
		"content": map[string]string{"headline": "SOLO OGGI"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), "SOLO OGGI") {
		t.Fatalf("response misses the headline:\n%s", w.Body.String())
	}
}

// TestRenderEndpointRejectsBadGeometry expects 400 on a malformed dimension.
func TestRenderEndpointRejectsBadGeometry(t *testing.T) {
	w := postRender(t, map[string]any{
		"template": map[string]any{
			"width": 100, "height": 100,
			"components": []map[string]any{
				{"type": "text_only", "content_source": "a",
					"geometry": map[string]any{"width": "banana"}},
			},
		},
		"content": map[string]string{"a": "x"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

// TestRenderEndpointRejectsMissingTemplate expects 400 when template is absent.
func TestRenderEndpointRejectsMissingTemplate(t *testing.T) {
	w := postRender(t, map[string]any{"content": map[string]string{}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}
