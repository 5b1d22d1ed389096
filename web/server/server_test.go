package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, NewServer(0, 1), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("Unexpected body %q", rec.Body.String())
	}
}

func TestScenes(t *testing.T) {
	rec := get(t, NewServer(0, 1), "/api/scenes")

	var listed []map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(listed) != len(scene.List()) {
		t.Errorf("Expected %d scenes, got %d", len(scene.List()), len(listed))
	}
}

func TestSceneConfig(t *testing.T) {
	s := NewServer(0, 1)

	rec := get(t, s, "/api/scene-config?scene=cornell-box")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var response struct {
		Defaults SceneSummary `json:"defaults"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if response.Defaults.Name != "cornell-box" || response.Defaults.Primitives == 0 {
		t.Errorf("Unexpected defaults %+v", response.Defaults)
	}

	if rec := get(t, s, "/api/scene-config?scene=nope"); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown scene, got %d", rec.Code)
	}
}

func TestRender_Formats(t *testing.T) {
	tests := []struct {
		format      string
		contentType string
		prefix      string
	}{
		{"png", "image/png", "\x89PNG"},
		{"ppm", "image/x-portable-pixmap", "P3\n16 9\n255\n"},
		{"bmp", "image/bmp", "BM"},
		{"tiff", "image/tiff", ""},
	}

	s := NewServer(0, 2)
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			rec := get(t, s, "/api/render?scene=two-checkered-spheres&width=16&spp=1&depth=3&format="+tt.format)
			if rec.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if got := rec.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("Expected content type %q, got %q", tt.contentType, got)
			}
			if !strings.HasPrefix(rec.Body.String(), tt.prefix) {
				t.Errorf("Body does not start with %q", tt.prefix)
			}
			if rec.Header().Get("X-Render-Samples") != "144" {
				t.Errorf("Expected 144 samples, got %q", rec.Header().Get("X-Render-Samples"))
			}
		})
	}
}

func TestRender_JSON(t *testing.T) {
	rec := get(t, NewServer(0, 1), "/api/render?scene=perlin-spheres&width=8&spp=2&depth=2&format=json&integrator=iterative")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response RenderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if response.Stats.Width != 8 || response.Stats.Height != 4 || response.Stats.TotalSamples != 64 {
		t.Errorf("Unexpected stats %+v", response.Stats)
	}

	image, err := base64.StdEncoding.DecodeString(response.ImageData)
	if err != nil {
		t.Fatalf("Image data is not base64: %v", err)
	}
	if !bytes.HasPrefix(image, []byte("\x89PNG")) {
		t.Error("Image data is not a PNG")
	}
}

func TestRender_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"width too large", "width=5000", http.StatusBadRequest},
		{"width not a number", "width=abc", http.StatusBadRequest},
		{"zero spp", "spp=0", http.StatusBadRequest},
		{"bad seed", "seed=1.5", http.StatusBadRequest},
		{"unknown format", "format=webp", http.StatusBadRequest},
		{"unknown integrator", "integrator=bdpt", http.StatusBadRequest},
		{"unknown scene", "scene=missing", http.StatusNotFound},
	}

	s := NewServer(0, 1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, "/api/render?"+tt.query)
			if rec.Code != tt.status {
				t.Errorf("Expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), `"error"`) {
				t.Errorf("Expected JSON error body, got %q", rec.Body.String())
			}
		})
	}
}

func TestParseIntParam(t *testing.T) {
	values := url.Values{"n": {"12"}, "bad": {"x"}, "big": {"99"}}

	if v, err := parseIntParam(values, "n", 1, 0, 20); err != nil || v != 12 {
		t.Errorf("Expected 12, got %d (%v)", v, err)
	}
	if v, err := parseIntParam(values, "missing", 7, 0, 20); err != nil || v != 7 {
		t.Errorf("Expected default 7, got %d (%v)", v, err)
	}
	if _, err := parseIntParam(values, "bad", 0, 0, 20); err == nil {
		t.Error("Expected error for non-numeric value")
	}
	if _, err := parseIntParam(values, "big", 0, 0, 20); err == nil {
		t.Error("Expected error for out-of-range value")
	}
}

func TestInspect(t *testing.T) {
	s := NewServer(0, 1)

	rec := get(t, s, "/api/inspect?scene=earth&width=32&x=16&y=9")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var hit InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &hit); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if !hit.Hit || hit.GeometryType != "sphere" || hit.MaterialType != "lambertian" {
		t.Errorf("Expected a lambertian sphere hit, got %+v", hit)
	}
	if !hit.FrontFace {
		t.Error("Camera ray should hit the outside of the globe")
	}

	rec = get(t, s, "/api/inspect?scene=earth&width=32&x=0&y=0")
	var miss InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &miss); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if miss.Hit {
		t.Errorf("Corner pixel should see only sky, got %+v", miss)
	}

	for _, query := range []string{"scene=earth&width=32&x=32&y=0", "scene=earth&width=32&x=1"} {
		if rec := get(t, s, "/api/inspect?"+query); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", query, rec.Code)
		}
	}
}
