package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/log"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Parameter limits shared by the render and inspect endpoints.
const (
	minWidth   = 1
	maxWidth   = 2000
	maxSamples = 10000
	maxDepth   = 1000
)

// Server renders registered scenes over HTTP
type Server struct {
	port   int
	slots  chan struct{} // Bounds the number of renders running at once
	logger log.Logger
}

// NewServer creates a new web server. maxConcurrent below one allows a
// single render at a time.
func NewServer(port, maxConcurrent int) *Server {
	return &Server{
		port:   port,
		slots:  make(chan struct{}, max(1, maxConcurrent)),
		logger: log.New("server"),
	}
}

// Handler returns the routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Noticef("starting web server on http://localhost:%d", s.port)
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Notice("shutting down web server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errChan; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// SceneSummary describes a registered scene and its recommended settings
type SceneSummary struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	AspectRatio     float64 `json:"aspectRatio"`
	SamplesPerPixel int     `json:"samplesPerPixel"`
	MaxDepth        int     `json:"maxDepth"`
	Primitives      int     `json:"primitives"`
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the registered scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	infos := scene.List()
	names := make([]map[string]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, map[string]string{"name": info.Name, "description": info.Description})
	}
	writeJSON(w, http.StatusOK, names)
}

// handleSceneConfig returns the default configuration and parameter limits for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sc, err := scene.New(sceneName, scene.Options{})
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	summary := summarize(sc)
	response := map[string]interface{}{
		"scene":    summary,
		"defaults": summary,
		"limits": map[string]interface{}{
			"width":           map[string]int{"min": minWidth, "max": maxWidth},
			"samplesPerPixel": map[string]int{"min": 1, "max": maxSamples},
			"maxDepth":        map[string]int{"min": 1, "max": maxDepth},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

func summarize(sc *scene.Scene) SceneSummary {
	description := ""
	for _, info := range scene.List() {
		if info.Name == sc.Name {
			description = info.Description
		}
	}
	return SceneSummary{
		Name:            sc.Name,
		Description:     description,
		Width:           sc.CameraConfig.Width,
		Height:          sc.CameraConfig.Height(),
		AspectRatio:     sc.CameraConfig.AspectRatio,
		SamplesPerPixel: sc.SamplingConfig.SamplesPerPixel,
		MaxDepth:        sc.SamplingConfig.MaxDepth,
		Primitives:      sc.GetPrimitiveCount(),
	}
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, scene.ErrUnknownScene):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseInt64Param parses an unbounded 64-bit integer parameter
func parseInt64Param(values url.Values, key string, defaultValue int64) (int64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
