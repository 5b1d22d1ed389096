package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/integrator"
	"github.com/df07/go-recursive-raytracer/pkg/output"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// jsonFormat asks the render endpoint for a JSON envelope around a PNG
const jsonFormat = "json"

var contentTypes = map[output.Format]string{
	output.PPM:  "image/x-portable-pixmap",
	output.PNG:  "image/png",
	output.BMP:  "image/bmp",
	output.TIFF: "image/tiff",
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene           string // Scene name (e.g., "cornell-box")
	Width           int    // Image width, 0 keeps the scene default
	SamplesPerPixel int    // 0 keeps the scene default
	MaxDepth        int    // 0 keeps the scene default
	Seed            int64
	Integrator      string
	Format          string // An output format or "json"
}

// RenderResponse is returned for format=json
type RenderResponse struct {
	Scene     string `json:"scene"`
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
}

// Stats represents render statistics
type Stats struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	TotalPixels      int     `json:"totalPixels"`
	TotalSamples     int     `json:"totalSamples"`
	SamplesPerPixel  int     `json:"samplesPerPixel"`
	MaxDepth         int     `json:"maxDepth"`
	ElapsedMs        int64   `json:"elapsedMs"`
	AverageLuminance float64 `json:"averageLuminance"`
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{
		Scene:      query.Get("scene"),
		Integrator: query.Get("integrator"),
		Format:     query.Get("format"),
	}
	if req.Scene == "" {
		req.Scene = "default"
	}
	if req.Format == "" {
		req.Format = string(output.PNG)
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minWidth, maxWidth); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(query, "spp", 0, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "depth", 0, 1, maxDepth); err != nil {
		return nil, err
	}
	if req.Seed, err = parseInt64Param(query, "seed", 42); err != nil {
		return nil, err
	}
	if req.Format != jsonFormat {
		if _, err := output.ParseFormat(req.Format); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// buildScene creates the scene named by the request with its camera overrides
func (s *Server) buildScene(req *RenderRequest) (*scene.Scene, error) {
	return scene.New(req.Scene, scene.Options{
		Camera:  renderer.CameraConfig{Width: req.Width},
		Sampler: core.NewSeededSampler(req.Seed),
	})
}

// handleRender renders a single frame and writes it in the requested format
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request: %w", err))
		return
	}

	in, err := integrator.New(req.Integrator)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sc, err := s.buildScene(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	sampling := sc.SamplingConfig
	if req.SamplesPerPixel > 0 {
		sampling.SamplesPerPixel = req.SamplesPerPixel
	}
	if req.MaxDepth > 0 {
		sampling.MaxDepth = req.MaxDepth
	}

	select {
	case s.slots <- struct{}{}:
		defer func() { <-s.slots }()
	case <-ctx.Done():
		writeError(w, statusFor(ctx.Err()), ctx.Err())
		return
	}

	rt := renderer.NewRaytracer(sc, sc.CameraConfig.Width, sc.CameraConfig.Height())
	rt.SetSamplingConfig(sampling)
	rt.SetIntegrator(in)
	rt.SetSampler(core.NewSeededSampler(req.Seed + 1))

	s.logger.Infof("rendering %s at %dx%d, %d spp", sc.Name, sc.CameraConfig.Width, sc.CameraConfig.Height(), sampling.SamplesPerPixel)
	frame, stats, err := rt.Render(ctx)
	if err != nil {
		s.logger.Warningf("render of %s failed: %v", sc.Name, err)
		writeError(w, statusFor(err), err)
		return
	}

	if req.Format == jsonFormat {
		s.writeRenderJSON(w, sc.Name, frame, stats)
		return
	}

	format, _ := output.ParseFormat(req.Format)
	var buf bytes.Buffer
	if err := output.Encode(&buf, frame, format); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.Header().Set("X-Render-Elapsed-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (s *Server) writeRenderJSON(w http.ResponseWriter, sceneName string, frame *renderer.Frame, stats renderer.RenderStats) {
	var buf bytes.Buffer
	if err := output.Encode(&buf, frame, output.PNG); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		Scene:     sceneName,
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Stats: Stats{
			Width:            stats.Width,
			Height:           stats.Height,
			TotalPixels:      stats.TotalPixels,
			TotalSamples:     stats.TotalSamples,
			SamplesPerPixel:  stats.SamplesPerPixel,
			MaxDepth:         stats.MaxDepth,
			ElapsedMs:        stats.Duration.Milliseconds(),
			AverageLuminance: stats.AverageLuminance,
		},
	})
}
