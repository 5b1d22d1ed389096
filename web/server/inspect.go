package server

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/integrator"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	UV           [2]float64             `json:"uv"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vecJSON(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// extractTextureInfo describes the texture behind a textured material
func extractTextureInfo(texture material.Texture) map[string]interface{} {
	switch t := texture.(type) {
	case *material.SolidColor:
		return map[string]interface{}{"type": "solid", "color": vecJSON(t.Color)}
	case *material.CheckerTexture:
		return map[string]interface{}{
			"type":      "checker",
			"frequency": t.Frequency,
			"even":      extractTextureInfo(t.Even),
			"odd":       extractTextureInfo(t.Odd),
		}
	case *material.NoiseTexture:
		return map[string]interface{}{"type": "noise", "scale": t.Scale, "color": vecJSON(t.Color)}
	case *material.ImageTexture:
		return map[string]interface{}{"type": "image", "width": t.Width, "height": t.Height}
	default:
		return map[string]interface{}{"type": "unknown"}
	}
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = extractTextureInfo(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecJSON(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		return "dielectric", properties

	case *material.DiffuseLight:
		properties["emit"] = extractTextureInfo(m.Emit)
		return "diffuse_light", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecJSON(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.MovingSphere:
		properties["center0"] = vecJSON(geom.Center0)
		properties["center1"] = vecJSON(geom.Center1)
		properties["time0"] = geom.Time0
		properties["time1"] = geom.Time1
		properties["radius"] = geom.Radius
		return "moving_sphere", properties

	case *geometry.XYRect:
		properties["x"] = [2]float64{geom.X0, geom.X1}
		properties["y"] = [2]float64{geom.Y0, geom.Y1}
		properties["z"] = geom.K
		return "xy_rect", properties

	case *geometry.XZRect:
		properties["x"] = [2]float64{geom.X0, geom.X1}
		properties["z"] = [2]float64{geom.Z0, geom.Z1}
		properties["y"] = geom.K
		return "xz_rect", properties

	case *geometry.YZRect:
		properties["y"] = [2]float64{geom.Y0, geom.Y1}
		properties["z"] = [2]float64{geom.Z0, geom.Z1}
		properties["x"] = geom.K
		return "yz_rect", properties

	case *geometry.FlipFace:
		return extractGeometryInfo(geom.Shape)

	case *geometry.Box:
		properties["min"] = vecJSON(geom.Min)
		properties["max"] = vecJSON(geom.Max)
		return "box", properties

	default:
		return "unknown", properties
	}
}

// InspectResult contains the hit record and the primitive an inspection ray struck
type InspectResult struct {
	Hit       bool
	HitRecord *material.HitRecord
	Shape     geometry.Shape // nil when the primitive could not be identified
}

// inspectPixel casts a ray through the center of pixel (x, y), row 0 at the
// top, and returns information about the first object hit
func inspectPixel(sc *scene.Scene, pixelX, pixelY int) InspectResult {
	width := sc.CameraConfig.Width
	height := sc.CameraConfig.Height()

	s := (float64(pixelX) + 0.5) / float64(max(1, width-1))
	t := (float64(height-1-pixelY) + 0.5) / float64(max(1, height-1))

	// Fixed seed so the lens and shutter samples repeat between requests
	sampler := core.NewSeededSampler(0)
	ray := sc.Camera.GetRay(s, t, sampler)

	hit, isHit := sc.World.Hit(ray, integrator.ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return InspectResult{Hit: false}
	}

	// The BVH returns only the hit record, so find the primitive at the same distance
	for _, shape := range sc.Objects.Objects {
		if shapeHit, ok := shape.Hit(ray, integrator.ShadowAcneEpsilon, hit.T+integrator.ShadowAcneEpsilon); ok && shapeHit.T == hit.T {
			return InspectResult{Hit: true, HitRecord: hit, Shape: shape}
		}
	}

	return InspectResult{Hit: true, HitRecord: hit}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid scene parameters: %w", err))
		return
	}

	sc, err := s.buildScene(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	query := r.URL.Query()
	if query.Get("x") == "" || query.Get("y") == "" {
		writeError(w, http.StatusBadRequest, errors.New("x and y are required"))
		return
	}
	pixelX, err := parseIntParam(query, "x", 0, 0, sc.CameraConfig.Width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	pixelY, err := parseIntParam(query, "y", 0, 0, sc.CameraConfig.Height()-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result := inspectPixel(sc, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, materialProps := extractMaterialInfo(result.HitRecord.Material)
	geometryType, geometryProps := extractGeometryInfo(result.Shape)

	hit := result.HitRecord
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecJSON(hit.Point),
		Normal:       vecJSON(hit.Normal),
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		UV:           [2]float64{hit.U, hit.V},
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}
