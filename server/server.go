// Package server exposes the field engine over HTTP as JSON arrays for a
// browser frontend. Handlers are thin adapters: all numeric behavior
// lives in the analytic and field packages.
package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/notargets/flowvis/analytic"
	"github.com/notargets/flowvis/scene"
	"github.com/notargets/flowvis/utils"
)

// NewRouter builds the API router.
func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/cylinder", CylinderHandler)
		api.POST("/field/evaluate", EvaluateHandler)
	}
	return r
}

func queryFloat(c *gin.Context, name string, def float64) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// CylinderHandler solves the rotating-cylinder flow for the query
// parameters vinf, radius, gamma, xmin/xmax/ymin/ymax, nx/ny, samples.
// Invalid parameters produce 400 before any computation.
func CylinderHandler(c *gin.Context) {
	p := analytic.CylinderParams{}
	var err error
	parse := func(dst *float64, name string, def float64) {
		if err != nil {
			return
		}
		*dst, err = queryFloat(c, name, def)
	}
	parse(&p.Vinf, "vinf", 1)
	parse(&p.Radius, "radius", 1)
	parse(&p.Circulation, "gamma", 0)
	parse(&p.Lx[0], "xmin", -5)
	parse(&p.Lx[1], "xmax", 5)
	parse(&p.Ly[0], "ymin", -5)
	parse(&p.Ly[1], "ymax", 5)
	if err == nil {
		p.Nx, err = queryInt(c, "nx", 0)
	}
	if err == nil {
		p.Ny, err = queryInt(c, "ny", 0)
	}
	if err == nil {
		p.SurfaceSamples, err = queryInt(c, "samples", 0)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sol, err := analytic.SolveCylinder(p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	slog.Debug("cylinder solved",
		"vinf", p.Vinf, "radius", p.Radius, "gamma", p.Circulation,
		"stagnation", len(sol.Stagnation))
	c.JSON(http.StatusOK, cylinderResponse(sol))
}

// AxisSpec describes one grid axis of an evaluation request.
type AxisSpec struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	N   int     `json:"n"`
}

// EvaluateRequest is the body of POST /api/field/evaluate.
type EvaluateRequest struct {
	Elements []scene.ElementSpec `json:"elements"`
	X        AxisSpec            `json:"x"`
	Y        AxisSpec            `json:"y"`
}

// EvaluateHandler assembles the requested elements into a field and
// evaluates it over the requested grid. An empty element list yields
// all-zero fields rather than an error.
func EvaluateHandler(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.X.N <= 0 || req.Y.N <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grid axes need n > 0"})
		return
	}
	if req.X.Min > req.X.Max || req.Y.Min > req.Y.Max {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grid axis endpoints reversed"})
		return
	}

	sc := scene.Scene{Elements: req.Elements}
	f, err := sc.Field()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	xAxis := utils.Linspace(req.X.Min, req.X.Max, req.X.N)
	yAxis := utils.Linspace(req.Y.Min, req.Y.Max, req.Y.N)
	X, Y := utils.Meshgrid(xAxis, yAxis)
	s := f.Evaluate(X, Y)
	slog.Debug("field evaluated", "elements", len(f.Elements), "points", len(X))

	c.JSON(http.StatusOK, gin.H{
		"x":   jsonFloats(xAxis),
		"y":   jsonFloats(yAxis),
		"u":   jsonFloats(s.U),
		"v":   jsonFloats(s.V),
		"phi": jsonFloats(s.Phi),
		"psi": jsonFloats(s.Psi),
		"cp":  jsonFloats(s.Cp),
	})
}
