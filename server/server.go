// Package server exposes the banner engine over HTTP. One POST endpoint
// takes a template plus its runtime inputs and returns the rendered SVG,
// so template authors can iterate without a local toolchain.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ByLCY/manifesto/content"
	"github.com/ByLCY/manifesto/fonts"
	"github.com/ByLCY/manifesto/layout"
	svgrenderer "github.com/ByLCY/manifesto/renderer/svg"
	"github.com/ByLCY/manifesto/template"
)

// RenderRequest is the body of POST /v1/render. Template is the raw
// template document; Content and Background are the per-render inputs.
type RenderRequest struct {
	Template   json.RawMessage   `json:"template" binding:"required"`
	Content    map[string]string `json:"content"`
	Background layout.Background `json:"background"`
	Minify     bool              `json:"minify"`
}

// Server wires the render pipeline behind a gin engine. The font table is
// shared across requests and frozen by the first render.
type Server struct {
	logger *zap.Logger
	fonts  *fonts.Table
	engine *gin.Engine
}

// New builds a Server with its routes registered.
func New(logger *zap.Logger, table *fonts.Table) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{logger: logger, fonts: table}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/healthz", s.handleHealth)
	engine.POST("/v1/render", s.handleRender)
	s.engine = engine
	return s
}

// Router returns the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	s.logger.Info("render API listening", zap.String("addr", addr))
	return s.engine.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleRender(c *gin.Context) {
	start := time.Now()
	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := template.ParseBytes(req.Template)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := layout.Build(doc, layout.BuildOptions{
		Content:    content.Map(req.Content),
		Background: req.Background,
		Fonts:      s.fonts,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r := svgrenderer.NewRendererWithOptions(svgrenderer.Options{
		Fonts:  s.fonts,
		Minify: req.Minify,
	})
	out, err := r.Render(result)
	if err != nil {
		s.logger.Error("render failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.logger.Info("rendered banner",
		zap.Int("components", len(result.Elements)),
		zap.Int("bytes", len(out)),
		zap.Duration("took", time.Since(start)))
	c.Data(http.StatusOK, "image/svg+xml", out)
}
