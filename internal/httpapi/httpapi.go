// Package httpapi exposes the highlight-detection service over HTTP,
// built on gin-gonic/gin as in the other image-processing web services
// retrieved alongside this spec. It owns request validation and status
// codes only; actual processing is handed off to the dispatcher.
package httpapi

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/porkbrain/harriet-vision/internal/queue"
)

var dirNamePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Server wires the HTTP routes to the shared queue and configuration.
type Server struct {
	inputDir  string
	outputDir string
	queue     *queue.Queue
	log       zerolog.Logger

	engine *gin.Engine
}

// New builds a Server rooted at inputDir/outputDir, enqueuing accepted
// requests onto q.
func New(inputDir, outputDir string, q *queue.Queue, log zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		inputDir:  inputDir,
		outputDir: outputDir,
		queue:     q,
		log:       log.With().Str("component", "httpapi").Logger(),
		engine:    gin.New(),
	}
	s.engine.Use(s.requestLogger(), gin.Recovery())
	s.engine.POST("/highlights/", s.handleHighlights)
	return s
}

// Engine returns the underlying gin engine, e.g. for http.ListenAndServe.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("request")
	}
}

type highlightsRequest struct {
	Name string `json:"name"`
}

// handleHighlights implements spec.md §6.2's validation and dispatch
// contract exactly: alphanumeric name, INPUT/<dir> must exist,
// OUTPUT/<dir> must not exist (and is created here), then every regular
// file in INPUT/<dir> is enqueued.
func (s *Server) handleHighlights(c *gin.Context) {
	var req highlightsRequest
	if err := c.ShouldBindJSON(&req); err != nil || !dirNamePattern.MatchString(req.Name) {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	inputPath := filepath.Join(s.inputDir, req.Name)
	info, err := os.Stat(inputPath)
	if err != nil || !info.IsDir() {
		c.Status(http.StatusNotFound)
		return
	}

	outputPath := filepath.Join(s.outputDir, req.Name)
	if _, err := os.Stat(outputPath); err == nil {
		c.Status(http.StatusUnprocessableEntity)
		return
	} else if !errors.Is(err, os.ErrNotExist) {
		c.Status(http.StatusUnprocessableEntity)
		return
	}
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	entries, err := os.ReadDir(inputPath)
	if err != nil {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	for _, de := range entries {
		if !de.Type().IsRegular() {
			continue
		}
		path := filepath.Join(inputPath, de.Name())
		if err := s.queue.Enqueue(path); err != nil {
			if errors.Is(err, queue.ErrPoisoned) {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.Status(http.StatusServiceUnavailable)
			return
		}
	}

	c.Status(http.StatusAccepted)
}
