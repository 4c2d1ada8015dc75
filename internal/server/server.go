package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rezonia/invoice-builder/internal/export"
	"github.com/rezonia/invoice-builder/internal/model"
	"github.com/rezonia/invoice-builder/internal/render"
	"github.com/rezonia/invoice-builder/internal/store"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API for editing and exporting the invoice
type Server struct {
	config     *Config
	router     *gin.Engine
	httpServer *http.Server
	store      *store.Store
	pipeline   *export.Pipeline
	logger     *zap.Logger
}

// NewServer creates a new API server around an injected store and export
// pipeline.
func NewServer(config *Config, st *store.Store, pipeline *export.Pipeline, logger *zap.Logger) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config:   config,
		router:   router,
		store:    st,
		pipeline: pipeline,
		logger:   logger,
	}
	s.httpServer = &http.Server{
		Addr:         config.Address,
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		// Invoice content
		v1.GET("/invoice", s.handleGetInvoice)
		v1.PATCH("/invoice", s.handleUpdateInvoice)

		// Line items
		v1.POST("/invoice/items", s.handleAddItem)
		v1.PATCH("/invoice/items/:id", s.handleUpdateItem)
		v1.DELETE("/invoice/items/:id", s.handleRemoveItem)

		// Presentation settings
		v1.GET("/settings", s.handleGetSettings)
		v1.PATCH("/settings", s.handleUpdateSettings)
		v1.GET("/templates", s.handleTemplates)

		// Rendered document and exports
		v1.GET("/preview", s.handlePreview)
		v1.POST("/export/:format", s.handleExport)
	}
}

// Run starts the HTTP server. It returns http.ErrServerClosed after a
// Shutdown call.
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting new requests and drains in-flight ones until
// ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleGetInvoice(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Data())
}

func (s *Server) handleUpdateInvoice(c *gin.Context) {
	var req updateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	s.store.UpdateInvoiceData(req.toPatch())
	c.JSON(http.StatusOK, s.store.Data())
}

func (s *Server) handleAddItem(c *gin.Context) {
	item := s.store.AddItem()
	c.JSON(http.StatusCreated, item)
}

func (s *Server) handleUpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	// Unknown ids are a silent no-op in the store; the response always
	// reflects the current state.
	s.store.UpdateItem(c.Param("id"), req.toPatch())
	c.JSON(http.StatusOK, s.store.Data())
}

func (s *Server) handleRemoveItem(c *gin.Context) {
	s.store.RemoveItem(c.Param("id"))
	c.JSON(http.StatusOK, s.store.Data())
}

func (s *Server) handleGetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Settings())
}

func (s *Server) handleUpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	patch := req.toPatch()
	if bad := patch.Validate(); len(bad) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid enum value", Details: bad})
		return
	}
	s.store.UpdateSettings(patch)
	c.JSON(http.StatusOK, s.store.Settings())
}

func (s *Server) handleTemplates(c *gin.Context) {
	current := s.store.Settings().Template
	variants := model.TemplateVariants()
	out := make([]TemplateInfo, 0, len(variants))
	for _, v := range variants {
		out = append(out, TemplateInfo{Name: string(v), Current: v == current})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handlePreview(c *gin.Context) {
	html, err := render.RenderHTML(s.store.Data(), s.store.Settings())
	if err != nil {
		s.logger.Error("preview render failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "render failed"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) handleExport(c *gin.Context) {
	format := export.Format(c.Param("format"))
	if !format.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unsupported format %q", c.Param("format"))})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Minute)
	defer cancel()

	result, err := s.pipeline.Export(ctx, format)
	if err != nil {
		// The pipeline already logged the failure; map it to a status.
		var notFound *model.TargetNotFoundError
		switch {
		case errors.Is(err, model.ErrExportBusy):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "export already in progress"})
		case errors.As(err, &notFound):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "capture target not found"})
		default:
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	c.Data(http.StatusOK, result.ContentType(), result.Data)
}
