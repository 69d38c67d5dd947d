package api

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/nyasuto/fileguard/internal/config"
	"github.com/nyasuto/fileguard/internal/validator/binding"
	"github.com/nyasuto/fileguard/internal/validator/file"
)

type Server struct {
	mu       sync.RWMutex
	rule     *file.NotExists
	validate *validator.Validate

	checks   atomic.Int64
	rejected atomic.Int64

	port   string
	router *gin.Engine
	auth   *AuthManager
}

// NewServer wires the rule, its validator tag and the HTTP routes. opts are
// passed to the rule, e.g. file.WithFs in tests.
func NewServer(cfg *config.Config, opts ...file.Option) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	if cfg.Server.MaxUploadMB > 0 {
		router.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20
	}

	s := &Server{
		rule:   file.NewNotExists(file.ListDirs(cfg.Directories...), opts...),
		port:   cfg.Server.Port,
		router: router,
		auth:   NewAuthManager(cfg.Auth),
	}

	v, err := binding.New(s)
	if err != nil {
		return nil, fmt.Errorf("failed to set up validator: %w", err)
	}
	s.validate = v

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api/v1")
	{
		api.GET("/health", s.healthCheck)
		api.POST("/login", s.login)

		files := api.Group("/files")
		{
			files.POST("/check", s.checkPath)
			files.POST("/upload", s.checkUpload)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(s.AuthMiddleware())
		{
			protected.GET("/stats", s.getStats)

			dirs := protected.Group("/directories")
			{
				dirs.GET("", s.getDirectories)
				dirs.PUT("", s.setDirectories)
				dirs.POST("", s.addDirectories)
			}
		}
	}
}

func (s *Server) Start() error {
	fmt.Printf("Starting fileguard-server on port %s\n", s.port)
	return http.ListenAndServe(":"+s.port, s.router)
}

// Handler exposes the router, mainly for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Check runs the rule under the read lock. It satisfies binding.Checker.
func (s *Server) Check(in file.Input) file.Result {
	s.mu.RLock()
	res := s.rule.Check(in)
	s.mu.RUnlock()

	s.checks.Add(1)
	if !res.Valid {
		s.rejected.Add(1)
	}
	return res
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "fileguard-server",
	})
}

func (s *Server) getStats(c *gin.Context) {
	s.mu.RLock()
	dirs := len(s.rule.DirectorySlice())
	s.mu.RUnlock()

	c.JSON(http.StatusOK, APIResponse{
		Status: "success",
		Data: Stats{
			Checks:      s.checks.Load(),
			Rejected:    s.rejected.Load(),
			Directories: dirs,
		},
	})
}
