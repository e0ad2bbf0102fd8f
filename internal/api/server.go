package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/romangod6/sitemap-builder/internal/builder"
)

type Server struct {
	router *gin.Engine
	server *http.Server
}

func NewServer(port int, b *builder.Builder) *Server {
	router := NewRouter(b)
	return &Server{
		router: router,
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

func (s *Server) Addr() string {
	return s.server.Addr
}

// NewRouter wires the preview routes onto a fresh gin engine.
func NewRouter(b *builder.Builder) *gin.Engine {
	router := gin.Default()

	// Setup CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	handler := NewHandler(b)

	router.GET("/sitemap.xml", handler.Sitemap)

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})

		api.GET("/items", handler.ListItems)
		api.GET("/stats", handler.Stats)
		api.POST("/generate", handler.Generate)
	}

	return router
}

// Start blocks serving requests. After Shutdown it returns http.ErrServerClosed,
// including when Shutdown ran before Start.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
