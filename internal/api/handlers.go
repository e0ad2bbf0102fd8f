package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/romangod6/sitemap-builder/internal/builder"
	"github.com/romangod6/sitemap-builder/internal/catalog"
	"github.com/romangod6/sitemap-builder/internal/models"
	"github.com/romangod6/sitemap-builder/internal/sitemap"
)

type Handler struct {
	builder *builder.Builder
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewHandler(b *builder.Builder) *Handler {
	return &Handler{builder: b}
}

// Sitemap renders the sitemap from the current data file on every request.
func (h *Handler) Sitemap(c *gin.Context) {
	document, _, err := h.builder.Document()
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", document)
}

func (h *Handler) ListItems(c *gin.Context) {
	pages, err := h.builder.Pages()
	if err != nil {
		h.fail(c, err)
		return
	}

	if pages == nil {
		pages = []models.ItemPage{}
	}

	c.JSON(http.StatusOK, pages)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.builder.Stats()
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Generate writes the sitemap file, same as the generate command.
func (h *Handler) Generate(c *gin.Context) {
	result, err := h.builder.Run()
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *Handler) fail(c *gin.Context, err error) {
	h.builder.Logger().LogError("Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

	var dsErr *catalog.DataSourceError
	var wErr *sitemap.WriteError
	switch {
	case errors.As(err, &dsErr):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load items"})
	case errors.As(err, &wErr):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to write sitemap"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
	}
}
