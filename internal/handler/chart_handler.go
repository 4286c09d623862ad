package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/chartwheel-backend-go/internal/chartindex"
	"github.com/jengzang/chartwheel-backend-go/internal/models"
	"github.com/jengzang/chartwheel-backend-go/internal/repository"
	"github.com/jengzang/chartwheel-backend-go/internal/service"
	"github.com/jengzang/chartwheel-backend-go/pkg/response"
)

// ChartHandler handles HTTP requests for chart snapshots and their derived
// artifacts
type ChartHandler struct {
	service      *service.ChartService
	defaultTheme string
}

// NewChartHandler creates a new chart handler
func NewChartHandler(service *service.ChartService, defaultTheme string) *ChartHandler {
	return &ChartHandler{service: service, defaultTheme: defaultTheme}
}

// Create handles POST /api/v1/charts
func (h *ChartHandler) Create(c *gin.Context) {
	var snapshot models.ChartSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		response.BadRequest(c, "Invalid snapshot body", err)
		return
	}

	id, err := h.service.Create(&snapshot)
	if err != nil {
		if errors.Is(err, chartindex.ErrMalformedWheel) {
			response.Error(c, http.StatusUnprocessableEntity, "Malformed wheel structure", err)
			return
		}
		response.InternalError(c, "Failed to store chart", err)
		return
	}

	response.Success(c, gin.H{"id": id})
}

// List handles GET /api/v1/charts
func (h *ChartHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.service.List(limit, offset)
	if err != nil {
		response.InternalError(c, "Failed to list charts", err)
		return
	}

	response.Success(c, gin.H{
		"data":  entries,
		"count": len(entries),
	})
}

// Get handles GET /api/v1/charts/:id
func (h *ChartHandler) Get(c *gin.Context) {
	snapshot, err := h.service.Get(c.Param("id"))
	if err != nil {
		h.notFoundOrInternal(c, err, "Failed to load chart")
		return
	}
	response.Success(c, snapshot)
}

// Delete handles DELETE /api/v1/charts/:id
func (h *ChartHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		h.notFoundOrInternal(c, err, "Failed to delete chart")
		return
	}
	response.Success(c, nil)
}

// Indexes handles GET /api/v1/charts/:id/indexes
func (h *ChartHandler) Indexes(c *gin.Context) {
	idx, err := h.service.Indexes(c.Param("id"))
	if err != nil {
		h.notFoundOrInternal(c, err, "Failed to build indexes")
		return
	}
	response.Success(c, idx)
}

// Layout handles GET /api/v1/charts/:id/layout
func (h *ChartHandler) Layout(c *gin.Context) {
	opts, ok := h.bindLayoutOptions(c)
	if !ok {
		return
	}

	lay, err := h.service.Layout(c.Param("id"), opts)
	if err != nil {
		h.notFoundOrInternal(c, err, "Failed to compute layout")
		return
	}
	response.Success(c, lay)
}

// SVG handles GET /api/v1/charts/:id/svg
func (h *ChartHandler) SVG(c *gin.Context) {
	opts, ok := h.bindLayoutOptions(c)
	if !ok {
		return
	}

	svg, err := h.service.SVG(c.Param("id"), opts)
	if err != nil {
		h.notFoundOrInternal(c, err, "Failed to render chart")
		return
	}

	c.Data(http.StatusOK, "image/svg+xml", svg)
}

// Stats handles GET /api/v1/charts/:id/stats
func (h *ChartHandler) Stats(c *gin.Context) {
	st, err := h.service.Stats(c.Param("id"))
	if err != nil {
		h.notFoundOrInternal(c, err, "Failed to compute statistics")
		return
	}
	response.Success(c, st)
}

// Preview handles POST /api/v1/layout/preview - stateless layout over a
// snapshot supplied in the body, nothing is stored
func (h *ChartHandler) Preview(c *gin.Context) {
	var req service.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid render request body", err)
		return
	}

	lay, err := h.service.ComputeLayout(&req.Snapshot, req.Options, req.Visual, req.Glyphs)
	if err != nil {
		if errors.Is(err, chartindex.ErrMalformedWheel) {
			response.Error(c, http.StatusUnprocessableEntity, "Malformed wheel structure", err)
			return
		}
		response.InternalError(c, "Failed to compute layout", err)
		return
	}

	response.Success(c, lay)
}

func (h *ChartHandler) notFoundOrInternal(c *gin.Context, err error, message string) {
	if errors.Is(err, repository.ErrChartNotFound) {
		response.NotFound(c, "Chart not found")
		return
	}
	if errors.Is(err, chartindex.ErrMalformedWheel) {
		response.Error(c, http.StatusUnprocessableEntity, "Malformed wheel structure", err)
		return
	}
	response.InternalError(c, message, err)
}

func (h *ChartHandler) bindLayoutOptions(c *gin.Context) (models.LayoutOptions, bool) {
	var opts models.LayoutOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		response.BadRequest(c, "Invalid layout options", err)
		return opts, false
	}
	if opts.Theme == "" {
		opts.Theme = h.defaultTheme
	}
	return opts, true
}
