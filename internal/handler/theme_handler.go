package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/chartwheel-backend-go/internal/theme"
	"github.com/jengzang/chartwheel-backend-go/pkg/response"
)

// ThemeHandler serves the available theme presets and merged previews
type ThemeHandler struct{}

// NewThemeHandler creates a new theme handler
func NewThemeHandler() *ThemeHandler {
	return &ThemeHandler{}
}

// List handles GET /api/v1/themes
func (h *ThemeHandler) List(c *gin.Context) {
	response.Success(c, gin.H{"themes": theme.Names()})
}

// Get handles GET /api/v1/themes/:name - returns the fully merged config
// for one preset
func (h *ThemeHandler) Get(c *gin.Context) {
	name := c.Param("name")
	preset := theme.Preset(name)
	if preset == nil {
		response.NotFound(c, "Unknown theme")
		return
	}

	response.Success(c, gin.H{
		"visual": theme.MergeVisualConfig(nil, preset),
		"glyphs": theme.MergeGlyphConfig(nil),
	})
}
