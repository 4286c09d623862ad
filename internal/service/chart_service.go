package service

import (
	"bytes"

	"github.com/jengzang/chartwheel-backend-go/internal/chartindex"
	"github.com/jengzang/chartwheel-backend-go/internal/layout"
	"github.com/jengzang/chartwheel-backend-go/internal/models"
	"github.com/jengzang/chartwheel-backend-go/internal/render"
	"github.com/jengzang/chartwheel-backend-go/internal/repository"
	"github.com/jengzang/chartwheel-backend-go/internal/stats"
	"github.com/jengzang/chartwheel-backend-go/internal/theme"
)

// RenderRequest is one stateless layout request: a snapshot plus options and
// optional config overrides
type RenderRequest struct {
	Snapshot models.ChartSnapshot `json:"snapshot"`
	Options  models.LayoutOptions `json:"options"`
	Visual   *theme.VisualConfig  `json:"visual,omitempty"`
	Glyphs   *theme.GlyphConfig   `json:"glyphs,omitempty"`
}

// ChartService handles business logic for stored and ad-hoc charts. All
// derived artifacts (indexes, layouts, statistics) are recomputed per call;
// nothing is cached between snapshots.
type ChartService struct {
	repo *repository.ChartRepository
}

// NewChartService creates a new chart service
func NewChartService(repo *repository.ChartRepository) *ChartService {
	return &ChartService{repo: repo}
}

// Create validates and stores a snapshot, returning its id. Validation is
// the index build itself: a snapshot that cannot be indexed is rejected.
func (s *ChartService) Create(snapshot *models.ChartSnapshot) (string, error) {
	if _, err := chartindex.BuildIndexes(snapshot); err != nil {
		return "", err
	}
	if err := s.repo.Save(snapshot); err != nil {
		return "", err
	}
	return snapshot.ID, nil
}

// Get loads one stored snapshot
func (s *ChartService) Get(id string) (*models.ChartSnapshot, error) {
	return s.repo.Get(id)
}

// List returns stored charts, newest first
func (s *ChartService) List(limit, offset int) ([]models.ChartListEntry, error) {
	return s.repo.List(limit, offset)
}

// Delete removes one stored chart
func (s *ChartService) Delete(id string) error {
	return s.repo.Delete(id)
}

// Indexes rebuilds the lookup tables for a stored chart
func (s *ChartService) Indexes(id string) (*models.Indexes, error) {
	snapshot, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	return chartindex.BuildIndexes(snapshot)
}

// Layout computes the draw descriptors for a stored chart
func (s *ChartService) Layout(id string, opts models.LayoutOptions) (*models.ChartLayout, error) {
	snapshot, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	return s.ComputeLayout(snapshot, opts, nil, nil)
}

// SVG renders a stored chart to an SVG document
func (s *ChartService) SVG(id string, opts models.LayoutOptions) ([]byte, error) {
	snapshot, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}

	idx, err := chartindex.BuildIndexes(snapshot)
	if err != nil {
		return nil, err
	}

	visual := theme.MergeVisualConfig(nil, theme.Preset(opts.Theme))
	glyphs := theme.MergeGlyphConfig(nil)
	lay := layout.NewDriver(visual, glyphs).ComputeLayout(snapshot, idx, opts)

	var buf bytes.Buffer
	if err := render.WriteSVG(&buf, lay, visual, glyphs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Stats computes distribution statistics for a stored chart
func (s *ChartService) Stats(id string) (*stats.ChartStatistics, error) {
	snapshot, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}

	idx, err := chartindex.BuildIndexes(snapshot)
	if err != nil {
		return nil, err
	}

	return stats.Compute(snapshot, idx), nil
}

// ComputeLayout merges configuration and runs the layout driver over an
// arbitrary snapshot. Used both for stored charts and stateless previews.
func (s *ChartService) ComputeLayout(snapshot *models.ChartSnapshot, opts models.LayoutOptions, visual *theme.VisualConfig, glyphs *theme.GlyphConfig) (*models.ChartLayout, error) {
	idx, err := chartindex.BuildIndexes(snapshot)
	if err != nil {
		return nil, err
	}

	merged := theme.MergeVisualConfig(visual, theme.Preset(opts.Theme))
	mergedGlyphs := theme.MergeGlyphConfig(glyphs)

	return layout.NewDriver(merged, mergedGlyphs).ComputeLayout(snapshot, idx, opts), nil
}
