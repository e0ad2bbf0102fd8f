// Package builder runs a sitemap generation: load items, render, write.
package builder

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/romangod6/sitemap-builder/config"
	"github.com/romangod6/sitemap-builder/internal/catalog"
	"github.com/romangod6/sitemap-builder/internal/models"
	"github.com/romangod6/sitemap-builder/internal/sitemap"
	"github.com/romangod6/sitemap-builder/internal/slug"
)

// Logger is the subset of utils.RunLogger the builder needs.
type Logger interface {
	LogInfo(format string, v ...interface{})
	LogError(format string, v ...interface{})
	LogDebug(format string, v ...interface{})
}

type Builder struct {
	source     catalog.Source
	options    sitemap.Options
	outputPath string
	utc        bool
	now        func() time.Time
	logger     Logger
}

// Result describes a finished run.
type Result struct {
	RunID      uuid.UUID `json:"runId"`
	OutputPath string    `json:"outputPath"`
	Date       string    `json:"date"`
	Stats      Stats     `json:"stats"`
}

// Stats counts the entries of a sitemap by kind.
type Stats struct {
	Homepage   int `json:"homepage"`
	Items      int `json:"items"`
	Categories int `json:"categories"`
	Total      int `json:"total"`
}

func NewBuilder(source catalog.Source, cfg *config.Config, logger Logger) *Builder {
	return &Builder{
		source: source,
		options: sitemap.Options{
			SiteURL:    cfg.Site.URL,
			Categories: cfg.Sitemap.Categories,
			Comments:   cfg.Output.Comments,
		},
		outputPath: cfg.Output.File,
		utc:        cfg.Sitemap.UTC,
		now:        time.Now,
		logger:     logger,
	}
}

// WithClock replaces the time source; the run date is taken from it once.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Logger returns the logger the builder reports progress and failures to.
func (b *Builder) Logger() Logger {
	return b.logger
}

func (b *Builder) Options() sitemap.Options {
	return b.options
}

// Today is the run date, in UTC unless configured otherwise.
func (b *Builder) Today() time.Time {
	t := b.now()
	if b.utc {
		return t.UTC()
	}
	return t.Local()
}

// Run regenerates the sitemap file. On a data source or write failure the
// previous file, if any, is left as it was.
func (b *Builder) Run() (*Result, error) {
	runID := uuid.New()
	b.logger.LogInfo("Starting sitemap generation (run %s)...", runID)

	items, err := b.source.LoadItems()
	if err != nil {
		b.logger.LogError("Error loading items: %v", err)
		return nil, err
	}
	b.logger.LogInfo("Found %d items in database", len(items))

	today := b.Today()
	document := sitemap.Generate(items, b.options, today)
	b.logger.LogDebug("Rendered %d bytes", len(document))

	if err := sitemap.Write(document, b.outputPath); err != nil {
		b.logger.LogError("Error writing sitemap: %v", err)
		return nil, err
	}

	result := &Result{
		RunID:      runID,
		OutputPath: b.outputPath,
		Date:       today.Format(sitemap.DateLayout),
		Stats:      b.count(items),
	}
	b.logger.LogInfo("Sitemap generated successfully!")
	b.logger.LogInfo("  Output: %s", result.OutputPath)
	b.logger.LogInfo("  Total URLs: %d", result.Stats.Total)
	return result, nil
}

// Document loads the items and renders the sitemap without writing it.
func (b *Builder) Document() ([]byte, []models.Item, error) {
	items, err := b.source.LoadItems()
	if err != nil {
		return nil, nil, err
	}
	return sitemap.Generate(items, b.options, b.Today()), items, nil
}

// Stats loads the items and counts the entries a run would produce.
func (b *Builder) Stats() (Stats, error) {
	items, err := b.source.LoadItems()
	if err != nil {
		return Stats{}, err
	}
	return b.count(items), nil
}

// Pages loads the items together with their slugs and page URLs.
func (b *Builder) Pages() ([]models.ItemPage, error) {
	items, err := b.source.LoadItems()
	if err != nil {
		return nil, err
	}

	pages := make([]models.ItemPage, 0, len(items))
	for _, item := range items {
		pages = append(pages, models.ItemPage{
			Item: item,
			Slug: slug.Slugify(item.Name),
			URL:  sitemap.ItemURL(b.options.SiteURL, item),
		})
	}
	return pages, nil
}

func (b *Builder) count(items []models.Item) Stats {
	s := Stats{
		Homepage:   1,
		Items:      len(items),
		Categories: len(b.options.Categories),
	}
	s.Total = s.Homepage + s.Items + s.Categories
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("homepage=%d items=%d categories=%d total=%d", s.Homepage, s.Items, s.Categories, s.Total)
}
