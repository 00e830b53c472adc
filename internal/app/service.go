// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/adapters/workbook"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/scoring"
	"github.com/okian/podium/internal/domain/sheet"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Sentinel kinds for upload input failures.
var (
	ErrEmptyUpload = errors.New("empty upload payload")
	ErrWorkbook    = errors.New("unreadable workbook")
)

// Service runs the workbook pipeline and exposes the read paths.
type Service struct {
	store     repository.Store
	engine    *scoring.Engine
	processor *sheet.Processor

	// Configuration
	groupKeywords   []string
	defaultCategory string
	maxSearchLimit  int

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the result store. Defaults to an in-memory store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithGroupKeywords sets the group-event keyword list.
func WithGroupKeywords(keywords []string) Option {
	return func(s *Service) {
		if len(keywords) > 0 {
			s.groupKeywords = keywords
		}
	}
}

// WithDefaultCategory sets the fallback category for unlabeled sheets.
func WithDefaultCategory(category string) Option {
	return func(s *Service) {
		if category != "" {
			s.defaultCategory = category
		}
	}
}

// WithMaxSearchLimit caps result search responses.
func WithMaxSearchLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxSearchLimit = limit
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		groupKeywords:   []string{"GROUP"},
		defaultCategory: "General",
		maxSearchLimit:  100,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	if s.store == nil {
		s.store = repository.NewMemoryStore()
	}

	s.engine = scoring.NewEngine(scoring.WithGroupKeywords(s.groupKeywords...))
	s.processor = sheet.NewProcessor(s.engine,
		sheet.WithDefaultCategory(s.defaultCategory),
		sheet.WithLogger(s.logger),
	)

	return s
}

// Stop releases the store when it owns external resources.
func (s *Service) Stop() {
	if closer, ok := s.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}

// Upload processes one workbook end to end: every sheet is normalized and
// scored, and each non-empty batch replaces the stored records under its
// (eventName, category) key. Sheets are processed sequentially in upload
// order; a store failure aborts the remaining sheets and surfaces to the
// caller, while batches already written stay in place.
//
// categoryNo is the uploader-supplied disambiguator. When present it
// overrides the per-sheet embedded category label for both the stored
// category and the replace key.
func (s *Service) Upload(ctx context.Context, data []byte, categoryNo *int) (model.Summary, error) {
	start := time.Now()
	uploadID := uuid.NewString()

	if len(data) == 0 {
		return model.Summary{}, ErrEmptyUpload
	}

	sheets, err := workbook.Decode(data)
	if err != nil {
		metrics.RecordUpload("rejected", float64(time.Since(start).Milliseconds()))
		return model.Summary{}, fmt.Errorf("%w: %w", ErrWorkbook, err)
	}

	s.logger.Info(ctx, "processing workbook",
		logger.String("uploadID", uploadID),
		logger.Int("sheets", len(sheets)),
	)

	var summary model.Summary
	for _, ws := range sheets {
		meta, batch, ok := s.processor.Process(ctx, ws.Name, ws.Rows)
		if !ok {
			metrics.RecordSheet("skipped")
			continue
		}
		if len(batch) == 0 {
			metrics.RecordSheet("empty")
			continue
		}

		if categoryNo != nil {
			applyCategory(&meta, batch, strconv.Itoa(*categoryNo))
		}

		n, err := s.store.Replace(ctx, model.ReplaceKey{EventName: meta.EventName, Category: meta.Category}, batch)
		if err != nil {
			metrics.RecordUpload("failed", float64(time.Since(start).Milliseconds()))
			s.logger.Error(ctx, "replace failed, aborting upload",
				logger.String("uploadID", uploadID),
				logger.String("event", meta.EventName),
				logger.String("category", meta.Category),
				logger.Error(err),
			)
			return model.Summary{}, fmt.Errorf("replace %q/%q: %w", meta.EventName, meta.Category, err)
		}

		metrics.RecordSheet("processed")
		summary.Count += n
		summary.Events = append(summary.Events, meta.EventName)
		s.logger.Info(ctx, "sheet stored",
			logger.String("uploadID", uploadID),
			logger.String("event", meta.EventName),
			logger.String("category", meta.Category),
			logger.Int("records", n),
		)
	}

	metrics.RecordUpload("success", float64(time.Since(start).Milliseconds()))
	metrics.UpdateRecordsTotal(s.store.Count(ctx))
	return summary, nil
}

// applyCategory rewrites the batch and its key with the uploader-supplied
// category number.
func applyCategory(meta *sheet.Meta, batch []model.Result, category string) {
	meta.Category = category
	for i := range batch {
		batch[i].Category = category
	}
}

// Standings returns the school leaderboard.
func (s *Service) Standings(ctx context.Context) ([]model.SchoolStanding, error) {
	return s.store.SchoolStandings(ctx)
}

// Search runs the capped free-text result search.
func (s *Service) Search(ctx context.Context, q string) ([]model.Result, error) {
	return s.store.Search(ctx, q, s.maxSearchLimit)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()
	count := s.store.Count(ctx)
	metrics.UpdateRecordsTotal(count)

	return map[string]interface{}{
		"records":         count,
		"groupKeywords":   s.groupKeywords,
		"defaultCategory": s.defaultCategory,
		"maxSearchLimit":  s.maxSearchLimit,
	}
}
