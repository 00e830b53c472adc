package sheet

import (
	"context"
	"strings"

	"github.com/okian/podium/internal/domain/cell"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/scoring"
	"github.com/okian/podium/pkg/logger"
)

// minRows is the smallest sheet that can hold a results table; anything
// shorter is skipped as a non-data sheet.
const minRows = 5

// minRowCells guards against caption or spacer rows masquerading as data.
const minRowCells = 3

// Option applies a configuration option to the Processor.
type Option func(*Processor)

// WithDefaultCategory sets the category used when a sheet carries no
// acceptable category label.
func WithDefaultCategory(category string) Option {
	return func(p *Processor) {
		if category != "" {
			p.defaultCategory = category
		}
	}
}

// WithLogger sets a custom logger for the processor.
func WithLogger(log logger.Logger) Option {
	return func(p *Processor) {
		if log != nil {
			p.logger = log
		}
	}
}

// Processor turns one worksheet into a scored batch of canonical records.
type Processor struct {
	locator         *HeaderLocator
	engine          *scoring.Engine
	defaultCategory string
	logger          logger.Logger
}

// NewProcessor creates a Processor scoring with the given engine.
func NewProcessor(engine *scoring.Engine, opts ...Option) *Processor {
	p := &Processor{
		locator:         NewHeaderLocator(),
		engine:          engine,
		defaultCategory: "General",
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Process runs the per-sheet pipeline: metadata, header location, row
// normalization, scoring. ok is false when the sheet is structurally
// skipped (too small, or no event name). A sheet that processes cleanly
// but yields no valid rows returns ok with an empty batch; the caller
// emits nothing for it.
func (p *Processor) Process(ctx context.Context, sheetName string, rows RawSheet) (Meta, []model.Result, bool) {
	if len(rows) < minRows {
		p.debug(ctx, "sheet too small, skipping",
			logger.String("sheet", sheetName),
			logger.Int("rows", len(rows)),
		)
		return Meta{}, nil, false
	}

	meta, ok := ExtractMeta(rows, sheetName, p.defaultCategory)
	if !ok {
		p.debug(ctx, "no event name, skipping sheet", logger.String("sheet", sheetName))
		return Meta{}, nil, false
	}

	cols, dataStart, found := p.locator.Locate(rows)
	p.debug(ctx, "header located",
		logger.String("event", meta.EventName),
		logger.Int("dataStart", dataStart),
		logger.Any("headerFound", found),
	)

	group := p.engine.IsGroup(meta.EventName)
	var batch []model.Result

	for i := dataStart; i < len(rows); i++ {
		if r, ok := p.processRow(rows, i, cols, meta, group); ok {
			batch = append(batch, r)
		}
	}

	return meta, batch, true
}

// processRow normalizes and scores a single data row. ok is false for
// rows rejected by validation; rejection never aborts the sheet.
func (p *Processor) processRow(rows RawSheet, i int, cols ColumnMap, meta Meta, group bool) (model.Result, bool) {
	row := rows[i]
	if len(row) < minRowCells {
		return model.Result{}, false
	}

	name := rows.At(i, cols.Name).String()
	if name == "" || strings.Contains(strings.ToLower(name), "name of") {
		// blank, or a repeated header/caption row leaking into the data
		return model.Result{}, false
	}

	grade := cell.Grade(rows.At(i, cols.Grade))
	place, impliedGradeA := cell.Place(rows.At(i, cols.Place))
	if grade == "" && (impliedGradeA || place != "") {
		grade = "A"
	}

	return model.Result{
		EventCode:   meta.EventCode,
		EventName:   meta.EventName,
		Category:    meta.Category,
		ChestNo:     rows.At(i, cols.Chest).String(),
		StudentName: name,
		ClassName:   rows.At(i, cols.Class).String(),
		School:      rows.At(i, cols.School).String(),
		Grade:       grade,
		Place:       place,
		Points:      p.engine.Total(place, grade, group),
	}, true
}

func (p *Processor) debug(ctx context.Context, msg string, fields ...logger.Field) {
	if p.logger != nil {
		p.logger.Debug(ctx, msg, fields...)
	}
}
