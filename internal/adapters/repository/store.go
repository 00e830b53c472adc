// Package repository defines the result store interface and errors.
package repository

import (
	"context"

	"github.com/okian/podium/internal/domain/model"
)

// Store provides replace-by-key persistence for canonical results plus the
// read paths consumed by the surrounding system.
type Store interface {
	// Replace atomically supersedes all records sharing key with batch:
	// prior records under the key are deleted, then batch is inserted.
	// Returns the number of records inserted.
	Replace(ctx context.Context, key model.ReplaceKey, batch []model.Result) (int, error)

	// SchoolStandings returns points summed per school, ordered
	// descending, with sequential 1-based ranks. Ties keep distinct
	// consecutive ranks in input order.
	SchoolStandings(ctx context.Context) ([]model.SchoolStanding, error)

	// Search runs a case-insensitive substring match over student name,
	// chest number, school and event name, most recently updated first,
	// capped at limit.
	Search(ctx context.Context, q string, limit int) ([]model.Result, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) int
}
