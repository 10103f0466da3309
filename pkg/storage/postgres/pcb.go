package postgres

import (
	"context"
	"fmt"
	"time"

	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	pcbsTable = "pcbs"
)

// listColumns skips the reference image, which list views do not need.
var listColumns = []any{ //nolint: gochecknoglobals
	"id", "sum_accuracy", "result_ids", "original_filename", "created_at", "updated_at", "deleted_at",
}

// UpsertPCB inserts a summary or refreshes an existing, non-deleted one. The
// stored reference image is kept when the summary carries none.
func (p *PgSQL) UpsertPCB(ctx context.Context, pcb domain.PCBSummary) (*domain.PCBSummary, error) {
	var row PgPCB
	if err := row.FromDomain(pcb); err != nil {
		return nil, err
	}

	var stored PgPCB
	found, err := p.Builder.Insert(pcbsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"sum_accuracy":      goqu.L("EXCLUDED.sum_accuracy"),
			"result_ids":        goqu.L("EXCLUDED.result_ids"),
			"original_filename": goqu.L("COALESCE(EXCLUDED.original_filename, pcbs.original_filename)"),
			"original_image":    goqu.L("COALESCE(EXCLUDED.original_image, pcbs.original_image)"),
			"updated_at":        goqu.L("CURRENT_TIMESTAMP"),
		}).Where(goqu.T(pcbsTable).Col("deleted_at").IsNull())).
		Returning(&PgPCB{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not upsert pcb into pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return stored.ToDomain()
}

// PCBs returns summaries ordered by created_at DESC, id DESC.
func (p *PgSQL) PCBs(ctx context.Context, cursor time.Time, limit uint) (storage.PCBPage, error) {
	w := []goqu.Expression{
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	var rows []PgPCB
	if err := p.Builder.From(pcbsTable).
		Select(listColumns...).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.PCBPage{}, fmt.Errorf("could not fetch pcbs from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			nextCursor = &rows[len(rows)-1].CreatedAt
		}
	}

	pcbs, err := pgPCBsToDomain(rows)
	if err != nil {
		return storage.PCBPage{}, err
	}

	return storage.PCBPage{PCBs: pcbs, NextCursor: nextCursor}, nil
}

// AllPCBs returns every non-deleted summary in list order.
func (p *PgSQL) AllPCBs(ctx context.Context) ([]domain.PCBSummary, error) {
	var rows []PgPCB
	if err := p.Builder.From(pcbsTable).
		Select(listColumns...).
		Where(goqu.I("deleted_at").IsNull()).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch all pcbs from pg: %w", err)
	}

	return pgPCBsToDomain(rows)
}

// PCBByID returns a summary with its reference image, excluding soft-deleted rows.
func (p *PgSQL) PCBByID(ctx context.Context, id domain.PCBID) (*domain.PCBSummary, error) {
	return p.pcbByID(ctx, id, false)
}

// PCBByIDWithDeleted returns a summary even when it was soft-deleted.
func (p *PgSQL) PCBByIDWithDeleted(ctx context.Context, id domain.PCBID) (*domain.PCBSummary, error) {
	return p.pcbByID(ctx, id, true)
}

func (p *PgSQL) pcbByID(ctx context.Context, id domain.PCBID, withDeleted bool) (*domain.PCBSummary, error) {
	w := []goqu.Expression{
		goqu.I("id").Eq(int64(id)),
	}
	if !withDeleted {
		w = append(w, goqu.I("deleted_at").IsNull())
	}

	var row PgPCB
	found, err := p.Builder.From(pcbsTable).
		Where(w...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch pcb by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// SoftDeletePCB sets deleted_at and returns the deleted summary.
func (p *PgSQL) SoftDeletePCB(ctx context.Context, id domain.PCBID) (*domain.PCBSummary, error) {
	var row PgPCB
	found, err := p.Builder.Update(pcbsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(int64(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgPCB{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete pcb in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
