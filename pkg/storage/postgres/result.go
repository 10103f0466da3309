package postgres

import (
	"context"
	"fmt"

	"pcbinspect/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	resultsTable = "results"
)

// UpsertResults inserts results or refreshes existing, non-deleted ones.
func (p *PgSQL) UpsertResults(ctx context.Context, results ...domain.InspectionResult) ([]domain.InspectionResult, error) {
	if len(results) == 0 {
		return nil, nil
	}

	rows, err := domainResultsToPg(results)
	if err != nil {
		return nil, err
	}

	var stored []PgResult
	if err := p.Builder.Insert(resultsTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"pcb_id":      goqu.L("EXCLUDED.pcb_id"),
			"accuracy":    goqu.L("EXCLUDED.accuracy"),
			"description": goqu.L("EXCLUDED.description"),
			"images":      goqu.L("EXCLUDED.images"),
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		}).Where(goqu.T(resultsTable).Col("deleted_at").IsNull())).
		Returning(&PgResult{}).
		Executor().ScanStructsContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not upsert results into pg: %w", err)
	}

	return pgResultsToDomain(stored)
}

// ResultByID returns a result, excluding soft-deleted rows.
func (p *PgSQL) ResultByID(ctx context.Context, id domain.ResultID) (*domain.InspectionResult, error) {
	var row PgResult
	found, err := p.Builder.From(resultsTable).
		Where(
			goqu.I("id").Eq(int64(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch result by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// SoftDeleteResult sets deleted_at and returns the deleted result.
func (p *PgSQL) SoftDeleteResult(ctx context.Context, id domain.ResultID) (*domain.InspectionResult, error) {
	var row PgResult
	found, err := p.Builder.Update(resultsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(int64(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgResult{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete result in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// SoftDeleteResultsByPCB sets deleted_at on every live result of a PCB.
func (p *PgSQL) SoftDeleteResultsByPCB(ctx context.Context, pcbID domain.PCBID) (int64, error) {
	res, err := p.Builder.Update(resultsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("pcb_id").Eq(int64(pcbID)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete results of pcb in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count deleted results: %w", err)
	}

	return n, nil
}
