package postgres_test

import (
	"context"
	"testing"
	"time"

	"pcbinspect/pkg/domain"

	"github.com/stretchr/testify/require"
)

func testResult(id domain.ResultID, pcbID domain.PCBID, accuracy float64) domain.InspectionResult {
	return domain.InspectionResult{
		ID:          id,
		PCBID:       pcbID,
		Accuracy:    accuracy,
		Description: domain.Grade(accuracy),
		Images: domain.ResultImages{
			domain.StageTemplate: {ID: 1, Filename: "t.jpg", Data: []byte("template")},
			domain.StageDiff: {
				ID:         2,
				Filename:   "d.jpg",
				UploadedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
				Data:       []byte("diff"),
			},
		},
	}
}

func TestPgSQL_UpsertResults(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		res, err := pg.UpsertResults(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})

	t.Run("insert and refresh", func(t *testing.T) {
		res, err := pg.UpsertResults(ctx, testResult(1, 7, 91), testResult(2, 7, 99))
		require.NoError(t, err)
		require.Len(t, res, 2)

		got, err := pg.ResultByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, domain.PCBID(7), got.PCBID)
		require.Equal(t, "The PCB picture has many errors.", got.Description)
		require.Len(t, got.Images, 2)
		require.Equal(t, []byte("diff"), got.Images[domain.StageDiff].Data)
		require.True(t, got.Images[domain.StageDiff].UploadedAt.Equal(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)))

		updated := testResult(1, 7, 50)
		res, err = pg.UpsertResults(ctx, updated)
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.InDelta(t, 50, res[0].Accuracy, 1e-9)
	})
}

func TestPgSQL_SoftDeleteResults(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	_, err := pg.UpsertResults(ctx, testResult(10, 1, 80), testResult(11, 1, 85), testResult(12, 2, 90))
	require.NoError(t, err)

	deleted, err := pg.SoftDeleteResult(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.False(t, deleted.DeletedAt.IsZero())

	got, err := pg.ResultByID(ctx, 10)
	require.NoError(t, err)
	require.Nil(t, got)

	// soft-deleted results are not refreshed by later syncs
	res, err := pg.UpsertResults(ctx, testResult(10, 1, 80))
	require.NoError(t, err)
	require.Empty(t, res)

	n, err := pg.SoftDeleteResultsByPCB(ctx, 1)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	got, err = pg.ResultByID(ctx, 12)
	require.NoError(t, err)
	require.NotNil(t, got)

	deleted, err = pg.SoftDeleteResult(ctx, 999)
	require.NoError(t, err)
	require.Nil(t, deleted)
}
