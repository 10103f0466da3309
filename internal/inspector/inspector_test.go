package inspector_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pcbinspect/internal/inspector"
	mockinspector "pcbinspect/internal/inspector/mock"
	mockbackend "pcbinspect/pkg/backend/mock"
	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/serrors"
	"pcbinspect/pkg/storage"
	mockstorage "pcbinspect/pkg/storage/mock"
)

var (
	jpg    = domain.Upload{Name: "board.jpg", Data: []byte{0xff, 0xd8, 0xff}}
	errBad = errors.New("boom")
)

type fixture struct {
	ctrl     *gomock.Controller
	backend  *mockbackend.MockClient
	storage  *mockstorage.MockStorage
	notifier *mockinspector.MockNotifier
	svc      inspector.Inspector
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:     ctrl,
		backend:  mockbackend.NewMockClient(ctrl),
		storage:  mockstorage.NewMockStorage(ctrl),
		notifier: mockinspector.NewMockNotifier(ctrl),
	}
	f.svc = inspector.New(f.backend, f.storage, f.notifier, inspector.Options{MaxAttempts: 3, UniquePeriod: time.Minute})

	return f
}

// expectWithTx wires Storage.WithTx to execute the callback with a MockAllStorage.
func (f *fixture) expectWithTx(fn func(tx *mockstorage.MockAllStorage)) {
	f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(f.ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestInspector_Captures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.ErrorIs(t, f.svc.PutCapture(ctx, "nope", jpg), serrors.ErrBadRequest)
	require.ErrorIs(t, f.svc.PutCapture(ctx, inspector.SlotTemplate, domain.Upload{Name: "a.gif", Data: []byte{1}}),
		serrors.ErrBadRequest)

	require.NoError(t, f.svc.PutCapture(ctx, inspector.SlotTemplate, jpg))
	got, ok := f.svc.Capture(ctx, inspector.SlotTemplate)
	require.True(t, ok)
	require.Equal(t, jpg, got)

	f.svc.RemoveCapture(ctx, inspector.SlotTemplate)
	_, ok = f.svc.Capture(ctx, inspector.SlotTemplate)
	require.False(t, ok)
}

func TestInspector_CaptureDetected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.svc.CaptureDetected(ctx, inspector.SlotFactory, "pcb.jpg", &domain.Detection{Detected: false})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	det := &domain.Detection{Detected: true, PCBImage: []byte{1, 2, 3}}
	require.NoError(t, f.svc.CaptureDetected(ctx, inspector.SlotFactory, "pcb.jpg", det))

	got, ok := f.svc.Capture(ctx, inspector.SlotFactory)
	require.True(t, ok)
	require.Equal(t, "pcb.jpg", got.Name)
	require.Equal(t, det.PCBImage, got.Data)
}

func TestInspector_Analyze(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Analyze(ctx)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	require.NoError(t, f.svc.PutCapture(ctx, inspector.SlotTemplate, jpg))
	_, err = f.svc.Analyze(ctx)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	defective := domain.Upload{Name: "bad.png", Data: []byte{0x89, 'P', 'N', 'G'}}
	require.NoError(t, f.svc.PutCapture(ctx, inspector.SlotDefective, defective))

	want := &domain.Analysis{Detected: true, Images: map[domain.Stage][]byte{domain.StageDiff: {1}}}
	f.backend.EXPECT().PrepareAnalysis(gomock.Any(), jpg, defective).Return(want, nil)

	got, err := f.svc.Analyze(ctx)
	require.NoError(t, err)
	require.Same(t, want, got)
}

func TestInspector_Analyze_BackendError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.PutCapture(ctx, inspector.SlotTemplate, jpg))
	require.NoError(t, f.svc.PutCapture(ctx, inspector.SlotDefective, jpg))
	f.backend.EXPECT().PrepareAnalysis(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnavailable, "down"))

	_, err := f.svc.Analyze(ctx)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestInspector_Register(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	require.NoError(t, f.svc.PutCapture(ctx, inspector.SlotFactory, jpg))
	f.backend.EXPECT().CreatePCB(gomock.Any(), jpg).Return(domain.PCBID(7), nil)
	f.storage.EXPECT().UpsertPCB(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.PCBSummary) (*domain.PCBSummary, error) {
			require.Equal(t, domain.PCBID(7), p.ID)
			require.NotNil(t, p.Original)
			require.Equal(t, jpg.Data, p.Original.Data)

			return &p, nil
		})

	id, err := f.svc.Register(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.PCBID(7), id)
}

func TestInspector_History(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.History(ctx, "yesterday", 10)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	cursor := time.Date(2025, 3, 1, 12, 0, 0, 500, time.UTC)
	next := cursor.Add(-time.Hour)
	f.storage.EXPECT().PCBs(gomock.Any(), cursor, uint(2)).Return(storage.PCBPage{
		PCBs:       []domain.PCBSummary{{ID: 1}, {ID: 2}},
		NextCursor: &next,
	}, nil)

	pcbs, nextCursor, err := f.svc.History(ctx, cursor.Format(time.RFC3339Nano), 2)
	require.NoError(t, err)
	require.Len(t, pcbs, 2)
	require.Equal(t, next.Format(time.RFC3339Nano), nextCursor)
}

func TestSummarize(t *testing.T) {
	stats := inspector.Summarize(nil)
	require.Equal(t, domain.HistoryStats{}, stats)

	stats = inspector.Summarize([]domain.PCBSummary{
		{ID: 1, SumAccuracy: 90},
		{ID: 2, SumAccuracy: 50},
		{ID: 3, SumAccuracy: 10},
		{ID: 4, SumAccuracy: 50.5},
	})
	require.Equal(t, 4, stats.Total)
	require.Equal(t, 2, stats.Passed)
	require.InDelta(t, 50.125, stats.AverageAccuracy, 1e-9)
	require.NotNil(t, stats.FirstFailure)
	require.Equal(t, domain.PCBID(2), *stats.FirstFailure)
}

func TestInspector_Summary(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().AllPCBs(gomock.Any()).Return([]domain.PCBSummary{{ID: 1, SumAccuracy: 80}}, nil)
	stats, err := f.svc.Summary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, stats.Passed)
	require.Nil(t, stats.FirstFailure)

	f.storage.EXPECT().AllPCBs(gomock.Any()).Return(nil, errBad)
	_, err = f.svc.Summary(context.Background())
	require.ErrorIs(t, err, errBad)
}

func TestInspector_Result_Local(t *testing.T) {
	f := newFixture(t)

	local := &domain.InspectionResult{ID: 5, PCBID: 1, Accuracy: 99}
	f.storage.EXPECT().ResultByID(gomock.Any(), domain.ResultID(5)).Return(local, nil)

	got, err := f.svc.Result(context.Background(), 5)
	require.NoError(t, err)
	require.Same(t, local, got)
}

func TestInspector_Result_FallsBackToBackend(t *testing.T) {
	f := newFixture(t)

	remote := &domain.InspectionResult{ID: 5, PCBID: 1, Accuracy: 99}
	f.storage.EXPECT().ResultByID(gomock.Any(), domain.ResultID(5)).Return(nil, nil)
	f.backend.EXPECT().Result(gomock.Any(), domain.ResultID(5)).Return(remote, nil)
	f.storage.EXPECT().UpsertResults(gomock.Any(), *remote).Return(nil, errBad)

	got, err := f.svc.Result(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, remote, got)
}

func TestInspector_Result_NotFound(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().ResultByID(gomock.Any(), domain.ResultID(5)).Return(nil, nil)
	f.backend.EXPECT().Result(gomock.Any(), domain.ResultID(5)).Return(nil, serrors.With(serrors.ErrNotFound, "gone"))

	_, err := f.svc.Result(context.Background(), 5)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestInspector_DeletePCB(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.backend.EXPECT().DeletePCB(gomock.Any(), domain.PCBID(3)).Return(nil),
		f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cb func(storage.AllStorage) error) error {
				tx := mockstorage.NewMockAllStorage(f.ctrl)
				tx.EXPECT().SoftDeletePCB(gomock.Any(), domain.PCBID(3)).Return(nil, nil)
				tx.EXPECT().SoftDeleteResultsByPCB(gomock.Any(), domain.PCBID(3)).Return(int64(0), nil)

				return cb(tx)
			}),
	)

	require.NoError(t, f.svc.DeletePCB(context.Background(), 3))
}

func TestInspector_DeletePCB_UpstreamFailureKeepsLocal(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().DeletePCB(gomock.Any(), domain.PCBID(3)).Return(serrors.With(serrors.ErrUnavailable, "down"))

	err := f.svc.DeletePCB(context.Background(), 3)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestInspector_DeletePCB_NotFoundAnywhere(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().DeletePCB(gomock.Any(), domain.PCBID(3)).Return(serrors.With(serrors.ErrNotFound, "nope"))
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SoftDeletePCB(gomock.Any(), domain.PCBID(3)).Return(nil, nil)
		tx.EXPECT().SoftDeleteResultsByPCB(gomock.Any(), domain.PCBID(3)).Return(int64(0), nil)
	})

	err := f.svc.DeletePCB(context.Background(), 3)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestInspector_DeletePCB_OnlyLocal(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().DeletePCB(gomock.Any(), domain.PCBID(3)).Return(serrors.With(serrors.ErrNotFound, "nope"))
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SoftDeletePCB(gomock.Any(), domain.PCBID(3)).Return(&domain.PCBSummary{ID: 3}, nil)
		tx.EXPECT().SoftDeleteResultsByPCB(gomock.Any(), domain.PCBID(3)).Return(int64(2), nil)
	})

	require.NoError(t, f.svc.DeletePCB(context.Background(), 3))
}

func TestInspector_DeleteResult(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().DeleteResult(gomock.Any(), domain.ResultID(9)).Return(nil)
	f.storage.EXPECT().SoftDeleteResult(gomock.Any(), domain.ResultID(9)).Return(&domain.InspectionResult{ID: 9}, nil)
	require.NoError(t, f.svc.DeleteResult(context.Background(), 9))

	f.backend.EXPECT().DeleteResult(gomock.Any(), domain.ResultID(9)).Return(serrors.With(serrors.ErrNotFound, "nope"))
	f.storage.EXPECT().SoftDeleteResult(gomock.Any(), domain.ResultID(9)).Return(nil, nil)
	require.ErrorIs(t, f.svc.DeleteResult(context.Background(), 9), serrors.ErrNotFound)
}

func TestInspector_RequestSync(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.RequestSync(context.Background(), 0)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	f.storage.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			job, ok := args.(inspector.SyncJobArgs)
			require.True(t, ok)
			require.Equal(t, int64(4), job.PCBID)

			opts := job.InsertOpts()
			require.Equal(t, 3, opts.MaxAttempts)
			require.True(t, opts.UniqueOpts.ByArgs)
			require.Equal(t, time.Minute, opts.UniqueOpts.ByPeriod)

			return false, nil
		})

	added, err := f.svc.RequestSync(context.Background(), 4)
	require.NoError(t, err)
	require.False(t, added)
}

func TestInspector_SyncAll(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().AllResults(gomock.Any()).Return([]domain.PCBSummary{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil).Times(2)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
	})

	n, err := f.svc.SyncAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestInspector_Sync_StoresNewResultsAndNotifies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.backend.EXPECT().WorkingResults(gomock.Any(), domain.PCBID(1)).Return(&domain.PCBSummary{
		ID: 1, SumAccuracy: 72.5, ResultIDs: []domain.ResultID{10, 11, 12},
	}, nil)
	f.storage.EXPECT().PCBByIDWithDeleted(gomock.Any(), domain.PCBID(1)).Return(&domain.PCBSummary{
		ID: 1, ResultIDs: []domain.ResultID{10}, Original: &domain.StoredImage{Data: []byte{1}},
	}, nil)
	f.backend.EXPECT().Result(gomock.Any(), domain.ResultID(11)).Return(&domain.InspectionResult{ID: 11, Accuracy: 70}, nil)
	f.backend.EXPECT().Result(gomock.Any(), domain.ResultID(12)).Return(nil, serrors.With(serrors.ErrNotFound, "gone"))
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertPCB(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p domain.PCBSummary) (*domain.PCBSummary, error) {
				require.Nil(t, p.Original)

				return &p, nil
			})
		tx.EXPECT().UpsertResults(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rs ...domain.InspectionResult) ([]domain.InspectionResult, error) {
				require.Len(t, rs, 1)
				require.Equal(t, domain.PCBID(1), rs[0].PCBID)

				return rs, nil
			})
	})
	f.notifier.EXPECT().PublishResults(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev domain.ResultEvent) error {
			require.Equal(t, []domain.ResultID{11}, ev.NewResultIDs)
			require.Equal(t, domain.VerdictPass, ev.Verdict)

			return errBad // publishing failures do not fail the sync
		})

	ev, err := f.svc.Sync(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []domain.ResultID{10, 11, 12}, ev.ResultIDs)
}

func TestInspector_Sync_FetchesImageForUnknownPCB(t *testing.T) {
	f := newFixture(t)

	img := &domain.StoredImage{Filename: "ref.jpg", Data: []byte{1}}
	f.backend.EXPECT().WorkingResults(gomock.Any(), domain.PCBID(2)).Return(&domain.PCBSummary{
		ID: 2, ResultIDs: []domain.ResultID{},
	}, nil)
	f.storage.EXPECT().PCBByIDWithDeleted(gomock.Any(), domain.PCBID(2)).Return(nil, nil)
	f.backend.EXPECT().Images(gomock.Any(), domain.PCBID(2)).Return(img, nil)
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertPCB(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p domain.PCBSummary) (*domain.PCBSummary, error) {
				require.Same(t, img, p.Original)

				return &p, nil
			})
	})

	ev, err := f.svc.Sync(context.Background(), 2)
	require.NoError(t, err)
	require.Empty(t, ev.NewResultIDs)
}

func TestInspector_Sync_SkipsDeletedPCB(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().WorkingResults(gomock.Any(), domain.PCBID(2)).Return(&domain.PCBSummary{ID: 2}, nil)
	f.storage.EXPECT().PCBByIDWithDeleted(gomock.Any(), domain.PCBID(2)).Return(&domain.PCBSummary{
		ID: 2, DeletedAt: time.Now(),
	}, nil)

	ev, err := f.svc.Sync(context.Background(), 2)
	require.NoError(t, err)
	require.Nil(t, ev)
}

func TestInspector_Sync_PCBDeletedDuringSync(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().WorkingResults(gomock.Any(), domain.PCBID(3)).Return(&domain.PCBSummary{
		ID: 3, ResultIDs: []domain.ResultID{30},
	}, nil)
	f.storage.EXPECT().PCBByIDWithDeleted(gomock.Any(), domain.PCBID(3)).Return(&domain.PCBSummary{
		ID: 3, Original: &domain.StoredImage{Data: []byte{1}},
	}, nil)
	f.backend.EXPECT().Result(gomock.Any(), domain.ResultID(30)).Return(&domain.InspectionResult{ID: 30}, nil)
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		// the row was soft-deleted in between, so the upsert leaves it alone
		tx.EXPECT().UpsertPCB(gomock.Any(), gomock.Any()).Return(nil, nil)
	})

	ev, err := f.svc.Sync(context.Background(), 3)
	require.NoError(t, err)
	require.Nil(t, ev)
}

func TestInspector_Sync_BackendErrors(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().WorkingResults(gomock.Any(), domain.PCBID(2)).
		Return(nil, serrors.With(serrors.ErrNotFound, "no pcb"))
	_, err := f.svc.Sync(context.Background(), 2)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	f.backend.EXPECT().WorkingResults(gomock.Any(), domain.PCBID(2)).Return(&domain.PCBSummary{
		ID: 2, ResultIDs: []domain.ResultID{1},
	}, nil)
	f.storage.EXPECT().PCBByIDWithDeleted(gomock.Any(), domain.PCBID(2)).Return(&domain.PCBSummary{
		ID: 2, Original: &domain.StoredImage{},
	}, nil)
	f.backend.EXPECT().Result(gomock.Any(), domain.ResultID(1)).Return(nil, serrors.With(serrors.ErrUnavailable, "down"))

	_, err = f.svc.Sync(context.Background(), 2)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}
