package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pcbinspect/internal/inspector"
	mockinspector "pcbinspect/internal/inspector/mock"
	"pcbinspect/internal/worker"
	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/logger"
	"pcbinspect/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id, pcbID int64) *river.Job[inspector.SyncJobArgs] {
	return &river.Job[inspector.SyncJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   inspector.SyncJobArgs{PCBID: pcbID},
	}
}

func TestSyncWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	mock := mockinspector.NewMockInspector(ctrl)
	w := worker.NewSyncWorker(mock, time.Second)

	mock.EXPECT().Sync(gomock.Any(), domain.PCBID(7)).Return(&domain.ResultEvent{
		PCBID: 7, ResultIDs: []domain.ResultID{1, 2}, NewResultIDs: []domain.ResultID{2}, Verdict: domain.VerdictPass,
	}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, 7)))
}

func TestSyncWorker_Work_DeletedLocally(t *testing.T) {
	ctrl := gomock.NewController(t)

	mock := mockinspector.NewMockInspector(ctrl)
	w := worker.NewSyncWorker(mock, time.Second)

	mock.EXPECT().Sync(gomock.Any(), domain.PCBID(7)).Return(nil, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, 7)))
}

func TestSyncWorker_Work_NotFoundCancels(t *testing.T) {
	ctrl := gomock.NewController(t)

	mock := mockinspector.NewMockInspector(ctrl)
	w := worker.NewSyncWorker(mock, time.Second)

	mock.EXPECT().Sync(gomock.Any(), domain.PCBID(8)).Return(nil, serrors.With(serrors.ErrNotFound, "no pcb"))

	err := w.Work(context.Background(), makeJob(2, 8))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestSyncWorker_Work_UnavailableSnoozes(t *testing.T) {
	for _, kind := range []serrors.Kind{serrors.ErrUnavailable, serrors.ErrTimeout} {
		ctrl := gomock.NewController(t)

		mock := mockinspector.NewMockInspector(ctrl)
		w := worker.NewSyncWorker(mock, 3*time.Second)

		mock.EXPECT().Sync(gomock.Any(), domain.PCBID(9)).Return(nil, serrors.With(kind, "backend down"))

		err := w.Work(context.Background(), makeJob(3, 9))
		var snoozeErr *river.JobSnoozeError
		require.ErrorAs(t, err, &snoozeErr)
		require.Equal(t, 3*time.Second, snoozeErr.Duration)
	}
}

func TestSyncWorker_Work_DefaultSnoozeDelay(t *testing.T) {
	ctrl := gomock.NewController(t)

	mock := mockinspector.NewMockInspector(ctrl)
	w := worker.NewSyncWorker(mock, 0)

	mock.EXPECT().Sync(gomock.Any(), domain.PCBID(9)).Return(nil, serrors.With(serrors.ErrUnavailable, "down"))

	err := w.Work(context.Background(), makeJob(3, 9))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, worker.DefaultSnoozeDelay, snoozeErr.Duration)
}

func TestSyncWorker_Work_GenericErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)

	mock := mockinspector.NewMockInspector(ctrl)
	w := worker.NewSyncWorker(mock, time.Second)

	syncErr := errors.New("boom")
	mock.EXPECT().Sync(gomock.Any(), domain.PCBID(4)).Return(nil, syncErr)

	err := w.Work(context.Background(), makeJob(4, 4))
	require.ErrorIs(t, err, syncErr)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "did not expect JobSnoozeError")
}
