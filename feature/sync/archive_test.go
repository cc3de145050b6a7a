package sync_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"aoe4-sync/core/storage/mocks"
	syncer "aoe4-sync/feature/sync"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func listing(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func TestArchive_Put(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "snaps", "snapshots/run-1/stats.rm_solo.all.json", mock.Anything, mock.AnythingOfType("int64"),
		mock.MatchedBy(func(o minio.PutObjectOptions) bool { return o.ContentType == "application/json" })).
		Return(minio.UploadInfo{}, nil).Once()

	archive := syncer.NewArchive(client, "snaps", zap.NewNop())
	require.NoError(t, archive.Put(context.Background(), "run-1", "stats:rm_solo:all", []int{1, 2}))
	client.AssertExpectations(t)
}

func TestArchive_PutError(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "snaps", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	err := syncer.NewArchive(client, "snaps", nil).Put(context.Background(), "r", "leaderboard:rm_solo", nil)
	assert.ErrorContains(t, err, "snapshots/r/leaderboard.rm_solo.json")
}

func TestArchive_EnsureBucket(t *testing.T) {
	t.Run("creates missing bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "snaps").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "snaps", minio.MakeBucketOptions{}).Return(nil).Once()

		created, err := syncer.NewArchive(client, "snaps", nil).EnsureBucket(context.Background())
		require.NoError(t, err)
		assert.True(t, created)
		client.AssertExpectations(t)
	})

	t.Run("existing bucket is left alone", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "snaps").Return(true, nil)

		created, err := syncer.NewArchive(client, "snaps", nil).EnsureBucket(context.Background())
		require.NoError(t, err)
		assert.False(t, created)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unreachable storage", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "snaps").Return(false, errors.New("dial tcp: refused"))

		_, err := syncer.NewArchive(client, "snaps", nil).EnsureBucket(context.Background())
		assert.ErrorContains(t, err, "refused")
	})
}

func TestArchive_RunsAndDatasets(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "snaps", minio.ListObjectsOptions{Prefix: "snapshots/"}).
		Return(listing("snapshots/b/", "snapshots/a/", "snapshots/")).Once()
	client.On("ListObjects", mock.Anything, "snaps", minio.ListObjectsOptions{Prefix: "snapshots/a/", Recursive: true}).
		Return(listing("snapshots/a/stats.rm_team.gold.json", "snapshots/a/leaderboard.rm_solo.json")).Once()

	archive := syncer.NewArchive(client, "snaps", nil)
	runs, err := archive.Runs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, runs)

	datasets, err := archive.Datasets(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"leaderboard:rm_solo", "stats:rm_team:gold"}, datasets)
}

func TestArchive_Get(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "snaps", "snapshots/a/leaderboard.rm_solo.json", minio.GetObjectOptions{}).
		Return(io.NopCloser(strings.NewReader(`[{"profile_id":1}]`)), nil)

	data, err := syncer.NewArchive(client, "snaps", nil).Get(context.Background(), "a", "leaderboard:rm_solo")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"profile_id":1}]`, string(data))
}

// failingReader mimics a lazily opened object whose first read reports the error.
type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }
func (r failingReader) Close() error             { return nil }

func TestArchive_GetMissing(t *testing.T) {
	noSuchKey := minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404, Message: "The specified key does not exist."}

	t.Run("reported on first read", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "snaps", "snapshots/r9/leaderboard.rm_solo.json", mock.Anything).
			Return(failingReader{err: noSuchKey}, nil)

		_, err := syncer.NewArchive(client, "snaps", nil).Get(context.Background(), "r9", "leaderboard:rm_solo")
		assert.ErrorIs(t, err, syncer.ErrSnapshotNotFound)
	})

	t.Run("reported on open", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "snaps", mock.Anything, mock.Anything).Return(nil, noSuchKey)

		_, err := syncer.NewArchive(client, "snaps", nil).Get(context.Background(), "r9", "leaderboard:rm_solo")
		assert.ErrorIs(t, err, syncer.ErrSnapshotNotFound)
	})

	t.Run("other read errors are not a miss", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "snaps", mock.Anything, mock.Anything).
			Return(failingReader{err: errors.New("connection reset")}, nil)

		_, err := syncer.NewArchive(client, "snaps", nil).Get(context.Background(), "r9", "leaderboard:rm_solo")
		require.Error(t, err)
		assert.NotErrorIs(t, err, syncer.ErrSnapshotNotFound)
		assert.ErrorContains(t, err, "connection reset")
	})
}

func TestArchive_DatasetsUnknownRun(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "snaps", minio.ListObjectsOptions{Prefix: "snapshots/nope/", Recursive: true}).
		Return(listing())

	_, err := syncer.NewArchive(client, "snaps", nil).Datasets(context.Background(), "nope")
	assert.ErrorIs(t, err, syncer.ErrSnapshotNotFound)
}

func TestArchive_Prune(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "snaps", minio.ListObjectsOptions{Prefix: "snapshots/"}).
		Return(listing("snapshots/r1/", "snapshots/r2/", "snapshots/r3/"))
	client.On("ListObjects", mock.Anything, "snaps", minio.ListObjectsOptions{Prefix: "snapshots/r1/", Recursive: true}).
		Return(listing("snapshots/r1/x.json", "snapshots/r1/y.json"))
	client.On("RemoveObjects", mock.Anything, "snaps", mock.Anything, minio.RemoveObjectsOptions{}).
		Return(nil).Once()

	removed, err := syncer.NewArchive(client, "snaps", nil).Prune(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	client.AssertExpectations(t)
}

func TestArchive_PruneNothingToDo(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "snaps", minio.ListObjectsOptions{Prefix: "snapshots/"}).
		Return(listing("snapshots/r1/"))

	removed, err := syncer.NewArchive(client, "snaps", nil).Prune(context.Background(), 3)
	require.NoError(t, err)
	assert.Zero(t, removed)
	client.AssertNotCalled(t, "RemoveObjects", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ArchivesEveryDataset(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "snaps", mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "snapshots/")
	}), mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	h := newHarness(t, &upstream{civs: []string{"english"}, players: 3},
		syncer.WithArchive(syncer.NewArchive(client, "snaps", nil)))

	report, err := h.service.Run(context.Background(), syncer.ModeQuick)
	require.NoError(t, err)
	assert.True(t, report.OK())

	client.AssertCalled(t, "PutObject", mock.Anything, "snaps", "snapshots/"+report.RunID+"/stats.rm_solo.all.json",
		mock.Anything, mock.Anything, mock.Anything)
	client.AssertCalled(t, "PutObject", mock.Anything, "snaps", "snapshots/"+report.RunID+"/leaderboard.rm_solo.json",
		mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ArchiveFailureDoesNotFailDataset(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("bucket gone"))

	h := newHarness(t, &upstream{players: 4}, syncer.WithArchive(syncer.NewArchive(client, "snaps", nil)))

	n, err := h.service.SyncLeaderboard(context.Background(), "rm_team", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestService_PrunesAfterRun(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	client.On("ListObjects", mock.Anything, "snaps", minio.ListObjectsOptions{Prefix: "snapshots/"}).
		Return(listing("snapshots/r2/", "snapshots/r1/"))
	client.On("ListObjects", mock.Anything, "snaps", minio.ListObjectsOptions{Prefix: "snapshots/r1/", Recursive: true}).
		Return(listing("snapshots/r1/a.json"))
	client.On("RemoveObjects", mock.Anything, "snaps", mock.Anything, mock.Anything).Return(nil).Once()

	h := newHarness(t, &upstream{players: 1},
		syncer.WithArchive(syncer.NewArchive(client, "snaps", nil)),
		syncer.WithConfig(syncer.Config{LeaderboardCount: 1, Leaderboards: []string{"rm_solo"}, RankLevels: []string{"all"}, SnapshotRetention: 1}),
	)

	h.service.SyncAll(context.Background())
	client.AssertExpectations(t)
}
