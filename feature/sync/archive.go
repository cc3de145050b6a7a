package sync

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"aoe4-sync/core/storage"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const snapshotPrefix = "snapshots/"

// ErrSnapshotNotFound is returned for an unknown run or dataset.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Archive stores fetched datasets as JSON under snapshots/<run-id>/<dataset>.json.
type Archive struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewArchive creates an archive writing to bucket.
func NewArchive(client storage.Client, bucket string, logger *zap.Logger) *Archive {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Archive{client: client, bucket: bucket, logger: logger}
}

// Bucket returns the target bucket name.
func (a *Archive) Bucket() string {
	return a.bucket
}

// BucketExists reports whether the bucket is reachable.
func (a *Archive) BucketExists(ctx context.Context) (bool, error) {
	ok, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	return ok, nil
}

// EnsureBucket creates the bucket when missing. It reports whether it was created.
func (a *Archive) EnsureBucket(ctx context.Context) (bool, error) {
	ok, err := a.BucketExists(ctx)
	if err != nil || ok {
		return false, err
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return false, fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	return true, nil
}

func objectName(runID, dataset string) string {
	return snapshotPrefix + runID + "/" + strings.ReplaceAll(dataset, ":", ".") + ".json"
}

// Put writes payload as the dataset of a run.
func (a *Archive) Put(ctx context.Context, runID, dataset string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", dataset, err)
	}
	name := objectName(runID, dataset)
	_, err = a.client.PutObject(ctx, a.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return nil
}

// Runs lists archived run ids in ascending order. Run ids are UUIDv7, so this is also chronological.
func (a *Archive) Runs(ctx context.Context) ([]string, error) {
	var runs []string
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: snapshotPrefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		run := strings.TrimSuffix(strings.TrimPrefix(obj.Key, snapshotPrefix), "/")
		if run != "" && !strings.Contains(run, "/") {
			runs = append(runs, run)
		}
	}
	sort.Strings(runs)
	return runs, nil
}

// Datasets lists the datasets archived for a run.
func (a *Archive) Datasets(ctx context.Context, runID string) ([]string, error) {
	var datasets []string
	prefix := snapshotPrefix + runID + "/"
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list run %s: %w", runID, obj.Err)
		}
		name := strings.TrimSuffix(path.Base(obj.Key), ".json")
		datasets = append(datasets, strings.ReplaceAll(name, ".", ":"))
	}
	if len(datasets) == 0 {
		return nil, fmt.Errorf("run %s: %w", runID, ErrSnapshotNotFound)
	}
	sort.Strings(datasets)
	return datasets, nil
}

// Get returns the raw JSON of one archived dataset.
func (a *Archive) Get(ctx context.Context, runID, dataset string) ([]byte, error) {
	obj, err := a.client.GetObject(ctx, a.bucket, objectName(runID, dataset), minio.GetObjectOptions{})
	if err != nil {
		return nil, getError(runID, dataset, err)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, getError(runID, dataset, err)
	}
	return data, nil
}

// getError maps a missing object to ErrSnapshotNotFound. Clients that open
// lazily report it on the first read instead of on open, so both are checked.
func getError(runID, dataset string, err error) error {
	if storage.IsNotFound(err) {
		return fmt.Errorf("%s/%s: %w", runID, dataset, ErrSnapshotNotFound)
	}
	return fmt.Errorf("failed to get %s/%s: %w", runID, dataset, err)
}

// Prune deletes every run except the newest keep. It returns the number of objects removed.
func (a *Archive) Prune(ctx context.Context, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}
	runs, err := a.Runs(ctx)
	if err != nil {
		return 0, err
	}
	if len(runs) <= keep {
		return 0, nil
	}

	var objects []minio.ObjectInfo
	for _, run := range runs[:len(runs)-keep] {
		for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: snapshotPrefix + run + "/", Recursive: true}) {
			if obj.Err != nil {
				return 0, fmt.Errorf("failed to list run %s: %w", run, obj.Err)
			}
			objects = append(objects, obj)
		}
	}

	objectsCh := make(chan minio.ObjectInfo, len(objects))
	for _, obj := range objects {
		objectsCh <- obj
	}
	close(objectsCh)

	failed := 0
	for rErr := range a.client.RemoveObjects(ctx, a.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		failed++
		a.logger.Warn("Failed to remove snapshot", zap.String("object", rErr.ObjectName), zap.Error(rErr.Err))
	}
	if failed > 0 {
		return len(objects) - failed, fmt.Errorf("failed to remove %d snapshot objects", failed)
	}
	return len(objects), nil
}
