// Package storage wraps the MinIO client used to archive raw upstream payloads.
//
// Any S3 compatible service works. The Client interface is kept narrow so the
// archive can be tested against core/storage/mocks.
//
//	client, err := storage.NewClient(cfg.Storage)
//	ok, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
