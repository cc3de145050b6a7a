package checks

import (
	"context"
	"fmt"
)

// Bucketer is the part of the snapshot archive the archive check needs.
type Bucketer interface {
	Bucket() string
	BucketExists(ctx context.Context) (bool, error)
	EnsureBucket(ctx context.Context) (bool, error)
}

// ArchiveReport is the result of the snapshot archive check.
type ArchiveReport struct {
	Enabled bool   `json:"enabled"`
	Bucket  string `json:"bucket,omitempty"`
	Exists  bool   `json:"exists"`
	Created bool   `json:"created"`
}

// CheckArchive reports whether the snapshot bucket exists. With fix set a missing bucket is created.
// A nil archive yields a disabled report.
func CheckArchive(ctx context.Context, archive Bucketer, fix bool) (*ArchiveReport, error) {
	if archive == nil {
		return &ArchiveReport{}, nil
	}
	report := &ArchiveReport{Enabled: true, Bucket: archive.Bucket()}

	exists, err := archive.BucketExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("archive check failed: %w", err)
	}
	report.Exists = exists
	if exists || !fix {
		return report, nil
	}

	created, err := archive.EnsureBucket(ctx)
	if err != nil {
		return nil, fmt.Errorf("archive fix failed: %w", err)
	}
	report.Created = created
	report.Exists = true
	return report, nil
}
