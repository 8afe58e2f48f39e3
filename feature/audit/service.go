package audit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"segment-audit/core/config"
	"segment-audit/core/reconcile"
	"segment-audit/feature/metadata"
	"segment-audit/feature/segments"

	"go.uber.org/zap"
)

// ErrMissingInput is returned when the hierarchical root or the metadata is absent.
var ErrMissingInput = errors.New("missing audit input")

// Service runs audits against one configuration.
type Service struct {
	cfg     config.AuditConfig
	source  metadata.Source
	scanner *segments.Scanner
	logger  *zap.Logger
}

// NewService creates a new audit service.
func NewService(cfg config.AuditConfig, source metadata.Source, scanner *segments.Scanner, logger *zap.Logger) *Service {
	return &Service{
		cfg:     cfg,
		source:  source,
		scanner: scanner,
		logger:  logger,
	}
}

// Audit performs a complete run and returns its snapshot.
func (s *Service) Audit(ctx context.Context) (*reconcile.Snapshot, error) {
	if err := s.checkRoot(); err != nil {
		return nil, err
	}

	index, err := metadata.Load(ctx, s.source, s.logger)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: metadata %s does not exist", ErrMissingInput, s.source.Name())
		}
		return nil, fmt.Errorf("failed to load metadata: %w", err)
	}

	inv, err := s.scanner.Scan(ctx, s.cfg.HierarchicalRoot, s.cfg.FlatRoot)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	size := s.cfg.DefaultSegmentSize
	if size <= 0 {
		size = reconcile.DefaultSegmentSize
	}
	results := reconcile.ReconcileAll(index, inv, size)

	if s.cfg.VerifyPages {
		for i := range results {
			results[i].PageMismatches = s.scanner.VerifyPages(ctx, results[i].Segments)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	snap := &reconcile.Snapshot{
		Results:         results,
		Summary:         reconcile.Summarize(results),
		MetadataEntries: len(index),
		FlatSegments:    inv.FlatCount(),
		Built:           time.Now(),
		TTL:             time.Duration(s.cfg.CacheTTLSeconds) * time.Second,
	}

	s.logger.Info("Audit completed",
		zap.Int("documents", snap.Summary.Documents),
		zap.Int("flagged", snap.Summary.Flagged),
		zap.Int("missing_pages", snap.Summary.MissingPages),
		zap.Int("relocations", snap.Summary.Relocations),
	)

	return snap, nil
}

func (s *Service) checkRoot() error {
	info, err := os.Stat(s.cfg.HierarchicalRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: directory %s does not exist", ErrMissingInput, s.cfg.HierarchicalRoot)
		}
		return fmt.Errorf("%w: %v", ErrMissingInput, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrMissingInput, s.cfg.HierarchicalRoot)
	}
	return nil
}
