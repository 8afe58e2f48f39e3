package metadata

import (
	"context"
	"errors"

	"segment-audit/core/keys"
	"segment-audit/core/reconcile"
	"segment-audit/core/utils"

	"go.uber.org/zap"
)

// Index maps each document key to its metadata record.
type Index map[keys.Key]reconcile.Record

// Source provides raw metadata entries.
type Source interface {
	// Name describes the source for logs (e.g. a path or bucket/object).
	Name() string
	// Entries loads every raw record. Errors wrapping ErrMalformed are recoverable.
	Entries(ctx context.Context) ([]Entry, error)
}

// Load reads entries from src and indexes them. Malformed metadata yields an
// empty index and a warning; any other failure is returned.
func Load(ctx context.Context, src Source, logger *zap.Logger) (Index, error) {
	entries, err := src.Entries(ctx)
	if err != nil {
		if errors.Is(err, ErrMalformed) {
			logger.Warn("Metadata could not be used, continuing with an empty index",
				zap.String("source", src.Name()),
				zap.Error(err),
			)
			return Index{}, nil
		}
		return nil, err
	}

	index := BuildIndex(entries)
	logger.Info("Metadata loaded",
		zap.String("source", src.Name()),
		zap.Int("records", len(entries)),
		zap.Int("indexed", len(index)),
	)
	return index, nil
}

// BuildIndex derives a key for every entry with a usable url. Entries without
// one are skipped; duplicate keys keep the last entry.
func BuildIndex(entries []Entry) Index {
	index := make(Index, len(entries))

	for _, entry := range entries {
		url := utils.ToString(entry["url"])
		if url == "" {
			continue
		}
		key, ok := keys.FromURL(url)
		if !ok {
			continue
		}

		total, hasTotal := entry["total_pages"]
		if !hasTotal {
			total = entry["pages"]
		}

		title := utils.ToString(entry["title"])
		if title == "" {
			title = "Unknown"
		}

		index[key] = reconcile.Record{
			Key:                      key,
			Title:                    title,
			TotalPages:               max(utils.ToInt(total), 0),
			LastSuccessfulSegmentEnd: utils.ToInt(entry["last_successful_segment_end"]),
			CompletedAt:              utils.ToString(entry["completed_at"]),
		}
	}

	return index
}
