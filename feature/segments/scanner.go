package segments

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"segment-audit/core/keys"
	"segment-audit/core/reconcile"

	"go.uber.org/zap"
)

// Scanner enumerates segment files under the hierarchical and flat roots.
type Scanner struct {
	logger *zap.Logger
}

// NewScanner creates a new scanner.
func NewScanner(logger *zap.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Scan runs both scans into a single inventory.
func (s *Scanner) Scan(ctx context.Context, hierarchicalRoot, flatRoot string) (*reconcile.Inventory, error) {
	inv := reconcile.NewInventory()

	if err := s.ScanHierarchical(ctx, hierarchicalRoot, inv); err != nil {
		return nil, err
	}
	if err := s.ScanFlat(ctx, flatRoot, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

// ScanHierarchical walks root recursively, excluding root itself. Each folder
// named "<Title>, <year>" contributes its direct segment files under the
// folder's key. When several folders share a key, their segments are pooled
// and the first folder in walk order is kept for relocation targets.
func (s *Scanner) ScanHierarchical(ctx context.Context, root string, inv *reconcile.Inventory) error {
	if !s.rootExists(root, "hierarchical") {
		return nil
	}

	folderKeys := make(map[string]keys.Key)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			s.logger.Warn("Skipping unreadable path", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			key, ok := keys.FromFolder(d.Name())
			if !ok {
				s.logger.Debug("Folder name does not carry a key", zap.String("folder", d.Name()))
				return nil
			}
			folderKeys[path] = key
			if existing, dup := inv.Folders[key]; dup {
				s.logger.Warn("Multiple folders share a key",
					zap.String("key", key.String()),
					zap.String("kept", existing.Path),
					zap.String("merged", path),
				)
				return nil
			}
			inv.Folders[key] = reconcile.Folder{Name: d.Name(), Path: path}
			return nil
		}

		key, ok := folderKeys[filepath.Dir(path)]
		if !ok {
			return nil
		}
		start, end, ok := PageRange(d.Name())
		if !ok {
			return nil
		}

		inv.Hierarchical[key] = append(inv.Hierarchical[key], reconcile.Segment{
			Start:  start,
			End:    end,
			Path:   path,
			Origin: reconcile.OriginHierarchical,
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("Hierarchical scan finished",
		zap.String("root", root),
		zap.Int("folders", len(inv.Folders)),
	)
	return nil
}

// ScanFlat lists root without recursion and keys each segment file by its name.
func (s *Scanner) ScanFlat(ctx context.Context, root string, inv *reconcile.Inventory) error {
	if !s.rootExists(root, "flat") {
		return nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		s.logger.Warn("Failed to list flat root", zap.String("root", root), zap.Error(err))
		return nil
	}

	found := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		start, end, ok := PageRange(name)
		if !ok {
			continue
		}
		key, ok := keys.FromFilename(name)
		if !ok {
			s.logger.Debug("Segment filename does not carry a key", zap.String("file", name))
			continue
		}

		inv.Flat[key] = append(inv.Flat[key], reconcile.Segment{
			Start:  start,
			End:    end,
			Path:   filepath.Join(root, name),
			Origin: reconcile.OriginFlat,
		})
		found++
	}

	s.logger.Debug("Flat scan finished", zap.String("root", root), zap.Int("segments", found))
	return nil
}

// VerifyPages compares each segment's PDF page count with its filename range.
// Unreadable files are logged and skipped.
func (s *Scanner) VerifyPages(ctx context.Context, segments []reconcile.Segment) []reconcile.PageMismatch {
	var mismatches []reconcile.PageMismatch
	for _, seg := range segments {
		if ctx.Err() != nil {
			break
		}

		actual, err := CountPages(seg.Path)
		if err != nil {
			s.logger.Warn("Failed to count PDF pages", zap.String("path", seg.Path), zap.Error(err))
			continue
		}
		if actual != seg.Pages() {
			mismatches = append(mismatches, reconcile.PageMismatch{
				Segment:  seg,
				Declared: seg.Pages(),
				Actual:   actual,
			})
		}
	}
	return mismatches
}

func (s *Scanner) rootExists(root, kind string) bool {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("Scan root does not exist", zap.String("kind", kind), zap.String("root", root))
		} else {
			s.logger.Warn("Scan root is not accessible", zap.String("kind", kind), zap.String("root", root), zap.Error(err))
		}
		return false
	}
	if !info.IsDir() {
		s.logger.Warn("Scan root is not a directory", zap.String("kind", kind), zap.String("root", root))
		return false
	}
	return true
}
