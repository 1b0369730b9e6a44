package definitions

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// FileStore loads definitions from a directory and caches the parsed Set,
// keyed by source file mtimes. Concurrent cache misses collapse into a single
// read through singleflight. Invalidate drops the cache; the watcher calls it
// on source change.
type FileStore struct {
	dir    string
	logger *slog.Logger

	mu     sync.RWMutex
	cached *Set
	mtimes map[string]time.Time

	group singleflight.Group
}

// NewFileStore constructs a file-backed definition store.
func NewFileStore(dir string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{
		dir:    dir,
		logger: logger,
	}
}

// Load returns the current definition set, reloading when a source file
// changed since the cached parse.
func (s *FileStore) Load(ctx context.Context) (*Set, error) {
	current := s.sourceMtimes()

	s.mu.RLock()
	if s.cached != nil && mtimesEqual(s.mtimes, current) {
		set := s.cached
		s.mu.RUnlock()
		return set, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.group.Do("load", func() (any, error) {
		return s.reload(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Set), nil
}

// Invalidate drops the cached set so the next Load re-reads the sources.
func (s *FileStore) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mtimes = nil
	s.mu.Unlock()
}

func (s *FileStore) reload(ctx context.Context) (*Set, error) {
	set, issues, err := loadDir(s.dir)
	if err != nil {
		return nil, err
	}
	for _, issue := range issues {
		s.logger.WarnContext(ctx, "definition authoring issue", "issue", issue.Error())
	}

	mtimes := s.sourceMtimes()
	s.mu.Lock()
	s.cached = set
	s.mtimes = mtimes
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "definitions loaded",
		"dir", s.dir,
		"items", len(set.Items),
		"rules", len(set.Rules),
		"issues", len(issues),
	)
	return set, nil
}

// sourceMtimes snapshots the mtimes of every definition source present.
func (s *FileStore) sourceMtimes() map[string]time.Time {
	mtimes := make(map[string]time.Time, 2)
	for _, base := range []string{checklistBase, rulesBase} {
		for _, ext := range extensions {
			path := filepath.Join(s.dir, base+ext)
			if info, err := os.Stat(path); err == nil {
				mtimes[path] = info.ModTime()
			}
		}
	}
	return mtimes
}

func mtimesEqual(a, b map[string]time.Time) bool {
	if len(a) != len(b) {
		return false
	}
	for path, t := range a {
		if !b[path].Equal(t) {
			return false
		}
	}
	return true
}
