package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/RafaelRangel0/Similar-Doctors/internal/ports"
)

// WatchedSource serves the last good payload of an underlying source from
// memory and drops it whenever the watcher reports a change to the data file.
//
// Failed loads are never cached: while the file is missing or malformed every
// call goes back to the underlying source and fails the same way it would.
//
// If the watched directory itself is removed or renamed the watch is gone, so
// the source stops caching and reads through on every call from then on.
type WatchedSource struct {
	inner   ports.DoctorSource
	watcher ports.Watcher
	logger  *log.Logger
	target  string // absolute path of the data file
	dir     string // watched directory

	mu    sync.RWMutex
	data  []byte
	valid bool
	gen   uint64 // bumped on every invalidation
	lost  bool   // watched directory went away

	loads atomic.Int64 // reads that reached the underlying source
}

// NewWatchedSource wraps inner. Call Start to begin watching.
func NewWatchedSource(inner ports.DoctorSource, watcher ports.Watcher, logger *log.Logger) (*WatchedSource, error) {
	target, err := filepath.Abs(inner.Path())
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", inner.Path(), err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &WatchedSource{
		inner:   inner,
		watcher: watcher,
		logger:  logger,
		target:  target,
		dir:     filepath.Dir(target),
	}, nil
}

// Start watches the directory holding the data file. The whole directory is
// watched so that atomic replace-by-rename is noticed.
func (s *WatchedSource) Start() error {
	if err := s.watcher.Watch(s.dir, s.onFileChanged); err != nil {
		return fmt.Errorf("watch %s: %w", s.dir, err)
	}
	return nil
}

// Stop ends watching. The cached payload stays usable but is no longer
// invalidated.
func (s *WatchedSource) Stop() error {
	return s.watcher.Stop()
}

// Path returns the data file.
func (s *WatchedSource) Path() string {
	return s.inner.Path()
}

// Load returns the cached payload, reading through on a miss.
func (s *WatchedSource) Load(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	if s.valid {
		data := s.data
		s.mu.RUnlock()
		return data, nil
	}
	gen := s.gen
	s.mu.RUnlock()

	s.loads.Add(1)
	data, err := s.inner.Load(ctx)
	if err != nil {
		return nil, err
	}

	// A change that arrived mid-read may not be reflected in data.
	s.mu.Lock()
	if s.gen == gen && !s.lost {
		s.data = data
		s.valid = true
	}
	s.mu.Unlock()
	return data, nil
}

// Invalidate drops the cached payload.
func (s *WatchedSource) Invalidate() {
	s.mu.Lock()
	s.data = nil
	s.valid = false
	s.gen++
	s.mu.Unlock()
}

// Loads returns how many reads went to the underlying source.
func (s *WatchedSource) Loads() int64 {
	return s.loads.Load()
}

// Caching reports whether loads are still kept in memory.
func (s *WatchedSource) Caching() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.lost
}

func (s *WatchedSource) onFileChanged(absPath string) {
	switch filepath.Clean(absPath) {
	case s.target:
		s.Invalidate()
	case s.dir:
		s.Invalidate()
		s.mu.Lock()
		first := !s.lost
		s.lost = true
		s.mu.Unlock()
		if first {
			s.logger.Printf("[app] %s removed or renamed; no longer watching, reading %s on every request", s.dir, filepath.Base(s.target))
		}
	}
}
