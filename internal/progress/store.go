// Package progress is the progression store: it owns the persisted form
// of PlayerProgress and the load/save/reset round-trip.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/pipstudio/kitchengarden/internal/catalog"
	"github.com/pipstudio/kitchengarden/internal/domain"
	"github.com/pipstudio/kitchengarden/internal/logger"
)

// Store loads and saves player snapshots. It is the only writer of the
// persisted form; engines never touch the backend directly.
type Store struct {
	backend   Backend
	catalog   *catalog.Catalog
	plotCount int

	mu  sync.Mutex
	now func() time.Time
}

// NewStore creates a progression store over the given backend.
func NewStore(backend Backend, cat *catalog.Catalog, plotCount int) *Store {
	return &Store{
		backend:   backend,
		catalog:   cat,
		plotCount: plotCount,
		now:       time.Now,
	}
}

// Load reconstructs PlayerProgress from the persisted snapshot. It never
// fails: a missing snapshot means a new player, and a corrupt one falls
// back to new-player defaults with the discrepancy logged rather than
// propagated. Losing a save must not crash a child's game.
func (s *Store) Load(ctx context.Context) *domain.PlayerProgress {
	log := logger.FromContext(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.backend.Exists() {
		log.Info("No snapshot found, starting a new player")
		return NewPlayerProgress(s.catalog, s.plotCount)
	}

	data, err := s.backend.Load()
	if err != nil {
		log.Error("Snapshot read failed, starting fresh", "error", fmt.Errorf("%w: %v", domain.ErrPersistenceCorrupt, err))
		return NewPlayerProgress(s.catalog, s.plotCount)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Error("Snapshot parse failed, starting fresh", "error", fmt.Errorf("%w: %v", domain.ErrPersistenceCorrupt, err))
		return NewPlayerProgress(s.catalog, s.plotCount)
	}
	if snap.Version > SnapshotVersion {
		log.Warn("Snapshot written by a newer version, loading best-effort", "snapshot_version", snap.Version, "supported", SnapshotVersion)
	}

	p := fromSnapshot(ctx, &snap, s.catalog, s.plotCount)
	log.Info("Snapshot loaded", "level", p.Level, "coins", p.Coins, "last_saved", p.LastSaved)
	return p
}

// Save serializes the full snapshot and stamps LastSaved. Saving twice
// with no intervening mutation produces byte-identical persisted state
// except for the timestamp. A write failure is reported but in-memory
// progress is untouched; the caller keeps playing and retries later.
func (s *Store) Save(ctx context.Context, p *domain.PlayerProgress) error {
	log := logger.FromContext(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	p.LastSaved = s.now()
	snap := toSnapshot(p)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	if err := s.backend.Save(data); err != nil {
		return err
	}

	log.Debug("Snapshot saved", "bytes", len(data))
	return nil
}

// Reset overwrites the persisted snapshot with new-player defaults and
// returns them. Intended for testing and debug tooling.
func (s *Store) Reset(ctx context.Context) (*domain.PlayerProgress, error) {
	p := NewPlayerProgress(s.catalog, s.plotCount)
	if err := s.Save(ctx, p); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("Progress reset to new-player defaults")
	return p, nil
}
