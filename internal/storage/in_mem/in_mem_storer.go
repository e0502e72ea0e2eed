package in_mem

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/report"
	"github.com/DjordjeVuckovic/uplift-hunter/pkg/pagination"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID][]byte
	// order keeps insertion order; List walks it backwards.
	order []uuid.UUID
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID][]byte),
	}
}

// Save stores an encoded copy, so later changes to r are not visible.
func (s *InMemStorer) Save(ctx context.Context, r *report.Report) (uuid.UUID, error) {
	if err := storage.Prepare(r); err != nil {
		return uuid.Nil, err
	}
	data, err := json.Marshal(r)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal report: %w", err)
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, exists := s.storage[r.ID]; !exists {
		s.order = append(s.order, r.ID)
	}
	s.storage[r.ID] = data
	slog.Info("Saved evaluation report to in-memory storage", "id", r.ID, "name", r.Meta.Name)
	return r.ID, nil
}

func (s *InMemStorer) Get(ctx context.Context, id uuid.UUID) (*report.Report, error) {
	s.storageLock.RLock()
	data, ok := s.storage[id]
	s.storageLock.RUnlock()

	if !ok {
		return nil, apperr.NewNotFound(storage.ReportResource, id.String())
	}
	var r report.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &r, nil
}

func (s *InMemStorer) List(ctx context.Context, page, size int) ([]report.Summary, int64, error) {
	s.storageLock.RLock()
	ids := make([]uuid.UUID, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		ids = append(ids, s.order[i])
	}
	s.storageLock.RUnlock()

	ids = pagination.Paginate(ids, page, size)
	summaries := make([]report.Summary, 0, len(ids))
	for _, id := range ids {
		r, err := s.Get(ctx, id)
		if err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, r.Summary())
	}

	s.storageLock.RLock()
	total := int64(len(s.order))
	s.storageLock.RUnlock()
	return summaries, total, nil
}
