package storage

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/report"
	"github.com/DjordjeVuckovic/uplift-hunter/pkg/pagination"
	"github.com/google/uuid"
)

// JsonFileStorer keeps one <id>.json file per report in a directory.
type JsonFileStorer struct {
	dir string
	mu  sync.RWMutex
}

func NewJsonFileStorer(dir string) (*JsonFileStorer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create reports dir: %w", err)
	}
	return &JsonFileStorer{dir: dir}, nil
}

func (s *JsonFileStorer) Save(ctx context.Context, r *report.Report) (uuid.UUID, error) {
	if err := Prepare(r); err != nil {
		return uuid.Nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := report.WriteJSON(r, s.path(r.ID)); err != nil {
		return uuid.Nil, err
	}
	slog.Info("Saved evaluation report", "id", r.ID, "dir", s.dir)
	return r.ID, nil
}

func (s *JsonFileStorer) Get(ctx context.Context, id uuid.UUID) (*report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, err := report.ReadJSON(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperr.NewNotFound(ReportResource, id.String())
	}
	return r, err
}

func (s *JsonFileStorer) List(ctx context.Context, page, size int) ([]report.Summary, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, 0, fmt.Errorf("read reports dir: %w", err)
	}

	var summaries []report.Summary
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		r, err := report.ReadJSON(filepath.Join(s.dir, e.Name()))
		if err != nil {
			slog.Warn("Skipping unreadable report", "file", e.Name(), "error", err)
			continue
		}
		summaries = append(summaries, r.Summary())
	}

	sortNewestFirst(summaries)
	return pagination.Paginate(summaries, page, size), int64(len(summaries)), nil
}

func (s *JsonFileStorer) path(id uuid.UUID) string {
	return filepath.Join(s.dir, id.String()+".json")
}

func sortNewestFirst(summaries []report.Summary) {
	slices.SortStableFunc(summaries, func(a, b report.Summary) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
}
