package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/report"
	"github.com/google/uuid"
)

// ReportResource names stored reports in not found errors.
const ReportResource = "evaluation"

type Storer interface {
	// Save persists the report and returns its ID. A report without an ID gets
	// a new one.
	Save(ctx context.Context, r *report.Report) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*report.Report, error)
	// List returns one page of summaries, newest first, and the total count.
	List(ctx context.Context, page, size int) ([]report.Summary, int64, error)
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
	JSON  Type = "json"
)

func (t Type) Validate() error {
	switch t {
	case ES, PG, InMem, JSON:
		return nil
	}
	return fmt.Errorf(string(ErrUnsupportedStorer), t)
}

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}

var ErrNilReport = errors.New("report is nil")

// Prepare assigns a report ID when missing.
func Prepare(r *report.Report) error {
	if r == nil {
		return ErrNilReport
	}
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
