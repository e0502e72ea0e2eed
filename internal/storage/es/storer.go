package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/report"
	"github.com/DjordjeVuckovic/uplift-hunter/pkg/pagination"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

// Document is the indexed form of a report. Only the summary fields are
// mapped; the report itself is stored but not indexed.
type Document struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"created_at"`
	Samples   int             `json:"samples"`
	Models    int             `json:"models"`
	Best      string          `json:"best_model"`
	Report    json.RawMessage `json:"report"`
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	indexName := config.IndexName
	if indexName == "" {
		indexName = DefaultIndexName
	}
	storer := &Storer{
		client:    client,
		indexName: indexName,
	}

	if err := storer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return storer, nil
}

func (e *Storer) Save(ctx context.Context, r *report.Report) (uuid.UUID, error) {
	if err := storage.Prepare(r); err != nil {
		return uuid.Nil, err
	}
	doc, err := toDocument(r)
	if err != nil {
		return uuid.Nil, err
	}

	res, err := e.client.Index(e.indexName).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.True).
		Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index document: %w", err)
	}

	slog.Info("document indexed successfully", "id", doc.ID, "index", e.indexName, "result", res.Result)
	return r.ID, nil
}

func (e *Storer) Get(ctx context.Context, id uuid.UUID) (*report.Report, error) {
	res, err := e.client.Get(e.indexName, id.String()).Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == http.StatusNotFound {
			return nil, apperr.NewNotFound(storage.ReportResource, id.String())
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if !res.Found {
		return nil, apperr.NewNotFound(storage.ReportResource, id.String())
	}

	var doc Document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	var r report.Report
	if err := json.Unmarshal(doc.Report, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &r, nil
}

func (e *Storer) List(ctx context.Context, page, size int) ([]report.Summary, int64, error) {
	sortOrderDesc := sortorder.Desc
	res, err := e.client.Search().
		Index(e.indexName).
		Query(&types.Query{MatchAll: types.NewMatchAllQuery()}).
		From(pagination.Offset(page, size)).
		Size(size).
		TrackTotalHits(true).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"created_at": {Order: &sortOrderDesc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &sortOrderDesc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch list query failed", "error", err, "index", e.indexName)
		return nil, 0, fmt.Errorf("failed to execute search: %w", err)
	}

	summaries := make([]report.Summary, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal hit: %w", err)
		}
		sum, err := doc.summary()
		if err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, sum)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}
	return summaries, total, nil
}

func (e *Storer) EnsureIndex(ctx context.Context) error {
	existsRes, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if existsRes {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	reportProp := types.NewObjectProperty()
	enabled := false
	reportProp.Enabled = &enabled

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"name":       createTextPropertyWithKeyword(),
			"created_at": types.NewDateProperty(),
			"samples":    types.NewIntegerNumberProperty(),
			"models":     types.NewIntegerNumberProperty(),
			"best_model": types.NewKeywordProperty(),
			"report":     reportProp,
		},
	}

	createRes, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}

func toDocument(r *report.Report) (Document, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return Document{}, fmt.Errorf("failed to marshal report: %w", err)
	}
	sum := r.Summary()
	return Document{
		ID:        sum.ID.String(),
		Name:      sum.Name,
		CreatedAt: sum.CreatedAt,
		Samples:   sum.Samples,
		Models:    sum.Models,
		Best:      sum.Best,
		Report:    raw,
	}, nil
}

func (d Document) summary() (report.Summary, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return report.Summary{}, fmt.Errorf("failed to parse document ID: %w", err)
	}
	return report.Summary{
		ID:        id,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		Samples:   d.Samples,
		Models:    d.Models,
		Best:      d.Best,
	}, nil
}

func createTextPropertyWithKeyword() types.Property {
	textProp := types.NewTextProperty()
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}
