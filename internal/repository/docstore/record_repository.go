package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/valyala/fasthttp"

	"movie-search/internal/domain"
	"movie-search/internal/repository"
)

// uniqueID asks the store to assign the document id on creation.
const uniqueID = "unique()"

type searchRecordRepository struct {
	client *Client
}

func NewSearchRecordRepository(client *Client) repository.SearchRecordRepository {
	return &searchRecordRepository{client: client}
}

// listResponse is the wire shape of a document list. Documents is a pointer
// so a body without the field is a decode failure, not an empty result.
type listResponse struct {
	Total     int                    `json:"total"`
	Documents *[]domain.SearchRecord `json:"documents"`
}

type createRequest struct {
	DocumentID string     `json:"documentId"`
	Data       recordData `json:"data"`
}

type updateRequest struct {
	Data countData `json:"data"`
}

type recordData struct {
	SearchTerm string  `json:"searchTerm"`
	Count      int     `json:"count"`
	MovieID    int64   `json:"movieId"`
	PosterURL  *string `json:"posterUrl"`
}

type countData struct {
	Count int `json:"count"`
}

func (r *searchRecordRepository) FindByTerm(ctx context.Context, term string) (*domain.SearchRecord, error) {
	query := url.Values{}
	query.Add("queries[]", fmt.Sprintf(`equal("searchTerm", [%q])`, term))
	query.Add("queries[]", "limit(1)")

	records, err := r.list(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, repository.ErrNotFound
	}
	return records[0], nil
}

func (r *searchRecordRepository) Create(ctx context.Context, record *domain.SearchRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid search record: %w", err)
	}

	body, err := json.Marshal(createRequest{
		DocumentID: uniqueID,
		Data: recordData{
			SearchTerm: record.SearchTerm,
			Count:      record.Count,
			MovieID:    record.MovieID,
			PosterURL:  record.PosterURL,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal search record: %w", err)
	}

	respBody, err := r.client.do(ctx, fasthttp.MethodPost, r.client.documentsURL(), body)
	if err != nil {
		return fmt.Errorf("failed to create search record: %w", err)
	}

	var created domain.SearchRecord
	if err := json.Unmarshal(respBody, &created); err != nil {
		return fmt.Errorf("failed to decode created record: %w", err)
	}
	if created.ID == "" {
		return fmt.Errorf("store did not assign a document id")
	}

	record.ID = created.ID
	return nil
}

func (r *searchRecordRepository) SetCount(ctx context.Context, id string, count int) error {
	if id == "" {
		return fmt.Errorf("document id is required")
	}

	body, err := json.Marshal(updateRequest{Data: countData{Count: count}})
	if err != nil {
		return fmt.Errorf("failed to marshal count update: %w", err)
	}

	docURL := r.client.documentsURL() + "/" + url.PathEscape(id)
	if _, err := r.client.do(ctx, fasthttp.MethodPatch, docURL, body); err != nil {
		return fmt.Errorf("failed to update search record %s: %w", id, err)
	}

	return nil
}

func (r *searchRecordRepository) TopByCount(ctx context.Context, limit int) ([]*domain.SearchRecord, error) {
	query := url.Values{}
	query.Add("queries[]", `orderDesc("count")`)
	query.Add("queries[]", fmt.Sprintf("limit(%d)", limit))

	return r.list(ctx, query)
}

func (r *searchRecordRepository) list(ctx context.Context, query url.Values) ([]*domain.SearchRecord, error) {
	listURL := r.client.documentsURL() + "?" + query.Encode()

	respBody, err := r.client.do(ctx, fasthttp.MethodGet, listURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list search records: %w", err)
	}

	var resp listResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode document list: %w", err)
	}
	if resp.Documents == nil {
		return nil, fmt.Errorf("document list missing documents array")
	}

	records := make([]*domain.SearchRecord, 0, len(*resp.Documents))
	for i := range *resp.Documents {
		records = append(records, &(*resp.Documents)[i])
	}
	return records, nil
}
