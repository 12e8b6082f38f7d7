// Package search backs the catalog search endpoint with Elasticsearch. The
// index mirrors a small product projection and is kept in sync by admin
// writes; a nil *Index disables search cleanly.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"

	"github.com/unicart/unicart/internal/models"
)

var ErrUnavailable = errors.New("search is not configured")

type Config struct {
	URL      string
	User     string
	Password string
	Index    string
}

type Doc struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Brand         *string   `json:"brand"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stockQuantity"`
	IsFeatured    bool      `json:"isFeatured"`
}

type Index struct {
	client *elasticsearch.Client
	index  string
}

// NewIndex returns nil when no ES_URL is configured.
func NewIndex(cfg Config) (*Index, error) {
	if cfg.URL == "" {
		return nil, nil
	}
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.User,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}
	return &Index{client: client, index: cfg.Index}, nil
}

func (i *Index) Put(ctx context.Context, product *models.Product) error {
	if i == nil {
		return nil
	}
	doc := Doc{
		ID:            product.ID,
		Name:          product.Name,
		Slug:          product.Slug,
		Description:   product.Description,
		Brand:         product.Brand,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		IsFeatured:    product.IsFeatured,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	res, err := i.client.Index(
		i.index,
		bytes.NewReader(body),
		i.client.Index.WithContext(ctx),
		i.client.Index.WithDocumentID(product.ID.String()),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		msg, _ := io.ReadAll(res.Body)
		return fmt.Errorf("index product: %s", msg)
	}
	return nil
}

func (i *Index) Remove(ctx context.Context, id string) error {
	if i == nil {
		return nil
	}
	res, err := i.client.Delete(
		i.index,
		id,
		i.client.Delete.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		msg, _ := io.ReadAll(res.Body)
		return fmt.Errorf("delete product from index: %s", msg)
	}
	return nil
}

// Search runs a fuzzy multi_match over name and description, name boosted.
func (i *Index) Search(ctx context.Context, query string, from, size int) (int64, []Doc, error) {
	if i == nil {
		return 0, nil, ErrUnavailable
	}

	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, err
	}

	res, err := i.client.Search(
		i.client.Search.WithContext(ctx),
		i.client.Search.WithIndex(i.index),
		i.client.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		msg, _ := io.ReadAll(res.Body)
		return 0, nil, fmt.Errorf("search: %s", msg)
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source Doc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	docs := make([]Doc, len(r.Hits.Hits))
	for n, hit := range r.Hits.Hits {
		docs[n] = hit.Source
	}
	return r.Hits.Total.Value, docs, nil
}
