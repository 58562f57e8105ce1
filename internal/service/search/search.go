// Package search keeps the product index in sync and runs catalog queries
// against Elasticsearch.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/ReemOthm/home-decor-backend/internal/logging"
	"github.com/ReemOthm/home-decor-backend/internal/models"
)

const ProductIndex = "products"

type Indexer struct {
	ES    *elasticsearch.Client
	Index string
}

func NewIndexer(es *elasticsearch.Client) *Indexer {
	return &Indexer{ES: es, Index: ProductIndex}
}

// IndexProduct upserts the document. Indexing failures are logged, not
// returned: the database row is the source of truth and a stale index must
// not fail a catalog write.
func (i *Indexer) IndexProduct(ctx context.Context, p *models.Product) {
	if i == nil || i.ES == nil {
		return
	}
	l := logging.FromContext(ctx).With("svc", "search.index")

	doc, err := json.Marshal(p)
	if err != nil {
		l.Error("marshal product", "error", err)
		return
	}
	res, err := i.ES.Index(
		i.Index,
		bytes.NewReader(doc),
		i.ES.Index.WithContext(ctx),
		i.ES.Index.WithDocumentID(p.ID.String()),
	)
	if err != nil {
		l.Error("index product", "product_id", p.ID, "error", err)
		return
	}
	defer res.Body.Close()
	if res.IsError() {
		l.Error("index product", "product_id", p.ID, "status", res.Status())
	}
}

func (i *Indexer) DeleteProduct(ctx context.Context, id string) {
	if i == nil || i.ES == nil {
		return
	}
	l := logging.FromContext(ctx).With("svc", "search.delete")

	res, err := i.ES.Delete(i.Index, id, i.ES.Delete.WithContext(ctx))
	if err != nil {
		l.Error("delete product", "product_id", id, "error", err)
		return
	}
	res.Body.Close()
}

func (i *Indexer) Search(ctx context.Context, query string, from, size int) (int64, []models.Product, error) {
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

	res, err := i.ES.Search(
		i.ES.Search.WithContext(ctx),
		i.ES.Search.WithIndex(i.Index),
		i.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	products := make([]models.Product, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		products[i] = hit.Source
	}
	return r.Hits.Total.Value, products, nil
}
