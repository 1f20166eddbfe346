package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/BishowDevkota/trekking-company/internal/trek/search"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

type Config struct {
	Addresses []string
	Username  string
	Password  string
	Index     string

	// Transport is optional, tests point it at a fake cluster.
	Transport http.RoundTripper
}

type Index struct {
	client *elasticsearch.Client
	index  string
}

var _ search.Index = (*Index)(nil)

// New connects to the cluster and creates the trek index when missing.
func New(ctx context.Context, cfg Config) (*Index, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("elastic: new client: %w", err)
	}

	idx := &Index{client: client, index: cfg.Index}
	if err := idx.Ping(ctx); err != nil {
		return nil, err
	}
	if err := idx.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return idx, nil
}

func (x *Index) Ping(ctx context.Context) error {
	res, err := x.client.Info(x.client.Info.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("elastic: cannot connect to cluster: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("elastic: cluster returned error: %s", res.String())
	}
	return nil
}

// ensureIndex creates the index with an edge n-gram analyzer so partial words
// typed into the search bar already match.
func (x *Index) ensureIndex(ctx context.Context) error {
	existsRes, err := esapi.IndicesExistsRequest{Index: []string{x.index}}.Do(ctx, x.client)
	if err != nil {
		return fmt.Errorf("elastic: check index: %w", err)
	}
	defer existsRes.Body.Close()

	switch {
	case existsRes.StatusCode == http.StatusOK:
		return nil
	case existsRes.StatusCode != http.StatusNotFound:
		return fmt.Errorf("elastic: index existence check returned %d", existsRes.StatusCode)
	}

	text := map[string]any{
		"type":            "text",
		"analyzer":        "edge_ngram_analyzer",
		"search_analyzer": "standard",
	}
	mapping := map[string]any{
		"settings": map[string]any{
			"analysis": map[string]any{
				"analyzer": map[string]any{
					"edge_ngram_analyzer": map[string]any{
						"tokenizer": "edge_ngram_tokenizer",
						"filter":    []string{"lowercase"},
					},
				},
				"tokenizer": map[string]any{
					"edge_ngram_tokenizer": map[string]any{
						"type":        "edge_ngram",
						"min_gram":    2,
						"max_gram":    20,
						"token_chars": []string{"letter", "digit"},
					},
				},
			},
		},
		"mappings": map[string]any{
			"properties": map[string]any{
				"regionId":    map[string]any{"type": "keyword"},
				"name":        text,
				"description": text,
				"keywords":    text,
			},
		},
	}

	body, err := json.Marshal(mapping)
	if err != nil {
		return err
	}
	res, err := esapi.IndicesCreateRequest{Index: x.index, Body: bytes.NewReader(body)}.Do(ctx, x.client)
	if err != nil {
		return fmt.Errorf("elastic: create index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("elastic: create index: %s", res.String())
	}
	return nil
}

func (x *Index) IndexTrek(ctx context.Context, doc search.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal doc: %w", err)
	}

	res, err := esapi.IndexRequest{
		Index:      x.index,
		DocumentID: doc.ID,
		Refresh:    "true",
		Body:       bytes.NewReader(data),
	}.Do(ctx, x.client)
	if err != nil {
		return fmt.Errorf("index request: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}

func (x *Index) DeleteTrek(ctx context.Context, id string) error {
	res, err := esapi.DeleteRequest{
		Index:      x.index,
		DocumentID: id,
		Refresh:    "true",
	}.Do(ctx, x.client)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete error: %s", res.String())
	}
	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID string `json:"_id"`
		} `json:"hits"`
	} `json:"hits"`
}

func (x *Index) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = search.DefaultLimit
	}

	q := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^3", "keywords^2", "description"},
				"type":      "best_fields",
				"fuzziness": "AUTO",
				"operator":  "or",
			},
		},
		"size":    limit,
		"_source": false,
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("encode search body: %w", err)
	}

	res, err := x.client.Search(
		x.client.Search.WithContext(ctx),
		x.client.Search.WithIndex(x.index),
		x.client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search error: %s", res.String())
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	ids := make([]string, 0, len(sr.Hits.Hits))
	for _, h := range sr.Hits.Hits {
		ids = append(ids, h.ID)
	}
	return ids, nil
}
