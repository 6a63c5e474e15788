package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

type SearchRequest struct {
	Query string   `json:"query" form:"query"`
	Terms []string `json:"terms" form:"terms"`
	Limit int      `json:"limit,omitempty" form:"limit"`
}

func (sr *SearchRequest) IsEmpty() bool {
	if len(strings.TrimSpace(sr.Query)) > 0 {
		return false
	}
	return len(strings.TrimSpace(strings.Join(sr.Terms, ""))) == 0
}

type SearchResult[T any] struct {
	ID     string  `json:"_id,omitempty"`
	Score  float64 `json:"_score,omitempty"`
	Result T       `json:"_source"`
}

func ReturnSearchResults[T any](items []T, key func(T) string) []SearchResult[T] {
	results := make([]SearchResult[T], 0, len(items))
	for _, item := range items {
		results = append(results, SearchResult[T]{
			ID:     key(item),
			Result: item,
		})
	}
	return results
}

// BleveListSearch runs searchReq against an index whose document ids are
// key(item) and maps the hits back onto items, best match first. An empty
// request returns every item.
func BleveListSearch[T any](
	ctx context.Context,
	searchIndex bleve.Index,
	key func(T) string,
	items []T,
	searchReq *SearchRequest,
) ([]SearchResult[T], error) {

	if searchReq == nil || searchReq.IsEmpty() {
		return ReturnSearchResults(items, key), nil
	}

	var queries []query.Query

	if len(searchReq.Terms) > 0 {
		termQueries := []query.Query{}
		for _, term := range searchReq.Terms {
			if len(strings.TrimSpace(term)) == 0 {
				continue
			}
			termQueries = append(termQueries, bleve.NewMatchQuery(term))
		}
		if len(termQueries) > 0 {
			queries = append(queries, bleve.NewConjunctionQuery(termQueries...))
		}
	}

	if q := strings.TrimSpace(searchReq.Query); len(q) > 0 {
		queries = append(queries, bleve.NewQueryStringQuery(q))
	}

	limitResults := 10
	if searchReq.Limit > 0 {
		limitResults = searchReq.Limit
	}

	searchRequest := bleve.NewSearchRequest(bleve.NewDisjunctionQuery(queries...))
	searchRequest.Size = limitResults

	searchResults, err := searchIndex.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	byKey := make(map[string]T, len(items))
	for _, item := range items {
		byKey[key(item)] = item
	}

	matched := make([]SearchResult[T], 0, len(searchResults.Hits))
	for _, hit := range searchResults.Hits {
		item, ok := byKey[hit.ID]
		if !ok {
			continue
		}
		matched = append(matched, SearchResult[T]{
			ID:     hit.ID,
			Score:  hit.Score,
			Result: item,
		})
	}

	return matched, nil
}
