package handler

import "osuapi/pkg/osuapi"

// listResult is the envelope of every list response.
type listResult struct {
	Items []map[string]any `json:"data"`
	Total int              `json:"total"`
}

// newListResult renders records with their decoded values, so numbers and
// flags reach the client as JSON numbers and booleans.
func newListResult[T any](records []T) listResult {
	items := make([]map[string]any, len(records))
	for i := range records {
		items[i] = osuapi.Fields(&records[i])
	}
	return listResult{Items: items, Total: len(items)}
}
