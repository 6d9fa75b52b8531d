package models

import "math"

// DataResponse is the success envelope used by every endpoint:
// the payload is always wrapped in a "data" field.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the failure envelope: a single human-readable message
// under "errors". No partial payloads are ever returned alongside it.
type ErrorResponse struct {
	Errors string `json:"errors"`
}

// Paging is the windowing metadata returned by list endpoints.
type Paging struct {
	// Page is the 1-based index of the returned window.
	Page int `json:"page"`

	// TotalPage is ceil(TotalItem / page size).
	TotalPage int `json:"total_page"`

	// TotalItem is the number of items matching the query across all pages.
	TotalItem int `json:"total_item"`
}

// PageResponse is the success envelope of list endpoints: the data window
// plus its paging metadata.
type PageResponse struct {
	Data   any    `json:"data"`
	Paging Paging `json:"paging"`
}

// NewPaging computes paging metadata for the given 1-based page, page size
// and total matching item count.
func NewPaging(page, size, totalItem int) Paging {
	totalPage := 0
	if size > 0 {
		totalPage = int(math.Ceil(float64(totalItem) / float64(size)))
	}

	return Paging{
		Page:      page,
		TotalPage: totalPage,
		TotalItem: totalItem,
	}
}
