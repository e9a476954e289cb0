package domain

// Limits is the fixed set of selectable page sizes.
var Limits = []int{2, 5, 10, 20}

// ValidLimit reports whether limit is one of the selectable page sizes.
func ValidLimit(limit int) bool {
	for _, l := range Limits {
		if l == limit {
			return true
		}
	}
	return false
}

// PageQuery is the full query state of one list screen: current page (1-based),
// page size and free-text search filter.
type PageQuery struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Search string `json:"search"`
}

// PageMeta is the pagination envelope echoed by the backend on every list call.
type PageMeta struct {
	Page        int    `json:"page"`
	Limit       int    `json:"limit"`
	TotalItems  int    `json:"totalItems"`
	TotalPages  int    `json:"totalPages"`
	HasNextPage bool   `json:"hasNextPage"`
	HasPrevPage bool   `json:"hasPrevPage"`
	SearchQuery string `json:"searchQuery"`
}

// Page is one page of results. It is replaced wholesale on every successful
// query — pages are never merged or appended.
type Page[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}
