// Package query implements the lookup pipeline shared by the medicine API
// endpoints: parse pagination, filter a collection, rank the matches, page
// the result and resolve the related company and generic records into
// denormalized response rows.
package query

import "strconv"

const (
	// DefaultPage is used when the page parameter is missing or invalid.
	DefaultPage = 1
	// DefaultLimit is used when the limit parameter is missing, invalid or
	// above MaxLimit.
	DefaultLimit = 10
	// MaxLimit is the largest page size a client may request. Anything above
	// it falls back to DefaultLimit, not to MaxLimit; clients relying on the
	// historical behavior get identical result sets.
	MaxLimit = 20
)

// Pagination is the parsed offset/count contract for one request.
type Pagination struct {
	Page  int
	Limit int
	Skip  int
}

// ParsePagination turns the raw page and limit query parameters into a
// Pagination. Both parameters are untrusted: non-numeric or missing values
// fall back to the defaults rather than being rejected. Page values below 1
// are clamped to 1 so the skip offset never goes negative.
func ParsePagination(rawPage, rawLimit string) Pagination {
	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(rawLimit)
	if err != nil || limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Pagination{
		Page:  page,
		Limit: limit,
		Skip:  (page - 1) * limit,
	}
}

// TotalPages returns ceil(totalCount / limit).
func TotalPages(totalCount, limit int) int {
	if limit < 1 {
		return 0
	}
	return (totalCount + limit - 1) / limit
}

// PageSlice returns the [skip, skip+limit) window of items, bounds-checked.
// The original slice is never mutated.
func PageSlice[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}

	end := skip + limit
	if end > len(items) {
		end = len(items)
	}

	return items[skip:end]
}
