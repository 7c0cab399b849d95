package orders

import (
	"sort"
	"strings"

	"github.com/jafarshop/storeconnect/internal/domain"
)

// Query describes a listing request over a fetched order set
type Query struct {
	SearchTerm   string
	StatusFilter domain.OrderStatus
	Page         int
	PageSize     int
}

// Page is one page of a filtered, sorted order listing
type Page struct {
	Items      []domain.Order `json:"items"`
	TotalPages int            `json:"total_pages"`
	TotalCount int            `json:"total_count"`
}

// FilterSortPaginate applies search, status filter, newest-first sort and
// pagination to orders. Pure function: the input slice is never mutated.
//
// Search is a case-insensitive substring match across order number,
// customer name and customer email. Pages are 1-indexed; an out-of-range
// page yields an empty slice rather than an error.
func FilterSortPaginate(all []domain.Order, q Query) Page {
	term := strings.ToLower(q.SearchTerm)

	filtered := make([]domain.Order, 0, len(all))
	for _, order := range all {
		if term != "" && !matchesSearch(order, term) {
			continue
		}
		if q.StatusFilter != "" && order.Status != q.StatusFilter {
			continue
		}
		filtered = append(filtered, order)
	}

	// Stable keeps the input order for orders sharing a date.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].OrderDate.After(filtered[j].OrderDate)
	})

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = 5
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize

	page := q.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return Page{Items: []domain.Order{}, TotalPages: totalPages, TotalCount: len(filtered)}
	}

	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page{
		Items:      filtered[start:end],
		TotalPages: totalPages,
		TotalCount: len(filtered),
	}
}

func matchesSearch(order domain.Order, term string) bool {
	return strings.Contains(strings.ToLower(order.OrderNumber), term) ||
		strings.Contains(strings.ToLower(order.CustomerName), term) ||
		strings.Contains(strings.ToLower(order.CustomerEmail), term)
}
