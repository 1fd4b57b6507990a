// Package filter derives display lists from fetched master lists: stable
// newest-first ordering plus facet filtering. Functions never mutate their
// input and never trigger a re-fetch; callers re-run them whenever the
// master list or a facet changes.
package filter

import (
	"fmt"
	"sort"
	"time"

	"github.com/sistemasvip/client-portal/internal/core/domain"
)

// FacetAll is the identity facet value: no restriction on the dimension.
const FacetAll = "TODAS"

// OrderStatusFacet is a single-select restriction on order status.
type OrderStatusFacet string

// ParseOrderStatusFacet validates a raw facet value from a query parameter.
// Empty means TODAS.
func ParseOrderStatusFacet(raw string) (OrderStatusFacet, error) {
	if raw == "" || raw == FacetAll {
		return FacetAll, nil
	}
	if !domain.OrderStatus(raw).Valid() {
		return "", fmt.Errorf("unknown order status facet %q", raw)
	}
	return OrderStatusFacet(raw), nil
}

// SortOrders returns a copy of in, ordered newest first by creation date.
// Equal timestamps keep their fetch order.
func SortOrders(in []domain.Order) []domain.Order {
	out := make([]domain.Order, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Orders sorts in newest-first and keeps only the entries matching the
// status facet. TODAS is the identity transform over the sorted list.
func Orders(in []domain.Order, facet OrderStatusFacet) []domain.Order {
	sorted := SortOrders(in)
	if facet == FacetAll {
		return sorted
	}
	out := make([]domain.Order, 0, len(sorted))
	for _, o := range sorted {
		if o.Status == domain.OrderStatus(facet) {
			out = append(out, o)
		}
	}
	return out
}

// TypeFacet is a single-select restriction on transaction type.
type TypeFacet string

// ParseTypeFacet validates a raw transaction type facet. Empty means TODAS.
func ParseTypeFacet(raw string) (TypeFacet, error) {
	if raw == "" || raw == FacetAll {
		return FacetAll, nil
	}
	if !domain.TransactionType(raw).Valid() {
		return "", fmt.Errorf("unknown transaction type facet %q", raw)
	}
	return TypeFacet(raw), nil
}

// DateRange is an inclusive [From, To] restriction evaluated against day
// boundaries: From expands to 00:00:00 of its day, To to the last instant
// before the following day. A From after To yields an empty result by
// construction; the range picker is expected to swap endpoints before
// committing, not this engine.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether ts falls inside the day-expanded range.
func (r DateRange) Contains(ts time.Time) bool {
	start := dayStart(r.From)
	end := dayStart(r.To).AddDate(0, 0, 1)
	return !ts.Before(start) && ts.Before(end)
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// TransactionFacets combines the two independent transaction dimensions
// with logical AND. A nil Range means no date restriction.
type TransactionFacets struct {
	Type  TypeFacet
	Range *DateRange
}

// SortTransactions returns a copy of in, ordered newest first by occurrence
// date. Equal timestamps keep their fetch order.
func SortTransactions(in []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Transactions sorts in newest-first and keeps only entries matching every
// active facet.
func Transactions(in []domain.Transaction, f TransactionFacets) []domain.Transaction {
	sorted := SortTransactions(in)
	if (f.Type == "" || f.Type == FacetAll) && f.Range == nil {
		return sorted
	}
	out := make([]domain.Transaction, 0, len(sorted))
	for _, tx := range sorted {
		if f.Type != "" && f.Type != FacetAll && tx.Type != domain.TransactionType(f.Type) {
			continue
		}
		if f.Range != nil && !f.Range.Contains(tx.Timestamp) {
			continue
		}
		out = append(out, tx)
	}
	return out
}
