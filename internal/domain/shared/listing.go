package shared

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sort directions understood by listing plans
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// SortFieldCreatedAt is the only sort key listings expose
const SortFieldCreatedAt = "createdAt"

// ListingInput is the pagination input accepted by every listing operation
type ListingInput struct {
	Page      int
	Limit     int
	Search    string
	SortOrder string
}

// DefaultListingInput returns the first page with a limit of 10
func DefaultListingInput() ListingInput {
	return ListingInput{Page: 1, Limit: 10}
}

// InConstraint restricts Field to one of Values
type InConstraint struct {
	Field  string
	Values []string
}

// ListingSpec describes what a caller may filter and search on
type ListingSpec struct {
	// SearchFields are the fields the caller asked to search in
	SearchFields []string
	// AllowedSearchFields is the whitelist for SearchFields; nil allows none
	AllowedSearchFields []string
	// Filters are ANDed as IN constraints; empty value sets are skipped
	Filters []InConstraint
	// Statuses is the status IN constraint; empty means the entity has no status
	Statuses []string
}

// ListingPlan is a filter predicate with sort key and window.
// A plan whose Limit is zero is unwindowed and is used for counting.
type ListingPlan struct {
	Statuses     []string
	Filters      []InConstraint
	Search       string
	SearchFields []string
	SortField    string
	SortOrder    string
	Offset       int
	Limit        int
}

// BuildListingPlan validates the pagination input and composes the listing plan
func BuildListingPlan(in ListingInput, spec ListingSpec) (ListingPlan, error) {
	if in.Page < 1 {
		return ListingPlan{}, NewFieldError("page", "page must be greater than or equal to 1")
	}
	if in.Limit < 1 {
		return ListingPlan{}, NewFieldError("limit", "limit must be greater than or equal to 1")
	}

	plan := ListingPlan{
		Statuses:  append([]string(nil), spec.Statuses...),
		SortField: SortFieldCreatedAt,
		SortOrder: NormalizeSortOrder(in.SortOrder),
		Offset:    (in.Page - 1) * in.Limit,
		Limit:     in.Limit,
	}

	for _, f := range spec.Filters {
		if len(f.Values) == 0 {
			continue
		}
		plan.Filters = append(plan.Filters, InConstraint{
			Field:  f.Field,
			Values: append([]string(nil), f.Values...),
		})
	}

	search := NormalizeSearchTerm(in.Search)
	if search != "" && len(spec.SearchFields) > 0 {
		fields, err := whitelistFields(spec.SearchFields, spec.AllowedSearchFields)
		if err != nil {
			return ListingPlan{}, err
		}
		plan.Search = search
		plan.SearchFields = fields
	}

	return plan, nil
}

// CountPlan returns the same predicate without a window
func (p ListingPlan) CountPlan() ListingPlan {
	p.Offset = 0
	p.Limit = 0
	return p
}

// Windowed reports whether the plan selects a page
func (p ListingPlan) Windowed() bool {
	return p.Limit > 0
}

// HasSearch reports whether the plan carries a search group
func (p ListingPlan) HasSearch() bool {
	return p.Search != "" && len(p.SearchFields) > 0
}

// NormalizeSortOrder returns ASC only for a case-insensitive "ASC"; anything else is DESC
func NormalizeSortOrder(order string) string {
	if strings.ToUpper(strings.TrimSpace(order)) == SortAsc {
		return SortAsc
	}
	return SortDesc
}

// NormalizeSearchTerm trims a search term and puts it in NFC form. Case is
// kept; stores fold both sides of the comparison.
func NormalizeSearchTerm(term string) string {
	return norm.NFC.String(strings.TrimSpace(term))
}

func whitelistFields(requested, allowed []string) ([]string, error) {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		allowedSet[f] = struct{}{}
	}

	seen := make(map[string]struct{}, len(requested))
	fields := make([]string, 0, len(requested))
	for _, f := range requested {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, ok := allowedSet[f]; !ok {
			return nil, NewFieldError("searchFields", fmt.Sprintf("cannot search on field %q", f))
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		fields = append(fields, f)
	}
	return fields, nil
}
