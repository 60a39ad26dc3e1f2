package catalog

import (
	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
)

// Filter field names understood by catalog repositories
const (
	FilterCategoryID      = "categoryId"
	FilterMasterProductID = "masterProductId"
)

// Searchable fields per entity
var (
	CategorySearchFields      = []string{"name"}
	MasterProductSearchFields = []string{"masterProductName", "sku", "description", "categoryName"}
	SubProductSearchFields    = []string{"subProductName"}
)

// PublishedOnly is the visibility used by default reads
var PublishedOnly = []Status{StatusPublished}

// BuildListingPlan composes a catalog listing plan. The status predicate
// defaults to PUBLISHED when visible is empty.
func BuildListingPlan(in shared.ListingInput, searchFields, allowed []string, filters []shared.InConstraint, visible []Status) (shared.ListingPlan, error) {
	if len(visible) == 0 {
		visible = PublishedOnly
	}
	return shared.BuildListingPlan(in, shared.ListingSpec{
		SearchFields:        searchFields,
		AllowedSearchFields: allowed,
		Filters:             filters,
		Statuses:            StatusStrings(visible),
	})
}

// IDFilter builds an IN constraint over ids
func IDFilter(field string, ids []uuid.UUID) shared.InConstraint {
	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = id.String()
	}
	return shared.InConstraint{Field: field, Values: values}
}
