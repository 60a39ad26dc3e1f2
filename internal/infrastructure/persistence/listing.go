package persistence

import (
	"fmt"
	"strings"

	"github.com/shopcore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// listingColumns maps the logical fields of a listing plan to SQL for one table.
// Fields missing from the maps are rejected, so plans never reach SQL unchecked.
type listingColumns struct {
	// Status is the status column; empty means the table ignores status constraints
	Status string
	// Search maps searchable logical fields to columns
	Search map[string]string
	// Filters maps filter fields to a condition with a single IN placeholder
	Filters map[string]string
	// Sort maps sort keys to columns
	Sort map[string]string
}

// listingPredicate applies status, filter and search constraints of plan
func listingPredicate(plan shared.ListingPlan, cols listingColumns) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if cols.Status != "" && len(plan.Statuses) > 0 {
			db = db.Where(cols.Status+" IN ?", plan.Statuses)
		}

		for _, f := range plan.Filters {
			cond, ok := cols.Filters[f.Field]
			if !ok {
				_ = db.AddError(fmt.Errorf("unsupported listing filter %q", f.Field))
				return db
			}
			db = db.Where(cond, f.Values)
		}

		if plan.HasSearch() {
			clauses := make([]string, 0, len(plan.SearchFields))
			args := make([]any, 0, len(plan.SearchFields))
			pattern := "%" + escapeLike(plan.Search) + "%"
			for _, field := range plan.SearchFields {
				col, ok := cols.Search[field]
				if !ok {
					_ = db.AddError(fmt.Errorf("unsupported search field %q", field))
					return db
				}
				clauses = append(clauses, "LOWER("+col+`) LIKE LOWER(?) ESCAPE '\'`)
				args = append(args, pattern)
			}
			db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
		}
		return db
	}
}

// listingWindow applies ordering and, for windowed plans, offset and limit
func listingWindow(plan shared.ListingPlan, cols listingColumns) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		col, ok := cols.Sort[plan.SortField]
		if !ok {
			col = "created_at"
		}
		dir := shared.NormalizeSortOrder(plan.SortOrder)
		db = db.Order(col + " " + dir).Order("id " + dir)

		if plan.Windowed() {
			db = db.Offset(plan.Offset).Limit(plan.Limit)
		}
		return db
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE metacharacters so the term matches literally
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

var createdAtSort = map[string]string{shared.SortFieldCreatedAt: "created_at"}
