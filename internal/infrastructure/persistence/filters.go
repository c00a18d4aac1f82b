package persistence

import (
	"strings"

	"github.com/backoffice/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyOrder applies validated ordering to the query. OrderBy is checked
// against the caller's column whitelist so request parameters can never
// reach the ORDER BY clause verbatim.
func applyOrder(query *gorm.DB, filter shared.Filter, allowed map[string]bool, fallback string) *gorm.DB {
	column := filter.OrderBy
	if column == "" || !allowed[column] {
		return query.Order(fallback)
	}
	dir := "ASC"
	if strings.EqualFold(filter.OrderDir, "desc") {
		dir = "DESC"
	}
	return query.Order(column + " " + dir)
}

// applyPagination applies offset pagination to the query
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.Limit > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.Limit)
	}
	return query
}

// applySearch appends a case-insensitive name match, portable across
// postgres and sqlite
func applySearch(query *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return query
	}
	return query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
}

// excludeDeleted filters out soft-deleted master data rows
func excludeDeleted(query *gorm.DB) *gorm.DB {
	return query.Where("deleted_at IS NULL")
}
