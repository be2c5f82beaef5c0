package persistence

import (
	"strings"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
	"gorm.io/gorm"
)

// likePattern builds a case-insensitive LIKE pattern; callers compare against LOWER(column)
func likePattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}

// applyPagination applies page/limit options. Limit wins when both are set.
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	switch {
	case filter.Limit > 0:
		query = query.Limit(filter.Limit)
	case filter.Page > 0 && filter.PageSize > 0:
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query
}

// newestFirst orders rows by creation time, breaking ties by id
func newestFirst(query *gorm.DB) *gorm.DB {
	return query.Order("created_at DESC").Order("id DESC")
}
