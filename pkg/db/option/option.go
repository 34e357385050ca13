package option

import (
	"time"

	"github.com/tailorsoft/atelier/pkg/db/pagination"
	"gorm.io/gorm"
)

// Option applies a query refinement to a gorm statement.
type Option interface {
	Apply(*gorm.DB) *gorm.DB
}

type paginationOption struct {
	page pagination.Pagination
}

// ApplyPagination turns a cursor page request into a query option.
// Listings order by created_at desc, id desc; the cursor marks the last
// row of the previous page. One extra row is fetched to detect has_more.
func ApplyPagination(page pagination.Pagination) Option {
	return paginationOption{page: page}
}

func (o paginationOption) Apply(stmt *gorm.DB) *gorm.DB {
	size := o.page.PageSize
	if size <= 0 {
		size = 10
	}

	if o.page.PageToken != "" {
		cursor, err := pagination.DecodeCursor(o.page.PageToken)
		if err == nil && cursor != nil {
			createdAt, timeErr := time.Parse(time.RFC3339, cursor.CreatedAt)
			if timeErr == nil {
				stmt = stmt.Where(
					"(created_at < ? OR (created_at = ? AND id < ?))",
					createdAt, createdAt, cursor.ID,
				)
			}
		}
	}

	return stmt.Limit(size + 1)
}
