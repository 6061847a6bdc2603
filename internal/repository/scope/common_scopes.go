package scope

import "gorm.io/gorm"

func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

func OrderByNameAsc(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

// Paginate converts a 1-based page and page size into LIMIT/OFFSET.
// Non-positive values fall back to page 1 and 20 rows.
func Paginate(page, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 20
		}
		return db.Limit(limit).Offset((page - 1) * limit)
	}
}
