package pagination

import (
	"math"

	"gorm.io/gorm"
)

const DefaultLimit = 20

// TotalPages returns the page count for total items at the given page size.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// Clamp keeps a requested page inside [1, totalPages]. A list with no pages
// still reports page 1, so navigation controls always have a valid target.
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Bounds converts a page into slice offsets over a list of length items.
// The returned range is [start, end) and never exceeds the list.
func Bounds(page, limit, length int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	page = Clamp(page, TotalPages(int64(length), limit))
	start := (page - 1) * limit
	if start > length {
		start = length
	}
	end := start + limit
	if end > length {
		end = length
	}
	return start, end
}

// Paginate is a GORM scope applying limit/offset for the clamped page.
func Paginate(page, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit <= 0 {
			limit = DefaultLimit
		}
		if page < 1 {
			page = 1
		}
		offset := (page - 1) * limit
		return db.Offset(offset).Limit(limit)
	}
}
