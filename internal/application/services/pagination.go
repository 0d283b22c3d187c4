package services

const defaultPageSize = 10

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// pageCount is the number of pages needed for total items
func pageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// pageBounds returns the slice bounds of a 1-based page over total items.
// Pages past the end yield an empty range.
func pageBounds(total, page, pageSize int) (start, end int) {
	page = normalizePage(page)
	if page-1 >= pageCount(total, pageSize) {
		return total, total
	}
	start = (page - 1) * pageSize
	end = start + pageSize
	if end > total {
		end = total
	}
	return start, end
}

// hasMorePages reports whether a page after the given one holds items
func hasMorePages(total, page, pageSize int) bool {
	return normalizePage(page) < pageCount(total, pageSize)
}
