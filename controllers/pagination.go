package controllers

import "strconv"

// parsePagination normalizes user-supplied page/limit query values. Bad,
// zero or negative input falls back to the defaults so list handlers never
// compute a page count with a zero limit.
func parsePagination(pageStr, limitStr string) (page, limit, offset int) {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit, (page - 1) * limit
}
