package service

import "github.com/amowaisusmani/student-management-backend/internal/response"

// maxPerPage caps a caller-supplied page size.
const maxPerPage = 100

// normalizePaging clamps page/perPage and derives limit/offset. Page
// numbering starts at 1; perPage falls back to def (25 unless configured)
// and is capped at maxPerPage. A page past the end simply yields an empty
// result from the store, never an error.
func normalizePaging(page, perPage, def int) (limit, offset, normPage, normPerPage int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = def
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return perPage, (page - 1) * perPage, page, perPage
}

// buildPagination assembles the response pagination block.
func buildPagination(page, perPage, total int) *response.Pagination {
	return &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
}
