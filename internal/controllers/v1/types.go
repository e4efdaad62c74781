package v1

import (
	ez_uuid "github.com/fintrack-api/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// listLimit is the number of resources returned by list endpoints
// when no limit is requested.
const listLimit = 50

// paginate returns the window of s selected by offset and limit.
// A negative limit returns everything after offset.
func paginate[T any](s []T, offset uint, limit int) []T {
	if int(offset) >= len(s) {
		return []T{}
	}
	s = s[offset:]

	if limit >= 0 && limit < len(s) {
		s = s[:limit]
	}
	return s
}
