package interfaces

import "errors"

var (
	// ErrStaleStatus is returned by conditional status writes when the stored status no
	// longer matches the expected one.
	ErrStaleStatus = errors.New("status was changed concurrently")
	// ErrDuplicateKey is returned when a unique key (identifier, email, name) is taken.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrReferenceMissing is returned when a write depends on an entity that no longer exists.
	ErrReferenceMissing = errors.New("referenced entity does not exist")
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageQuery selects a 1-based page. Limit <= 0 on a repository call means "everything".
type PageQuery struct {
	Page  int
	Limit int
}

// Normalize applies defaults for HTTP-facing listings.
func (q PageQuery) Normalize(defaultLimit int) PageQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	return q
}

func (q PageQuery) Offset() int {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// Window returns the [start, end) bounds of the page within total items.
func (q PageQuery) Window(total int) (int, int) {
	if q.Limit < 1 {
		return 0, total
	}
	start := min(q.Offset(), total)
	end := min(start+q.Limit, total)
	return start, end
}
