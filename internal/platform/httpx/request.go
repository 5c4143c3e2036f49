package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

const (
	defaultLimit = 20
	maxLimit     = 100
	maxPage      = 1_000_000
)

// Page is a parsed page/limit query.
type Page struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Decode reads a JSON body into dst.
func Decode(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Invalid("body", "Request body is required")
		}
		return apperr.Invalid("body", "Invalid JSON payload")
	}
	return nil
}

// Pagination parses ?page=&limit=, defaulting to page 1 and 20 rows. Limit is
// capped at 100 and page at 1,000,000 so the offset cannot overflow.
func Pagination(r *http.Request) Page {
	q := r.URL.Query()
	p := Page{Page: 1, Limit: defaultLimit}
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		p.Page = n
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 0 {
		p.Limit = n
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Page > maxPage {
		p.Page = maxPage
	}
	return p
}

// IDParam parses the named URL parameter as a UUID.
func IDParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, apperr.Invalid(name, "Invalid UUID format")
	}
	return id, nil
}
