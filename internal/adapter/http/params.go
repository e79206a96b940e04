package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// pathID parses the {id} route parameter as a UUID
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errors.New("id must be a valid UUID")
	}
	return id, nil
}

// parseDate accepts a plain calendar date or a full RFC3339 timestamp
func parseDate(raw string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, raw, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("date must be YYYY-MM-DD or RFC3339")
}

// queryDate parses an optional date query parameter, defaulting to now
func queryDate(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Now(), nil
	}
	return parseDate(raw)
}
