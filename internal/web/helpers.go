package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/emiliopalmerini/launchdash/internal/domain"
)

// queryError reports a query parameter that could not be parsed.
type queryError struct {
	Param string
	Value string
}

func (e *queryError) Error() string {
	return fmt.Sprintf("query parameter %s: %q is not a number", e.Param, e.Value)
}

// parseFilter reads site, min and max from the query string. Absent values
// fall back to def.
func parseFilter(r *http.Request, def domain.FilterState) (domain.FilterState, error) {
	q := r.URL.Query()
	f := def

	if site := strings.TrimSpace(q.Get("site")); site != "" {
		f.Site = site
	}

	var err error
	if f.Payload.Lo, err = parseBound(q.Get("min"), "min", def.Payload.Lo); err != nil {
		return f, err
	}
	if f.Payload.Hi, err = parseBound(q.Get("max"), "max", def.Payload.Hi); err != nil {
		return f, err
	}
	return f, nil
}

func parseBound(raw, param string, def float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &queryError{Param: param, Value: raw}
	}
	return v, nil
}

// statusFor maps an error to the HTTP status it should be reported with.
func statusFor(err error) int {
	var qe *queryError
	switch {
	case errors.Is(err, domain.ErrInvalidSelection),
		errors.Is(err, domain.ErrInvalidRange),
		errors.As(err, &qe):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}
