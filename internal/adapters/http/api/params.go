package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/futebol/internal/domain/timeline"
)

// pathInt parses the named path wildcard as an integer.
func pathInt(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidPath, name, raw)
	}
	return v, nil
}

// pathString returns the named path wildcard, rejecting blank values.
func pathString(r *http.Request, name string) (string, error) {
	v := r.PathValue(name)
	if strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrInvalidPath, name)
	}
	return v, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidQuery, name, raw)
	}
	return v, nil
}

// queryList collects a parameter given repeatedly and/or comma separated.
func queryList(r *http.Request, name string) []string {
	var out []string
	for _, v := range r.URL.Query()[name] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// windowParams reads minuto_inicial and minuto_final, defaulting to the
// full match.
func windowParams(r *http.Request) (from, to int, err error) {
	if from, err = queryInt(r, "minuto_inicial", timeline.FullMatch.From); err != nil {
		return 0, 0, err
	}
	if to, err = queryInt(r, "minuto_final", timeline.FullMatch.To); err != nil {
		return 0, 0, err
	}
	return from, to, nil
}
