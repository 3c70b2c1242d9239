package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/myrjola/planfit/internal/errors"
	"github.com/myrjola/planfit/internal/metrics"
	"github.com/myrjola/planfit/internal/plan"
)

// urlDateFormat is the day-month-year convention used in URL paths, where
// slashes are not available.
const urlDateFormat = "02-01-2006"

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError, map[string]string{
		"error": http.StatusText(http.StatusInternalServerError),
	})
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.writeJSON(w, r, status, map[string]string{"error": message})
}

// handleError maps known error categories to client errors and everything
// else to a server error.
func (app *application) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, plan.ErrValidation):
		app.clientError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, metrics.ErrUnknownIntensity):
		app.clientError(w, r, http.StatusBadRequest, err.Error())
	default:
		app.serverError(w, r, err)
	}
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "encode response", errors.SlogError(err))
	}
}

// decodeJSON decodes the request body into dst and reports malformed input
// as a client error.
func (app *application) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "malformed JSON body")
		return false
	}
	return true
}

// parseDateParam parses the "date" path parameter. Both the URL convention
// 02-01-2006 and ISO 2006-01-02 are accepted. On failure it sends HTTP 404.
func (app *application) parseDateParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	dateStr := r.PathValue("date")
	date, err := time.Parse(urlDateFormat, dateStr)
	if err != nil {
		date, err = time.Parse(time.DateOnly, dateStr)
	}
	if err != nil {
		http.NotFound(w, r)
		return time.Time{}, false
	}
	return date, true
}

// renderMarkdown converts markdown notes to HTML, falling back to the raw
// text when conversion fails.
func (app *application) renderMarkdown(r *http.Request, source string) string {
	if source == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := app.markdown.Convert([]byte(source), &buf); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelWarn, "render markdown", errors.SlogError(err))
		return source
	}
	return buf.String()
}
