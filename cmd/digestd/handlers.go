package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/shukan-hq/shukan-aws-digest/internal/digest"
	"github.com/shukan-hq/shukan-aws-digest/internal/domain"
	"github.com/shukan-hq/shukan-aws-digest/internal/logger"
)

// digestService is the four-operation core the façade serializes.
type digestService interface {
	ListRecent(ctx context.Context, days, limit int) ([]domain.FeedEntry, error)
	Latest(ctx context.Context, series digest.Series) (domain.FeedEntry, bool, error)
	LatestWithDetail(ctx context.Context, series digest.Series) (domain.ArticleDetail, bool, error)
	LatestContent(ctx context.Context, series digest.Series) (domain.ArticleContent, bool, error)
}

type server struct {
	svc digestService
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleListRecent(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", digest.DefaultDays)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	limit, err := queryInt(r, "limit", digest.DefaultLimit)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	entries, err := s.svc.ListRecent(r.Context(), days, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *server) handleLatest(w http.ResponseWriter, r *http.Request) {
	series, err := querySeries(r)
	if err != nil {
		writeError(w, err)
		return
	}

	entry, ok, err := s.svc.Latest(r.Context(), series)
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *server) handleLatestDetail(w http.ResponseWriter, r *http.Request) {
	series, err := querySeries(r)
	if err != nil {
		writeError(w, err)
		return
	}

	detail, ok, err := s.svc.LatestWithDetail(r.Context(), series)
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *server) handleLatestContent(w http.ResponseWriter, r *http.Request) {
	series, err := querySeries(r)
	if err != nil {
		writeError(w, err)
		return
	}

	content, ok, err := s.svc.LatestContent(r.Context(), series)
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, content)
}

// querySeries parses the optional series filter, defaulting to the
// weekly digest like the upstream feed tooling.
func querySeries(r *http.Request) (digest.Series, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("series"))
	if raw == "" {
		return digest.SeriesWeekly, nil
	}
	return digest.ParseSeries(raw)
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.InvalidArgumentError{Name: name, Reason: "must be an integer"}
	}
	return v, nil
}

// writeError maps core error kinds onto HTTP statuses so a failure stays
// distinguishable from a successful-but-empty response.
func writeError(w http.ResponseWriter, err error) {
	var invalid *domain.InvalidArgumentError
	var fetch *domain.FetchError
	var parse *domain.ParseError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &invalid):
		status = http.StatusBadRequest
	case errors.As(err, &fetch), errors.As(err, &parse):
		status = http.StatusBadGateway
	}

	if status >= 500 {
		logger.ErrorObj("operation failed", "error", err.Error())
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
