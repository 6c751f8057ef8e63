// ABOUTME: HTTP handlers for the article endpoints
// ABOUTME: Parses query parameters and delegates to the article service

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"newshub-api/api/dto/mappers"
	"newshub-api/api/dto/responses"
	"newshub-api/core/domain"
	coreerrors "newshub-api/core/errors"
	"newshub-api/core/interfaces"
	"newshub-api/pkg/metrics"
)

// ArticleFetcher is the service surface the article handlers need
type ArticleFetcher interface {
	Fetch(ctx context.Context, category *domain.Category, page int, forceRefresh bool) ([]domain.Article, error)
	ClearCache()
}

// ArticlesHandler handles article fetch and cache management requests
type ArticlesHandler struct {
	service ArticleFetcher
	logger  interfaces.Logger
}

// NewArticlesHandler creates a new articles handler
func NewArticlesHandler(service ArticleFetcher, logger interfaces.Logger) *ArticlesHandler {
	return &ArticlesHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /articles
func (h *ArticlesHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var category *domain.Category
	categoryLabel := "all"
	if raw := query.Get("category"); raw != "" {
		parsed, err := domain.ParseCategory(raw)
		if err != nil {
			writeError(w, &coreerrors.ValidationError{
				Field:   "category",
				Message: "unknown category: " + raw,
			})
			return
		}
		category = &parsed
		categoryLabel = parsed.String()
	}

	page := 1
	if raw := query.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, &coreerrors.ValidationError{
				Field:   "page",
				Message: "page must be an integer",
			})
			return
		}
		page = parsed
	}

	forceRefresh := query.Get("refresh") == "true"

	articles, err := h.service.Fetch(r.Context(), category, page, forceRefresh)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.ArticlesServed.WithLabelValues(categoryLabel).Add(float64(len(articles)))

	writeJSON(w, http.StatusOK, responses.ArticlesResponse{
		Articles: mappers.ToArticleResponses(articles),
		Category: categoryLabel,
		Page:     page,
		Count:    len(articles),
	})
}

// ClearCache handles POST /cache/clear
func (h *ArticlesHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.service.ClearCache()
	metrics.CacheClears.Inc()

	if h.logger != nil {
		h.logger.Info("Article cache cleared", nil)
	}

	writeJSON(w, http.StatusOK, responses.CacheClearResponse{Status: "cleared"})
}
