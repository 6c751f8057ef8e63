// ABOUTME: HTTP handlers for the favorites endpoints
// ABOUTME: Persists, lists, and removes locally saved articles

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"newshub-api/api/dto/mappers"
	"newshub-api/api/dto/requests"
	"newshub-api/api/dto/responses"
	"newshub-api/core/domain"
	coreerrors "newshub-api/core/errors"
	"newshub-api/core/interfaces"
)

// FavoriteKeeper is the service surface the favorites handlers need
type FavoriteKeeper interface {
	Save(ctx context.Context, article domain.Article) error
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Article, error)
	IsFavorite(ctx context.Context, id string) (bool, error)
}

// FavoritesHandler handles favorite article requests
type FavoritesHandler struct {
	service FavoriteKeeper
	logger  interfaces.Logger
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(service FavoriteKeeper, logger interfaces.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		service: service,
		logger:  logger,
	}
}

// Save handles POST /favorites
func (h *FavoritesHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req requests.SaveFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &coreerrors.ValidationError{
			Field:   "body",
			Message: "invalid JSON payload",
		})
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, &coreerrors.ValidationError{
			Field:   "body",
			Message: err.Error(),
		})
		return
	}

	if err := h.service.Save(r.Context(), mappers.FromSaveFavoriteRequest(req)); err != nil {
		writeError(w, err)
		return
	}

	if h.logger != nil {
		h.logger.Info("Favorite saved", map[string]interface{}{"article_id": req.ID})
	}

	writeJSON(w, http.StatusCreated, mappers.ToArticleResponse(mappers.FromSaveFavoriteRequest(req)))
}

// List handles GET /favorites
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.FavoritesResponse{
		Favorites: mappers.ToArticleResponses(favorites),
		Count:     len(favorites),
	})
}

// Status handles GET /favorites/{id}
func (h *FavoritesHandler) Status(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	favorite, err := h.service.IsFavorite(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.FavoriteStatusResponse{
		ID:       id,
		Favorite: favorite,
	})
}

// Remove handles DELETE /favorites/{id}
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Remove(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	if h.logger != nil {
		h.logger.Info("Favorite removed", map[string]interface{}{"article_id": id})
	}

	w.WriteHeader(http.StatusNoContent)
}
