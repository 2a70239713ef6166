package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	deliverycontext "localfy/internal/delivery/context"
	"localfy/internal/delivery/http/response"
	"localfy/internal/domain/repository"
	"localfy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BusinessHandler holds dependencies for directory-related handlers.
type BusinessHandler struct {
	directory usecase.DirectoryUsecase
	watcher   usecase.WatcherUsecase
	analytics usecase.AnalyticsUsecase
	logger    *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(directory usecase.DirectoryUsecase, watcher usecase.WatcherUsecase, analytics usecase.AnalyticsUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		directory: directory,
		watcher:   watcher,
		analytics: analytics,
		logger:    logger,
	}
}

// ListBusinesses returns the current directory state, refreshing it first
// when needed. ?refresh=force bypasses all caches.
func (h *BusinessHandler) ListBusinesses(c echo.Context) error {
	ctx := c.Request().Context()
	force := c.QueryParam("refresh") == "force"

	if err := h.directory.Refresh(ctx, force); err != nil {
		// A failed refresh still leaves usable state behind; report it
		// inside the payload like any other stale view.
		h.logger.Warn("Directory refresh failed", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, h.directory.State(), "")
}

// LoadMore appends the next page for the current category selection and
// returns the new state.
func (h *BusinessHandler) LoadMore(c echo.Context) error {
	if err := h.directory.LoadMore(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.directory.State(), "")
}

type selectCategoryInput struct {
	Category *string `json:"category"`
}

// SelectCategory sets or clears the active category filter.
func (h *BusinessHandler) SelectCategory(c echo.Context) error {
	var input selectCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	h.directory.SetSelectedCategory(input.Category)

	return response.Success(c, http.StatusOK, h.directory.State(), "")
}

// ResetPagination drops the pagination cursor so the next page fetch starts
// from the top.
func (h *BusinessHandler) ResetPagination(c echo.Context) error {
	h.directory.ResetPagination()

	return response.Success(c, http.StatusOK, nil, "Pagination reset")
}

// GetBusiness returns a single business and records the profile view.
func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	business, err := h.directory.GetBusinessByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return response.NotFound(c, "BUSINESS_NOT_FOUND", "Business not found")
		}

		return errors.WithStack(err)
	}

	h.analytics.TrackBusinessView(ctx, id, deliverycontext.UserID(c))

	return response.Success(c, http.StatusOK, business, "")
}

type updateBusinessOutput struct {
	Updated bool `json:"updated"`
}

// UpdateBusiness applies a partial update. The local view always keeps the
// change; the reported flag is the remote write outcome.
func (h *BusinessHandler) UpdateBusiness(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update payload")
	}
	if len(fields) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Update payload is empty")
	}

	updated := h.directory.UpdateBusiness(c.Request().Context(), c.Param("id"), fields)

	return response.Success(c, http.StatusOK, updateBusinessOutput{Updated: updated}, "")
}

type analyticsSummaryOutput struct {
	BusinessID string  `json:"business_id"`
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	Views      int64   `json:"views"`
}

// AnalyticsSummary combines the live view counter with the current rating
// for the owner dashboard.
func (h *BusinessHandler) AnalyticsSummary(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	business, err := h.directory.GetBusinessByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return response.NotFound(c, "BUSINESS_NOT_FOUND", "Business not found")
		}

		return errors.WithStack(err)
	}

	summary := h.analytics.SummarizeBusiness(id)

	return response.Success(c, http.StatusOK, analyticsSummaryOutput{
		BusinessID: business.ID,
		Name:       business.Name,
		Rating:     business.Rating,
		Views:      summary.Views,
	}, "")
}

// SearchBusinesses filters the in-memory list by name and records the search.
func (h *BusinessHandler) SearchBusinesses(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter q is required")
	}

	state := h.directory.State()
	needle := strings.ToLower(query)
	matches := state.Filtered[:0:0]
	for _, b := range state.Filtered {
		if strings.Contains(strings.ToLower(b.Name), needle) ||
			strings.Contains(strings.ToLower(b.Description), needle) {
			matches = append(matches, b)
		}
	}

	h.analytics.TrackSearch(c.Request().Context(), query, len(matches), deliverycontext.UserID(c))

	return response.Success(c, http.StatusOK, matches, "")
}

// Nearby returns businesses within the given radius of a point.
func (h *BusinessHandler) Nearby(c echo.Context) error {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if latErr != nil || lngErr != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat and lng are required")
	}

	radius := 5000.0
	if raw := c.QueryParam("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_INPUT", "radius must be a positive number")
		}
		radius = parsed
	}

	return response.Success(c, http.StatusOK, h.directory.Nearby(lat, lng, radius), "")
}

// ToggleFavorite flips the favorite mark for a business.
func (h *BusinessHandler) ToggleFavorite(c echo.Context) error {
	id := c.Param("id")
	h.directory.ToggleFavorite(id)

	return response.Success(c, http.StatusOK, map[string]bool{
		"favorite": h.directory.IsFavorite(id),
	}, "")
}

// ListFavorites returns the IDs of all favorited businesses.
func (h *BusinessHandler) ListFavorites(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.directory.Favorites(), "")
}

type watchInput struct {
	IDs []string `json:"ids"`
}

// Watch reconciles the set of live-updated businesses.
func (h *BusinessHandler) Watch(c echo.Context) error {
	var input watchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid watch payload")
	}

	h.watcher.Observe(input.IDs)

	return response.Success(c, http.StatusOK, nil, "Watch set updated")
}

// Unwatch stops every live subscription.
func (h *BusinessHandler) Unwatch(c echo.Context) error {
	h.watcher.Close()

	return response.Success(c, http.StatusOK, nil, "Watch set cleared")
}
