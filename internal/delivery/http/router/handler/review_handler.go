package handler

import (
	"net/http"
	"strconv"
	"time"

	deliverycontext "localfy/internal/delivery/context"
	"localfy/internal/delivery/http/response"
	"localfy/internal/domain/entity"
	"localfy/internal/usecase"
	"localfy/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultReviewPageSize = 20

// ReviewHandler holds dependencies for review-related handlers.
type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// ListReviews returns the newest reviews of a business.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	pageSize := defaultReviewPageSize
	if raw := c.QueryParam("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			return response.BadRequest(c, "INVALID_INPUT", "pageSize must be between 1 and 100")
		}
		pageSize = parsed
	}

	page, err := h.uc.ListReviews(c.Request().Context(), c.Param("id"), nil, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"reviews": page.Reviews,
		"hasMore": page.HasMore,
	}, "")
}

type addReviewInput struct {
	AuthorName string  `json:"authorName"`
	Rating     float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    string  `json:"comment"`
}

// AddReview creates a review on a business for the authenticated user.
func (h *ReviewHandler) AddReview(c echo.Context) error {
	var input addReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_RATING", "Rating must be between 1 and 5")
	}

	review := &entity.Review{
		BusinessID: c.Param("id"),
		AuthorID:   deliverycontext.UserID(c),
		AuthorName: input.AuthorName,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  time.Now(),
	}

	stored, err := h.uc.AddReview(c.Request().Context(), review)
	if err != nil {
		if errors.Is(err, impl.ErrInvalidReviewRating) {
			return response.BadRequest(c, "INVALID_RATING", "Rating must be between 1 and 5")
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, stored, "Review created")
}
