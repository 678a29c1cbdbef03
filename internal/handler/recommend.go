package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/smartair/travelsearch/internal/models"
	"github.com/smartair/travelsearch/internal/recommend"
)

type RecommendHandler struct {
	source *recommend.Source
}

func NewRecommendHandler(source *recommend.Source) *RecommendHandler {
	return &RecommendHandler{source: source}
}

// Recommend never fails for availability reasons: provider problems fall
// back to the curated table inside the source. Only caller input errors.
func (h *RecommendHandler) Recommend(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.RecommendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	rec, err := h.source.Recommend(ctx, req.Budget, req.Profile, req.TopN)
	if err != nil {
		var verr models.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "validation_error",
				Message: err.Error(),
				Code:    http.StatusBadRequest,
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "recommend_error",
			Message: "Failed to build recommendations: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	return c.JSON(http.StatusOK, models.RecommendResponse{
		SearchID:     uuid.New().String(),
		Budget:       req.Budget,
		Source:       rec.Source,
		Destinations: rec.Destinations,
	})
}
