package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/smartair/travelsearch/internal/aggregator"
	"github.com/smartair/travelsearch/internal/amadeus"
	"github.com/smartair/travelsearch/internal/cache"
	"github.com/smartair/travelsearch/internal/models"
)

type SearchHandler struct {
	aggregator *aggregator.Aggregator
	cache      cache.Cache
}

func NewSearchHandler(agg *aggregator.Aggregator, c cache.Cache) *SearchHandler {
	return &SearchHandler{
		aggregator: agg,
		cache:      c,
	}
}

func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	var verr models.ValidationError
	if err := req.Validate(); err != nil {
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "validation_error",
				Message: err.Error(),
				Code:    http.StatusBadRequest,
			})
		}
		return err
	}

	if result, found := h.cache.Get(ctx, req); found {
		return c.JSON(http.StatusOK, buildSearchResponse(req, result, startTime, true))
	}

	result, err := h.aggregator.Search(ctx, req.Origin, req.Destination, req.Months)
	if err != nil {
		return searchError(c, err)
	}

	_ = h.cache.Set(ctx, req, result)

	return c.JSON(http.StatusOK, buildSearchResponse(req, result, startTime, false))
}

// searchError maps the two conditions that escape the core: total search
// failure is a client-visible "not found", auth failure a server-side fault.
func searchError(c echo.Context, err error) error {
	if errors.Is(err, aggregator.ErrNoFlightsFound) {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "no_flights_found",
			Message: err.Error(),
			Code:    http.StatusNotFound,
		})
	}

	var authErr *amadeus.AuthError
	if errors.As(err, &authErr) {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "upstream_auth_error",
			Message: "Flight data provider authentication failed",
			Code:    http.StatusBadGateway,
		})
	}

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "search_error",
		Message: "Failed to search flights: " + err.Error(),
		Code:    http.StatusInternalServerError,
	})
}

func buildSearchResponse(req models.SearchRequest, result *aggregator.Result, startTime time.Time, cacheHit bool) models.SearchResponse {
	return models.SearchResponse{
		SearchCriteria: req,
		Metadata: models.SearchMetadata{
			SearchID:      uuid.New().String(),
			DatesQueried:  result.DatesQueried,
			DatesWithData: result.DatesWithData,
			DatesFailed:   result.DatesFailed,
			FailedDates:   result.FailedDates,
			SearchTimeMs:  time.Since(startTime).Milliseconds(),
			CacheHit:      cacheHit,
		},
		Result: result.Aggregation,
	}
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
