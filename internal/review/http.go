// Copyright (c) 2026 BrewBuzz. All rights reserved.

/*
HTTP interface for review intake and retrieval.

# Routing Strategy

  - Public: Reviews and stats for public coffees are readable by everyone.
  - Authenticated: Posting and deleting reviews require a logged-in member.
*/
package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brewbuzz/brewbuzz/internal/platform/middleware"
	requestutil "github.com/brewbuzz/brewbuzz/internal/platform/request"
	"github.com/brewbuzz/brewbuzz/internal/platform/respond"
	"github.com/brewbuzz/brewbuzz/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for the review domain.
type Handler struct {
	service *Service
}

// NewHandler constructs a new review [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the review endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Authenticated Endpoints
	router.Group(func(member chi.Router) {
		member.Use(middleware.RequireAuth)
		member.Post("/", handler.addReview)
		member.Delete("/{id}", handler.deleteReview)
	})

	return router
}

// RegisterCoffeeRoutes attaches the per-coffee read endpoints to the coffee
// router: GET /coffees/{id}/reviews and GET /coffees/{id}/stats.
func (handler *Handler) RegisterCoffeeRoutes(router chi.Router) {
	router.Get("/{id}/reviews", handler.listByCoffee)
	router.Get("/{id}/stats", handler.getStats)
}

// # Intake Endpoints

/*
POST /api/v1/reviews.

Description: Creates a review on a coffee visible to the caller. The flavor
tags field is a single comma-separated string.

Request:
  - Body: AddReviewInput (coffee_id, rating 1-5, body, flavor_tags)

Response:
  - 201: Review: The persisted review
  - 400: ValidationError: Rating out of range or malformed fields
  - 401: Unauthorized: No valid session
  - 404: NotFound: Coffee missing or not visible to the caller
*/
func (handler *Handler) addReview(writer http.ResponseWriter, request *http.Request) {
	var input AddReviewInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.AddReview(request.Context(), requestutil.Claims(request), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, review)
}

/*
DELETE /api/v1/reviews/{id}.

Description: Deletes the caller's review. Deleting a review that no longer
exists succeeds, so retries are safe.

Response:
  - 204: NoContent: Deleted (or already gone)
  - 401: Unauthorized: No valid session
  - 403: Forbidden: Caller is not the review's author
*/
func (handler *Handler) deleteReview(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.DeleteReview(request.Context(), requestutil.Claims(request), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Read Endpoints

/*
GET /api/v1/coffees/{id}/reviews.

Description: Lists every review for a coffee, oldest first.

Response:
  - 200: []Review
  - 404: NotFound: Coffee missing or not visible to the caller
*/
func (handler *Handler) listByCoffee(writer http.ResponseWriter, request *http.Request) {
	coffeeID := requestutil.Param(request, "id")

	reviews, err := handler.service.ListByCoffee(request.Context(), requestutil.Claims(request), coffeeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reviews)
}

/*
GET /api/v1/coffees/{id}/stats.

Description: Returns the aggregated statistics for one coffee: average
rating, review count, and the most frequent flavor tags.

Response:
  - 200: Stats
  - 404: NotFound: Coffee missing or not visible to the caller
*/
func (handler *Handler) getStats(writer http.ResponseWriter, request *http.Request) {
	coffeeID := requestutil.Param(request, "id")

	stats, err := handler.service.GetStats(request.Context(), requestutil.Claims(request), coffeeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, stats)
}

/*
GET /api/v1/profile/reviews.

Description: Lists the caller's reviews, newest first.

Response:
  - 200: []Review
  - 401: Unauthorized: No valid session
*/
func (handler *Handler) MyReviewsEndpoint(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	reviews, total, err := handler.service.ListMine(request.Context(), requestutil.Claims(request), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, reviews, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
