// Copyright (c) 2026 BrewBuzz. All rights reserved.

/*
HTTP interface for the admin moderation queue.

Every endpoint sits behind the admin role gate at the router, and the
service re-checks the role on each call.
*/
package moderation

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brewbuzz/brewbuzz/internal/platform/middleware"
	requestutil "github.com/brewbuzz/brewbuzz/internal/platform/request"
	"github.com/brewbuzz/brewbuzz/internal/platform/respond"
	"github.com/brewbuzz/brewbuzz/internal/platform/sec"
	"github.com/brewbuzz/brewbuzz/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for moderation decisions.
type Handler struct {
	service *Service
}

// NewHandler constructs a new moderation [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the admin moderation endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireRole(sec.RoleAdmin))

	// Coffee queue
	router.Get("/coffees", handler.listPendingCoffees)
	router.Post("/coffees/{id}/approve", handler.approveCoffee)
	router.Post("/coffees/{id}/reject", handler.rejectCoffee)

	// Roaster queue
	router.Get("/roasters", handler.listPendingRoasters)
	router.Post("/roasters/{id}/approve", handler.approveRoaster)
	router.Post("/roasters/{id}/reject", handler.rejectRoaster)

	return router
}

// # Queue Endpoints

/*
GET /api/v1/admin/submissions/coffees.

Description: Lists pending coffee submissions, newest first, with the
submitter's email and roaster name attached.

Response:
  - 200: []PendingCoffee
  - 403: Forbidden: Caller is not an admin
*/
func (handler *Handler) listPendingCoffees(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	pending, total, err := handler.service.ListPendingCoffees(request.Context(), requestutil.Claims(request), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, pending, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/admin/submissions/roasters.

Description: Lists pending roaster submissions, newest first.

Response:
  - 200: []PendingRoaster
  - 403: Forbidden: Caller is not an admin
*/
func (handler *Handler) listPendingRoasters(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	pending, total, err := handler.service.ListPendingRoasters(request.Context(), requestutil.Claims(request), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, pending, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

// # Decision Endpoints

// approveCoffeeRequest carries the optional cascade flag.
type approveCoffeeRequest struct {
	CascadeRoaster bool `json:"cascade_roaster"`
}

/*
POST /api/v1/admin/submissions/coffees/{id}/approve.

Description: Publishes a pending coffee. Approving an already-public coffee
succeeds (idempotent). An optional body flag also approves a pending
roaster in the same decision.

Request:
  - Body (optional): {"cascade_roaster": bool}

Response:
  - 204: NoContent: Approved
  - 404: NotFound: Unknown coffee
  - 409: InvalidTransition: Coffee is in an unrecognised state
*/
func (handler *Handler) approveCoffee(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	// Body is optional; an empty or absent body means no cascade
	var input approveCoffeeRequest
	if request.ContentLength > 0 {
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	if err := handler.service.ApproveCoffee(request.Context(), requestutil.Claims(request), id, input.CascadeRoaster); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
POST /api/v1/admin/submissions/coffees/{id}/reject.

Description: Removes a pending coffee and its reviews. Public coffees cannot
be rejected.

Response:
  - 204: NoContent: Rejected and removed
  - 404: NotFound: Unknown coffee
  - 409: InvalidTransition: Coffee is already public
*/
func (handler *Handler) rejectCoffee(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.RejectCoffee(request.Context(), requestutil.Claims(request), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
POST /api/v1/admin/submissions/roasters/{id}/approve.

Response:
  - 204: NoContent: Approved
  - 404: NotFound: Unknown roaster
*/
func (handler *Handler) approveRoaster(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.ApproveRoaster(request.Context(), requestutil.Claims(request), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
POST /api/v1/admin/submissions/roasters/{id}/reject.

Description: Removes a pending roaster; its coffees and their reviews
cascade.

Response:
  - 204: NoContent: Rejected and removed
  - 404: NotFound: Unknown roaster
  - 409: InvalidTransition: Roaster is already public
*/
func (handler *Handler) rejectRoaster(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.RejectRoaster(request.Context(), requestutil.Claims(request), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
