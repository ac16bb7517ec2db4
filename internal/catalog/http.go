// Copyright (c) 2026 BrewBuzz. All rights reserved.

/*
HTTP interface for catalog discovery and submission intake.

# Routing Strategy

  - Public: Browse, home, coffee and roaster detail pages are open to all
    visitors, anonymous included.
  - Authenticated: Submitting a coffee and listing one's own submissions
    require a logged-in member.

The handler translates between the web/JSON layer and the domain [Service].
*/
package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brewbuzz/brewbuzz/internal/platform/middleware"
	requestutil "github.com/brewbuzz/brewbuzz/internal/platform/request"
	"github.com/brewbuzz/brewbuzz/internal/platform/respond"
	"github.com/brewbuzz/brewbuzz/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for catalog discovery and submission.
type Handler struct {
	service *Service
}

// NewHandler constructs a new catalog [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the coffee endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints
	router.Get("/", handler.listCoffees)
	router.Get("/{id}", handler.getCoffee)

	// ## Submission Intake (Authenticated)
	router.Group(func(member chi.Router) {
		member.Use(middleware.RequireAuth)
		member.Post("/", handler.submitCoffee)
	})

	return router
}

// RoasterRoutes returns a [chi.Router] for the public roaster endpoints.
func (handler *Handler) RoasterRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listRoasters)
	router.Get("/{identifier}", handler.getRoaster)

	return router
}

// # Discovery Endpoints

/*
GET /api/v1/coffees.

Description: Retrieves a paginated list of public coffees with aggregated
review statistics attached.

Request:
  - q: string (Matches coffee or roaster name, case-insensitive)
  - roast_level: string (Light, Medium, Dark)
  - sort: string (name, trending, recent; default name)
  - limit: int
  - page: int

Response:
  - 200: []CoffeeWithStats: Paginated list
*/
func (handler *Handler) listCoffees(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		Query:      queryParams.Get("q"),
		RoastLevel: RoastLevel(queryParams.Get("roast_level")),
		Sort:       queryParams.Get("sort"),
	}

	coffees, total, err := handler.service.ListCoffees(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, coffees, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/coffees/{id}.

Description: Retrieves one coffee with stats. Pending coffees resolve only
for their submitter and admins; everyone else receives 404.

Response:
  - 200: CoffeeWithStats: Success
  - 404: NotFound: Missing or not visible to the caller
*/
func (handler *Handler) getCoffee(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	coffee, err := handler.service.GetCoffee(request.Context(), requestutil.Claims(request), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, coffee)
}

/*
POST /api/v1/coffees.

Description: Submits a new coffee. Member submissions enter the moderation
queue; admin submissions publish immediately.

Request:
  - Body: SubmitCoffeeInput

Response:
  - 201: Coffee: The persisted submission with its assigned visibility
  - 400: ValidationError: Missing or malformed fields
  - 401: Unauthorized: No valid session
*/
func (handler *Handler) submitCoffee(writer http.ResponseWriter, request *http.Request) {
	var input SubmitCoffeeInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	coffee, err := handler.service.SubmitCoffee(request.Context(), requestutil.Claims(request), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, coffee)
}

// # Home Endpoint

/*
GET /api/v1/home.

Description: Returns the landing page payload: the four trending coffees
(highest average rating among reviewed coffees) and the three most recent
reviews.

Response:
  - 200: HomeData
*/
func (handler *Handler) HomeEndpoint(writer http.ResponseWriter, request *http.Request) {
	home, err := handler.service.Home(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, home)
}

// # Roaster Endpoints

/*
GET /api/v1/roasters.

Description: Retrieves a paginated list of public roasters ordered by name.

Response:
  - 200: []Roaster
*/
func (handler *Handler) listRoasters(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	roasters, total, err := handler.service.ListRoasters(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, roasters, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/roasters/{identifier}.

Description: Retrieves a roaster by UUID or slug, together with its public
coffees ordered best-rated first.

Response:
  - 200: RoasterDetail
  - 404: NotFound: Missing or not visible to the caller
*/
func (handler *Handler) getRoaster(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.Param(request, "identifier")

	detail, err := handler.service.GetRoaster(request.Context(), requestutil.Claims(request), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}

// # Profile Endpoints

/*
GET /api/v1/profile/submissions.

Description: Lists the caller's own coffee submissions in every visibility
state, newest first.

Response:
  - 200: []CoffeeWithStats
  - 401: Unauthorized: No valid session
*/
func (handler *Handler) MySubmissionsEndpoint(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	coffees, total, err := handler.service.ListMySubmissions(request.Context(), requestutil.Claims(request), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, coffees, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
