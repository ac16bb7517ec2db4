// Copyright (c) 2026 BrewBuzz. All rights reserved.

package catalog

import (
	"context"

	"github.com/brewbuzz/brewbuzz/internal/platform/apperr"
	"github.com/brewbuzz/brewbuzz/internal/platform/sec"
	"github.com/brewbuzz/brewbuzz/internal/platform/validate"
	"github.com/brewbuzz/brewbuzz/internal/review"
	"github.com/brewbuzz/brewbuzz/pkg/slug"
	"github.com/brewbuzz/brewbuzz/pkg/uuid"
)

// # Service Layer

// Home page limits.
const (
	TrendingLimit      = 4
	RecentReviewsLimit = 3
)

// ReviewFeed is the slice of the review domain the catalog needs for the
// home page: the most recent reviews across all public coffees.
type ReviewFeed interface {
	ListRecent(context context.Context, limit int) ([]review.Review, error)
}

// Service orchestrates the business logic of the coffee catalog: submission
// intake, visibility scoping, and the public discovery surfaces.
type Service struct {
	coffeeRepo  CoffeeRepository
	roasterRepo RoasterRepository
	reviews     ReviewFeed

	// When true, submissions that publish immediately must carry an image.
	adminImageRequired bool
}

// NewService constructs a new [Service] with its required repositories.
func NewService(coffeeRepo CoffeeRepository, roasterRepo RoasterRepository, reviews ReviewFeed, adminImageRequired bool) *Service {
	return &Service{
		coffeeRepo:         coffeeRepo,
		roasterRepo:        roasterRepo,
		reviews:            reviews,
		adminImageRequired: adminImageRequired,
	}
}

// # Submission Intake

/*
SubmitCoffee validates and persists a new coffee submission.

Description: The submitter either references an existing roaster or names a
new one; exactly one of the two is required. A new roaster is created in the
same operation and inherits the coffee's initial visibility, so a published
coffee never points at an invisible roaster. For the same reason, an admin
submission that references a pending roaster publishes that roaster alongside
the coffee. Initial visibility follows the submitter's role: admin submissions
go public immediately, member submissions enter the moderation queue.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (The authenticated submitter)
  - input: SubmitCoffeeInput

Returns:
  - *Coffee: The persisted entity with identity and visibility assigned
  - error: Unauthorized, validation, or persistence errors
*/
func (service *Service) SubmitCoffee(context context.Context, claims *sec.AuthClaims, input SubmitCoffeeInput) (*Coffee, error) {

	// Submission requires an authenticated member
	if err := sec.RequireRole(claims, sec.RoleMember); err != nil {
		return nil, err
	}
	visibility := VisibilityOnCreate(sec.UserRole(claims.Role))

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)
	validator.ExactlyOne(FieldRoasterID, input.RoasterID, FieldNewRoasterName, input.NewRoasterName)
	validator.Required(FieldRoastLevel, input.RoastLevel).OneOf(FieldRoastLevel, input.RoastLevel,
		string(RoastLight),
		string(RoastMedium),
		string(RoastDark),
	)
	if input.RoasterID != "" {
		validator.UUID(FieldRoasterID, input.RoasterID)
	}
	validator.MaxLen(FieldNewRoasterName, input.NewRoasterName, 200)
	validator.MaxLen(FieldRoasterWebsite, input.RoasterWebsite, 2000)
	validator.MaxLen(FieldImageURL, input.ImageURL, 2000)

	// Directly-published entries must be presentable on the public catalog
	if service.adminImageRequired && visibility == VisibilityPublic {
		validator.Custom(FieldImageURL, input.ImageURL == "", "An image is required for published coffees")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Roaster resolution: reference an existing one or create alongside
	roasterID := input.RoasterID
	if roasterID != "" {
		roaster, err := service.roasterRepo.FindByID(context, roasterID)
		if err != nil {
			return nil, err
		}

		// A coffee publishing immediately must not point at a pending
		// roaster; the admin referencing it publishes the roaster with it,
		// same as an approval cascade would
		if visibility == VisibilityPublic && roaster.Visibility != VisibilityPublic {
			if err := service.roasterRepo.Publish(context, roasterID); err != nil {
				return nil, err
			}
		}
	} else {
		roaster := &Roaster{
			ID:          uuid.New(),
			Name:        input.NewRoasterName,
			Slug:        slug.From(input.NewRoasterName),
			Country:     input.RoasterCountry,
			Website:     input.RoasterWebsite,
			Visibility:  visibility,
			SubmittedBy: claims.UserID,
		}
		if err := service.roasterRepo.Create(context, roaster); err != nil {
			return nil, err
		}
		roasterID = roaster.ID
	}

	coffee := &Coffee{
		ID:          uuid.New(),
		Name:        input.Name,
		RoasterID:   roasterID,
		RoastLevel:  RoastLevel(input.RoastLevel),
		Process:     input.Process,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Visibility:  visibility,
		SubmittedBy: claims.UserID,
	}
	if err := service.coffeeRepo.Create(context, coffee); err != nil {
		return nil, err
	}
	return coffee, nil
}

// # Discovery

/*
ListCoffees retrieves a paginated, filtered collection of public coffees.

Description: Filter criteria pass straight through to the repository for
database-level filtering; the visibility scope is forced to public here so
pending submissions never leak into browse results.

Parameters:
  - context: context.Context
  - filter: Filter (Search text, roast level, sorting)
  - limit: int
  - offset: int

Returns:
  - []*CoffeeWithStats: Matching coffees with aggregated review stats
  - int: Total count for pagination metadata
  - error: Repository failures
*/
func (service *Service) ListCoffees(context context.Context, filter Filter, limit, offset int) ([]*CoffeeWithStats, int, error) {
	filter.Visibility = VisibilityPublic
	filter.SubmittedBy = ""
	return service.coffeeRepo.List(context, filter, limit, offset)
}

/*
GetCoffee fetches a single coffee by UUID, enforcing visibility.

Description: Public coffees are visible to everyone, including anonymous
visitors. Pending coffees are visible only to their submitter and to admins;
anyone else receives NotFound so the entry's existence is not revealed.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (nil for anonymous visitors)
  - id: string (UUID)

Returns:
  - *CoffeeWithStats: The hydrated entity with stats
  - error: NotFound when missing or not visible to the caller
*/
func (service *Service) GetCoffee(context context.Context, claims *sec.AuthClaims, id string) (*CoffeeWithStats, error) {
	coffee, err := service.coffeeRepo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if !service.canView(claims, coffee.Visibility, coffee.SubmittedBy) {
		return nil, apperr.NotFound("Coffee")
	}
	return coffee, nil
}

/*
Home assembles the landing page payload in one call.

Description: Trending surfaces the four highest-rated coffees that have at
least one review; a coffee nobody reviewed has no rating to trend on. The
recent feed carries the three newest reviews across all public coffees, and
the payload includes the total public coffee count for the hero banner.

Parameters:
  - context: context.Context

Returns:
  - *HomeData: Trending coffees, recent reviews, and catalog size
  - error: Repository failures
*/
func (service *Service) Home(context context.Context) (*HomeData, error) {

	// Catalog size first: the same listing query reports the total via its
	// window count, so no dedicated count query is needed
	_, totalCoffees, err := service.coffeeRepo.List(context, Filter{
		Visibility: VisibilityPublic,
	}, 1, 0)
	if err != nil {
		return nil, err
	}

	trending, _, err := service.coffeeRepo.List(context, Filter{
		Visibility: VisibilityPublic,
		MinReviews: 1,
		Sort:       SortTrending,
	}, TrendingLimit, 0)
	if err != nil {
		return nil, err
	}

	recent, err := service.reviews.ListRecent(context, RecentReviewsLimit)
	if err != nil {
		return nil, err
	}

	return &HomeData{TrendingCoffees: trending, RecentReviews: recent, TotalCoffees: totalCoffees}, nil
}

// HomeData is the aggregate payload for the landing page.
type HomeData struct {
	TrendingCoffees []*CoffeeWithStats `json:"trending_coffees"`
	RecentReviews   []review.Review    `json:"recent_reviews"`
	TotalCoffees    int                `json:"total_coffees"`
}

// # Roasters

/*
ListRoasters retrieves a paginated collection of public roasters.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*Roaster: Roasters ordered by name
  - int: Total count for pagination metadata
  - error: Repository failures
*/
func (service *Service) ListRoasters(context context.Context, limit, offset int) ([]*Roaster, int, error) {
	return service.roasterRepo.List(context, true, limit, offset)
}

/*
GetRoaster fetches a roaster by UUID or URL slug together with its public
coffees, best-rated first.

Description: The lookup strategy follows the identifier format: UUIDs use a
primary key lookup, anything else resolves through the unique slug. Pending
roasters follow the same visibility rule as coffees.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (nil for anonymous visitors)
  - identifier: string (UUID or slug)

Returns:
  - *RoasterDetail: The roaster and its public coffees
  - error: NotFound when missing or not visible to the caller
*/
func (service *Service) GetRoaster(context context.Context, claims *sec.AuthClaims, identifier string) (*RoasterDetail, error) {

	// Identity format detection
	var roaster *Roaster
	var err error
	if isUUID(identifier) {
		roaster, err = service.roasterRepo.FindByID(context, identifier)
	} else {
		roaster, err = service.roasterRepo.FindBySlug(context, identifier)
	}
	if err != nil {
		return nil, err
	}
	if !service.canView(claims, roaster.Visibility, roaster.SubmittedBy) {
		return nil, apperr.NotFound("Roaster")
	}

	coffees, _, err := service.coffeeRepo.List(context, Filter{
		RoasterID:  roaster.ID,
		Visibility: VisibilityPublic,
		Sort:       SortTrending,
	}, MaxRoasterCoffees, 0)
	if err != nil {
		return nil, err
	}

	return &RoasterDetail{Roaster: *roaster, Coffees: coffees}, nil
}

// MaxRoasterCoffees caps the coffee list embedded in a roaster detail page.
const MaxRoasterCoffees = 100

// RoasterDetail is a roaster with its public coffees attached.
type RoasterDetail struct {
	Roaster
	Coffees []*CoffeeWithStats `json:"coffees"`
}

// # Profile

/*
ListMySubmissions retrieves the caller's own coffee submissions in every
visibility state, newest first.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (The authenticated caller)
  - limit: int
  - offset: int

Returns:
  - []*CoffeeWithStats: The caller's submissions, pending included
  - int: Total count for pagination metadata
  - error: Unauthorized or repository failures
*/
func (service *Service) ListMySubmissions(context context.Context, claims *sec.AuthClaims, limit, offset int) ([]*CoffeeWithStats, int, error) {
	if err := sec.RequireRole(claims, sec.RoleMember); err != nil {
		return nil, 0, err
	}
	return service.coffeeRepo.List(context, Filter{
		SubmittedBy: claims.UserID,
		Sort:        SortRecent,
	}, limit, offset)
}

// canView reports whether the caller may see an entry in the given state.
// Pending entries are visible to their submitter and to admins only.
func (service *Service) canView(claims *sec.AuthClaims, visibility Visibility, submittedBy string) bool {
	if visibility == VisibilityPublic {
		return true
	}
	if claims == nil {
		return false
	}
	return claims.UserID == submittedBy || sec.UserRole(claims.Role).AtLeast(sec.RoleAdmin)
}

// Identity format heuristic, mirrors the canonical UUID string length
func isUUID(s string) bool {
	return len(s) == 36
}
