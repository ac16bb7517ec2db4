// Copyright (c) 2026 BrewBuzz. All rights reserved.

package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewbuzz/brewbuzz/internal/platform/apperr"
	"github.com/brewbuzz/brewbuzz/internal/platform/sec"
	"github.com/brewbuzz/brewbuzz/internal/review"
)

// # Test Fakes

type fakeCoffeeRepository struct {
	coffees    map[string]*CoffeeWithStats
	lastFilter Filter
}

func newFakeCoffeeRepository() *fakeCoffeeRepository {
	return &fakeCoffeeRepository{coffees: map[string]*CoffeeWithStats{}}
}

func (f *fakeCoffeeRepository) List(_ context.Context, filter Filter, _, _ int) ([]*CoffeeWithStats, int, error) {
	f.lastFilter = filter
	var out []*CoffeeWithStats
	for _, c := range f.coffees {
		if filter.Visibility != "" && c.Visibility != filter.Visibility {
			continue
		}
		if filter.SubmittedBy != "" && c.SubmittedBy != filter.SubmittedBy {
			continue
		}
		if filter.MinReviews > 0 && c.Stats.ReviewCount < filter.MinReviews {
			continue
		}
		out = append(out, c)
	}
	return out, len(out), nil
}

func (f *fakeCoffeeRepository) FindByID(_ context.Context, id string) (*CoffeeWithStats, error) {
	c, ok := f.coffees[id]
	if !ok {
		return nil, apperr.NotFound("Coffee")
	}
	return c, nil
}

func (f *fakeCoffeeRepository) Create(_ context.Context, coffee *Coffee) error {
	f.coffees[coffee.ID] = &CoffeeWithStats{Coffee: *coffee}
	return nil
}

type fakeRoasterRepository struct {
	roasters map[string]*Roaster
}

func newFakeRoasterRepository() *fakeRoasterRepository {
	return &fakeRoasterRepository{roasters: map[string]*Roaster{}}
}

func (f *fakeRoasterRepository) List(_ context.Context, publicOnly bool, _, _ int) ([]*Roaster, int, error) {
	var out []*Roaster
	for _, r := range f.roasters {
		if publicOnly && r.Visibility != VisibilityPublic {
			continue
		}
		out = append(out, r)
	}
	return out, len(out), nil
}

func (f *fakeRoasterRepository) FindByID(_ context.Context, id string) (*Roaster, error) {
	r, ok := f.roasters[id]
	if !ok {
		return nil, apperr.NotFound("Roaster")
	}
	return r, nil
}

func (f *fakeRoasterRepository) FindBySlug(_ context.Context, slug string) (*Roaster, error) {
	for _, r := range f.roasters {
		if r.Slug == slug {
			return r, nil
		}
	}
	return nil, apperr.NotFound("Roaster")
}

func (f *fakeRoasterRepository) Create(_ context.Context, roaster *Roaster) error {
	f.roasters[roaster.ID] = roaster
	return nil
}

func (f *fakeRoasterRepository) Publish(_ context.Context, id string) error {
	r, ok := f.roasters[id]
	if !ok {
		return apperr.NotFound("Roaster")
	}
	r.Visibility = VisibilityPublic
	return nil
}

type fakeReviewFeed struct {
	recent []review.Review
}

func (f *fakeReviewFeed) ListRecent(_ context.Context, limit int) ([]review.Review, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

// # Fixtures

const (
	existingRoasterID = "dddddddd-0000-0000-0000-000000000001"
	pendingRoasterID  = "dddddddd-0000-0000-0000-000000000002"
)

func memberClaims(userID string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID, Email: userID + "@example.com", Role: string(sec.RoleMember)}
}

func adminClaims() *sec.AuthClaims {
	return &sec.AuthClaims{UserID: "admin-1", Email: "admin@example.com", Role: string(sec.RoleAdmin)}
}

func newTestService() (*Service, *fakeCoffeeRepository, *fakeRoasterRepository) {
	coffeeRepo := newFakeCoffeeRepository()
	roasterRepo := newFakeRoasterRepository()
	roasterRepo.roasters[existingRoasterID] = &Roaster{
		ID:         existingRoasterID,
		Name:       "Sunrise Beans",
		Slug:       "sunrise-beans",
		Visibility: VisibilityPublic,
	}
	service := NewService(coffeeRepo, roasterRepo, &fakeReviewFeed{}, true)
	return service, coffeeRepo, roasterRepo
}

func validInput() SubmitCoffeeInput {
	return SubmitCoffeeInput{
		Name:       "Ethiopia Guji",
		RoasterID:  existingRoasterID,
		RoastLevel: string(RoastLight),
		Process:    "Washed",
	}
}

// # Tests

func TestSubmitCoffee(t *testing.T) {
	ctx := context.Background()

	t.Run("member submissions enter the moderation queue", func(t *testing.T) {
		service, repo, _ := newTestService()

		coffee, err := service.SubmitCoffee(ctx, memberClaims("user-1"), validInput())
		require.NoError(t, err)

		assert.Equal(t, VisibilityPending, coffee.Visibility)
		assert.Equal(t, "user-1", coffee.SubmittedBy)
		assert.NotEmpty(t, coffee.ID)
		assert.Len(t, repo.coffees, 1)
	})

	t.Run("admin submissions publish immediately", func(t *testing.T) {
		service, _, _ := newTestService()

		input := validInput()
		input.ImageURL = "https://cdn.brewbuzz.app/guji.jpg"

		coffee, err := service.SubmitCoffee(ctx, adminClaims(), input)
		require.NoError(t, err)

		assert.Equal(t, VisibilityPublic, coffee.Visibility)
	})

	t.Run("published submissions require an image", func(t *testing.T) {
		service, _, _ := newTestService()

		_, err := service.SubmitCoffee(ctx, adminClaims(), validInput())

		require.Error(t, err)
		assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
	})

	t.Run("anonymous callers are rejected", func(t *testing.T) {
		service, _, _ := newTestService()

		_, err := service.SubmitCoffee(ctx, nil, validInput())

		require.Error(t, err)
		assert.Equal(t, apperr.CodeUnauthorized, apperr.As(err).Code)
	})

	t.Run("roaster choice must be exactly one of id or name", func(t *testing.T) {
		service, _, _ := newTestService()

		// Neither provided
		input := validInput()
		input.RoasterID = ""
		_, err := service.SubmitCoffee(ctx, memberClaims("user-1"), input)
		require.Error(t, err)
		assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)

		// Both provided
		input = validInput()
		input.NewRoasterName = "Duplicate Roasters"
		_, err = service.SubmitCoffee(ctx, memberClaims("user-1"), input)
		require.Error(t, err)
		assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
	})

	t.Run("a new roaster inherits the submission's visibility", func(t *testing.T) {
		service, repo, roasterRepo := newTestService()

		input := validInput()
		input.RoasterID = ""
		input.NewRoasterName = "Night Owl Coffee"

		coffee, err := service.SubmitCoffee(ctx, memberClaims("user-1"), input)
		require.NoError(t, err)

		roaster, err := roasterRepo.FindByID(ctx, coffee.RoasterID)
		require.NoError(t, err)
		assert.Equal(t, VisibilityPending, roaster.Visibility)
		assert.Equal(t, "night-owl-coffee", roaster.Slug)
		assert.Len(t, repo.coffees, 1)
	})

	t.Run("a new roaster carries the submitted website", func(t *testing.T) {
		service, _, roasterRepo := newTestService()

		input := validInput()
		input.RoasterID = ""
		input.NewRoasterName = "Night Owl Coffee"
		input.RoasterWebsite = "https://nightowl.example.com"

		coffee, err := service.SubmitCoffee(ctx, memberClaims("user-1"), input)
		require.NoError(t, err)

		roaster, err := roasterRepo.FindByID(ctx, coffee.RoasterID)
		require.NoError(t, err)
		assert.Equal(t, "https://nightowl.example.com", roaster.Website)
	})

	t.Run("an admin submission publishes a pending roaster it references", func(t *testing.T) {
		service, _, roasterRepo := newTestService()
		roasterRepo.roasters[pendingRoasterID] = &Roaster{
			ID:         pendingRoasterID,
			Name:       "Shadow Beans",
			Slug:       "shadow-beans",
			Visibility: VisibilityPending,
		}

		input := validInput()
		input.RoasterID = pendingRoasterID
		input.ImageURL = "https://cdn.brewbuzz.app/guji.jpg"

		coffee, err := service.SubmitCoffee(ctx, adminClaims(), input)
		require.NoError(t, err)
		require.Equal(t, VisibilityPublic, coffee.Visibility)

		// A live coffee must never point at a roaster the catalog hides
		roaster, err := roasterRepo.FindByID(ctx, pendingRoasterID)
		require.NoError(t, err)
		assert.Equal(t, VisibilityPublic, roaster.Visibility)
	})

	t.Run("a member submission leaves a pending roaster pending", func(t *testing.T) {
		service, _, roasterRepo := newTestService()
		roasterRepo.roasters[pendingRoasterID] = &Roaster{
			ID:         pendingRoasterID,
			Name:       "Shadow Beans",
			Slug:       "shadow-beans",
			Visibility: VisibilityPending,
		}

		input := validInput()
		input.RoasterID = pendingRoasterID

		coffee, err := service.SubmitCoffee(ctx, memberClaims("user-1"), input)
		require.NoError(t, err)
		require.Equal(t, VisibilityPending, coffee.Visibility)

		roaster, err := roasterRepo.FindByID(ctx, pendingRoasterID)
		require.NoError(t, err)
		assert.Equal(t, VisibilityPending, roaster.Visibility)
	})

	t.Run("unknown roast level fails validation", func(t *testing.T) {
		service, _, _ := newTestService()

		input := validInput()
		input.RoastLevel = "Burnt"

		_, err := service.SubmitCoffee(ctx, memberClaims("user-1"), input)
		require.Error(t, err)
		assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
	})

	t.Run("unknown roaster reference returns NotFound", func(t *testing.T) {
		service, _, _ := newTestService()

		input := validInput()
		input.RoasterID = "eeeeeeee-0000-0000-0000-000000000009"

		_, err := service.SubmitCoffee(ctx, memberClaims("user-1"), input)
		require.Error(t, err)
		assert.Equal(t, apperr.CodeNotFound, apperr.As(err).Code)
	})
}

func TestGetCoffee(t *testing.T) {
	ctx := context.Background()

	seed := func(repo *fakeCoffeeRepository, visibility Visibility) *CoffeeWithStats {
		coffee := &CoffeeWithStats{Coffee: Coffee{
			ID:          "ffffffff-0000-0000-0000-000000000001",
			Name:        "Kenya AA",
			Visibility:  visibility,
			SubmittedBy: "owner-1",
		}}
		repo.coffees[coffee.ID] = coffee
		return coffee
	}

	t.Run("public coffees resolve for anonymous visitors", func(t *testing.T) {
		service, repo, _ := newTestService()
		coffee := seed(repo, VisibilityPublic)

		got, err := service.GetCoffee(ctx, nil, coffee.ID)
		require.NoError(t, err)
		assert.Equal(t, coffee.ID, got.ID)
	})

	t.Run("pending coffees hide from strangers", func(t *testing.T) {
		service, repo, _ := newTestService()
		coffee := seed(repo, VisibilityPending)

		_, err := service.GetCoffee(ctx, memberClaims("stranger"), coffee.ID)

		require.Error(t, err)
		assert.Equal(t, apperr.CodeNotFound, apperr.As(err).Code)
	})

	t.Run("pending coffees resolve for the submitter and admins", func(t *testing.T) {
		service, repo, _ := newTestService()
		coffee := seed(repo, VisibilityPending)

		_, err := service.GetCoffee(ctx, memberClaims("owner-1"), coffee.ID)
		assert.NoError(t, err)

		_, err = service.GetCoffee(ctx, adminClaims(), coffee.ID)
		assert.NoError(t, err)
	})
}

func TestListCoffees(t *testing.T) {
	ctx := context.Background()

	t.Run("forces the public visibility scope", func(t *testing.T) {
		service, repo, _ := newTestService()

		_, _, err := service.ListCoffees(ctx, Filter{Visibility: VisibilityPending, SubmittedBy: "sneaky"}, 20, 0)
		require.NoError(t, err)

		assert.Equal(t, VisibilityPublic, repo.lastFilter.Visibility)
		assert.Empty(t, repo.lastFilter.SubmittedBy)
	})
}

func TestHome(t *testing.T) {
	ctx := context.Background()

	t.Run("trending requires at least one review", func(t *testing.T) {
		service, repo, _ := newTestService()

		home, err := service.Home(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, repo.lastFilter.MinReviews)
		assert.Equal(t, SortTrending, repo.lastFilter.Sort)
		assert.Empty(t, home.TrendingCoffees)
	})

	t.Run("counts only public coffees", func(t *testing.T) {
		service, repo, _ := newTestService()
		repo.coffees["c1"] = &CoffeeWithStats{Coffee: Coffee{ID: "c1", Visibility: VisibilityPublic}}
		repo.coffees["c2"] = &CoffeeWithStats{Coffee: Coffee{ID: "c2", Visibility: VisibilityPending}}

		home, err := service.Home(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, home.TotalCoffees)
	})
}

func TestListMySubmissions(t *testing.T) {
	ctx := context.Background()

	t.Run("scopes to the caller and includes pending entries", func(t *testing.T) {
		service, repo, _ := newTestService()
		repo.coffees["c1"] = &CoffeeWithStats{Coffee: Coffee{ID: "c1", SubmittedBy: "user-1", Visibility: VisibilityPending}}
		repo.coffees["c2"] = &CoffeeWithStats{Coffee: Coffee{ID: "c2", SubmittedBy: "user-2", Visibility: VisibilityPublic}}

		mine, total, err := service.ListMySubmissions(ctx, memberClaims("user-1"), 20, 0)
		require.NoError(t, err)

		assert.Equal(t, 1, total)
		require.Len(t, mine, 1)
		assert.Equal(t, "c1", mine[0].ID)
	})

	t.Run("anonymous callers are rejected", func(t *testing.T) {
		service, _, _ := newTestService()

		_, _, err := service.ListMySubmissions(ctx, nil, 20, 0)

		require.Error(t, err)
		assert.Equal(t, apperr.CodeUnauthorized, apperr.As(err).Code)
	})
}
