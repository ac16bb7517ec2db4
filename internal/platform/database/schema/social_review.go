package schema

// SocialReviewTable represents the 'social.review' table
type SocialReviewTable struct {
	Table      string
	ID         string
	CoffeeID   string
	AuthorID   string
	Rating     string
	Body       string
	FlavorTags string
	CreatedAt  string
}

// SocialReview is the schema definition for social.review
var SocialReview = SocialReviewTable{
	Table:      "social.review",
	ID:         "id",
	CoffeeID:   "coffeeid",
	AuthorID:   "authorid",
	Rating:     "rating",
	Body:       "body",
	FlavorTags: "flavortags",
	CreatedAt:  "createdat",
}

func (t SocialReviewTable) Columns() []string {
	return []string{
		t.ID, t.CoffeeID, t.AuthorID, t.Rating, t.Body, t.FlavorTags, t.CreatedAt,
	}
}
