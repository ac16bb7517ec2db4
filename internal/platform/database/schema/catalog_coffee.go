package schema

// CatalogCoffeeTable represents the 'catalog.coffee' table
type CatalogCoffeeTable struct {
	Table       string
	ID          string
	Name        string
	RoasterID   string
	RoastLevel  string
	Process     string
	Description string
	ImageURL    string
	Visibility  string
	SubmittedBy string
	CreatedAt   string
}

// CatalogCoffee is the schema definition for catalog.coffee
var CatalogCoffee = CatalogCoffeeTable{
	Table:       "catalog.coffee",
	ID:          "id",
	Name:        "name",
	RoasterID:   "roasterid",
	RoastLevel:  "roastlevel",
	Process:     "process",
	Description: "description",
	ImageURL:    "imageurl",
	Visibility:  "visibility",
	SubmittedBy: "submittedby",
	CreatedAt:   "createdat",
}

func (t CatalogCoffeeTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.RoasterID, t.RoastLevel, t.Process, t.Description,
		t.ImageURL, t.Visibility, t.SubmittedBy, t.CreatedAt,
	}
}
