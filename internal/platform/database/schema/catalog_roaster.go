package schema

// CatalogRoasterTable represents the 'catalog.roaster' table
type CatalogRoasterTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	Country     string
	Website     string
	Visibility  string
	SubmittedBy string
	CreatedAt   string
}

// CatalogRoaster is the schema definition for catalog.roaster
var CatalogRoaster = CatalogRoasterTable{
	Table:       "catalog.roaster",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	Country:     "country",
	Website:     "website",
	Visibility:  "visibility",
	SubmittedBy: "submittedby",
	CreatedAt:   "createdat",
}

func (t CatalogRoasterTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.Country, t.Website,
		t.Visibility, t.SubmittedBy, t.CreatedAt,
	}
}
