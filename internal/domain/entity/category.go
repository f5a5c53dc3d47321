// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Category is the top level of the directory hierarchy. Its SubCategories
// slice is ordered; the order is display-relevant and must survive a
// persistence round trip.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	ImageURL      string        `json:"imageUrl"`
	Icon          string        `json:"icon"`
	SubCategories []SubCategory `json:"subCategories"`
}

// SubCategory groups businesses inside a Category. Its ID is unique within
// the parent Category only.
type SubCategory struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Icon       string     `json:"icon"`
	Businesses []Business `json:"businesses"`
}

// Clone returns a deep copy of the category. Store reads hand out clones so
// callers can never mutate the persisted snapshot through a live reference.
func (c Category) Clone() Category {
	out := c
	out.SubCategories = make([]SubCategory, len(c.SubCategories))
	for i, sub := range c.SubCategories {
		out.SubCategories[i] = sub.Clone()
	}

	return out
}

// Clone returns a deep copy of the subcategory and its businesses.
func (s SubCategory) Clone() SubCategory {
	out := s
	out.Businesses = make([]Business, len(s.Businesses))
	for i, biz := range s.Businesses {
		out.Businesses[i] = biz.Clone()
	}

	return out
}

// CloneDirectory deep-copies a whole hierarchy snapshot.
func CloneDirectory(categories []Category) []Category {
	out := make([]Category, len(categories))
	for i, cat := range categories {
		out[i] = cat.Clone()
	}

	return out
}

// CategoryNode is the id/name skeleton of a Category used by editor UIs to
// pick a target location without loading every business.
type CategoryNode struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	SubCategories []SubCategoryNode `json:"subCategories"`
}

// SubCategoryNode is the id/name skeleton of a SubCategory.
type SubCategoryNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
