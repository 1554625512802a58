package domain

// WardrobeItem is a single catalogued garment. Category is free-form: the
// extraction prompt suggests a closed set but the backend is not constrained
// to it, and it is deliberately not the Brand category enum.
type WardrobeItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Color    string `json:"color"`
	ImageURL string `json:"imageUrl"`
	Brand    string `json:"brand,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// ParsedWardrobeItem is the validated result of an AI extraction. Name,
// Category and Color are always non-empty; Brand may be missing.
type ParsedWardrobeItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Color    string `json:"color"`
	Brand    string `json:"brand,omitempty"`
}

// SuggestedCategories are offered to the extraction model as a hint only.
func SuggestedCategories() []string {
	return []string{"Tops", "Bottoms", "Outerwear", "Shoes", "Accessories"}
}
