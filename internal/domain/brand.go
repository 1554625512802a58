package domain

type BrandCategory string

const (
	// CategoryAll is a filter-only pseudo-value. It is never stored on a brand.
	CategoryAll         BrandCategory = "All"
	CategoryLuxury      BrandCategory = "Luxury"
	CategoryStreetwear  BrandCategory = "Streetwear"
	CategoryAccessories BrandCategory = "Accessories"
	CategoryCustom      BrandCategory = "Custom"
)

// BrandCategories lists the values a brand can actually carry.
func BrandCategories() []BrandCategory {
	return []BrandCategory{CategoryLuxury, CategoryStreetwear, CategoryAccessories, CategoryCustom}
}

func ParseBrandCategory(s string) (BrandCategory, bool) {
	for _, c := range BrandCategories() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

type Brand struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	URL         string        `json:"url"`
	Logo        string        `json:"logo"`
	Category    BrandCategory `json:"category"`
	Description string        `json:"description,omitempty"`
}

type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// SeedBrands is the catalog the hub starts from when the store holds nothing
// usable for the brand-list key.
func SeedBrands() []Brand {
	return []Brand{
		{ID: "1", Name: "Chanel", URL: "https://www.chanel.com", Logo: "https://logo.clearbit.com/chanel.com", Category: CategoryLuxury, Description: "High fashion, accessories, and perfume."},
		{ID: "2", Name: "Armani", URL: "https://www.armani.com", Logo: "https://logo.clearbit.com/armani.com", Category: CategoryLuxury, Description: "Italian luxury fashion house."},
		{ID: "3", Name: "Brunello Cucinelli", URL: "https://www.brunellocucinelli.com", Logo: "https://logo.clearbit.com/brunellocucinelli.com", Category: CategoryLuxury, Description: "Italian luxury brand known for cashmere."},
		{ID: "4", Name: "Hermès", URL: "https://www.hermes.com", Logo: "https://logo.clearbit.com/hermes.com", Category: CategoryLuxury, Description: "French luxury design house."},
		{ID: "6", Name: "Louis Vuitton", URL: "https://www.louisvuitton.com", Logo: "https://logo.clearbit.com/louisvuitton.com", Category: CategoryLuxury},
		{ID: "7", Name: "Prada", URL: "https://www.prada.com", Logo: "https://logo.clearbit.com/prada.com", Category: CategoryLuxury},
		{ID: "8", Name: "Celine", URL: "https://www.celine.com", Logo: "https://logo.clearbit.com/celine.com", Category: CategoryLuxury},
		{ID: "9", Name: "Loro Piana", URL: "https://www.loropiana.com", Logo: "https://logo.clearbit.com/loropiana.com", Category: CategoryLuxury},
	}
}
