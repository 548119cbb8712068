package categories

import "time"

// Category groups products for storefront navigation. The ID is a
// user-supplied kebab-case key such as "weight-management".
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	SortOrder int       `json:"sort_order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// ProductCount is populated on admin listings only.
	ProductCount int `json:"product_count,omitempty"`
}
