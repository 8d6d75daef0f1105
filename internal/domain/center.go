package domain

type Center struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	Rating     float64  `json:"rating"`
	Materials  []string `json:"materials"`
	PricePerKg string   `json:"pricePerKg"`
	Image      string   `json:"image"`
}

// Category is a material type a user can pick when submitting a request.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Icon  string `json:"icon"`
}
