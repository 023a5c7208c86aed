package view

type ProductCard struct {
	ID          string
	Name        string
	TamilName   string
	Description string
	PackSizes   []string
	Category    string
	ImageURL    string
}

type Benefit struct {
	Title       string
	Description string
	Icon        string
}

type HomePage struct {
	Page
	Benefits []Benefit
	Featured []ProductCard
	Brands   []ProductCard
}

type ProductsPage struct {
	Page
	Query    string
	Category string
	Rice     []ProductCard
	Premium  []ProductCard
	Grocery  []ProductCard
	Total    int
}
