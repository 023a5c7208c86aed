package view

type CartItem struct {
	ID        string
	Name      string
	TamilName string
	Size      string
	Quantity  int
}

type CartPage struct {
	Page
	Items      []CartItem
	TotalItems int
	Address    string
}
