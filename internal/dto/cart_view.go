package dto

type CartLine struct {
	Name     string
	Quantity int
	Subtotal float64
}

// CartView is the displayable derivation of a cart: one line per product
// still present in the catalog, plus the accumulated total. Empty reflects
// the underlying cart, not the lines — a cart holding only ids that have
// left the catalog renders zero lines but is not empty.
type CartView struct {
	Lines []CartLine
	Total float64
	Empty bool
}
