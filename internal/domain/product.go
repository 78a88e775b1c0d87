package domain

type Product struct {
	ID          int
	Name        string
	Description string
	Price       float64
	Image       string
	Link        string
}
