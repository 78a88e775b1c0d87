package domain

// Cart maps a product id to the quantity the user has picked. A key whose
// product no longer exists in the catalog is tolerated and skipped at read
// time.
type Cart map[int]int

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// Clone returns an independent copy so callers can read a cart without
// holding whatever lock guards the store.
func (c Cart) Clone() Cart {
	copied := make(Cart, len(c))
	for productID, quantity := range c {
		copied[productID] = quantity
	}
	return copied
}
