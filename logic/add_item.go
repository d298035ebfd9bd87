package logic

// ItemAdded reports the outcome of a cart addition.
type ItemAdded struct {
	Product      string
	Quantity     int // quantity added by this operation
	NewQuantity  int // quantity now in the cart for this product
	RunningTotal int // NewQuantity * unit price
}

// HandleAddItem adds qty units of a catalog product to the cart.
// The product name must resolve in the catalog; the cart never holds a key
// the catalog cannot price.
func (l *DefaultShopLogic) HandleAddItem(state *CartState, product string, quantity int) (*ItemAdded, error) {
	if quantity <= 0 {
		return nil, NewInvalidArgument(ErrMsgQuantityPositive)
	}
	p, ok := l.catalog.Lookup(product)
	if !ok {
		return nil, NewUnknownProduct(product)
	}

	newQty := state.add(p.Name, quantity)

	return &ItemAdded{
		Product:      p.Name,
		Quantity:     quantity,
		NewQuantity:  newQty,
		RunningTotal: newQty * p.UnitPrice,
	}, nil
}
