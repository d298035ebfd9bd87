package logic

// ItemRemoved reports the outcome of a cart removal.
type ItemRemoved struct {
	Product   string
	Removed   int  // units taken out of the cart
	Remaining int  // units still in the cart, zero when the line is gone
	All       bool // the whole line was deleted
}

// HandleRemoveItem removes quantity units of a product, or the whole line
// when all is set or quantity covers the current amount. Removing a product
// that is not in the cart is a no-op signalled as NotInCart; the resolver
// turns it into a reply, never a fatal error.
func (l *DefaultShopLogic) HandleRemoveItem(state *CartState, product string, quantity int, all bool) (*ItemRemoved, error) {
	if !all && quantity <= 0 {
		return nil, NewInvalidArgument(ErrMsgQuantityPositive)
	}
	p, ok := l.catalog.Lookup(product)
	if !ok {
		return nil, NewUnknownProduct(product)
	}
	if state.Quantity(p.Name) == 0 {
		return nil, NewNotInCart(p.Name)
	}

	removed, remaining := state.remove(p.Name, quantity, all)

	return &ItemRemoved{
		Product:   p.Name,
		Removed:   removed,
		Remaining: remaining,
		All:       remaining == 0,
	}, nil
}
