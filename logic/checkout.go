package logic

// CheckoutResult carries the finalized order and its rendered document.
type CheckoutResult struct {
	Order    *Order
	Document []byte
}

// HandleCheckout finalizes a non-empty cart, renders the order document,
// and clears the cart. The clear happens only after the document is
// produced: a renderer failure aborts the checkout with StatusDocumentFailed
// and leaves the cart exactly as it was.
func (l *DefaultShopLogic) HandleCheckout(state *CartState) (*CheckoutResult, error) {
	if state.IsEmpty() {
		return nil, NewEmptyCart()
	}

	order, err := l.Finalize(state)
	if err != nil {
		return nil, err
	}

	doc, err := l.renderer.Render(order)
	if err != nil {
		return nil, NewDocumentFailed(err)
	}

	state.Clear()

	return &CheckoutResult{Order: order, Document: doc}, nil
}
