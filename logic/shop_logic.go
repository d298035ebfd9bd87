package logic

import "context"

// DocumentRenderer turns a finalized order into a durable artifact.
// The returned bytes are the artifact; ownership passes to the caller.
type DocumentRenderer interface {
	Render(order *Order) ([]byte, error)
}

// Suggester generates natural-language suggestion text for a prompt.
// It is an optional collaborator; failures degrade to the catalog listing.
type Suggester interface {
	Suggest(ctx context.Context, prompt string) (string, error)
}

// ShopLogic is the core boundary consumed by the presentation adapter.
type ShopLogic interface {
	Respond(ctx context.Context, state *CartState, message string) (*Resolution, error)
	HandleAddItem(state *CartState, product string, quantity int) (*ItemAdded, error)
	HandleRemoveItem(state *CartState, product string, quantity int, all bool) (*ItemRemoved, error)
	HandleCheckout(state *CartState) (*CheckoutResult, error)
	Finalize(state *CartState) (*Order, error)
}

// DefaultShopLogic resolves chat messages against a catalog and applies the
// resulting cart mutations.
type DefaultShopLogic struct {
	catalog   *Catalog
	renderer  DocumentRenderer
	suggester Suggester
	rules     []rule
}

// NewShopLogic wires the resolver. suggester may be nil, in which case the
// enrichment rule degrades to the plain catalog listing.
func NewShopLogic(catalog *Catalog, renderer DocumentRenderer, suggester Suggester) *DefaultShopLogic {
	l := &DefaultShopLogic{
		catalog:   catalog,
		renderer:  renderer,
		suggester: suggester,
	}
	l.registerRules()
	return l
}

var _ ShopLogic = (*DefaultShopLogic)(nil)
