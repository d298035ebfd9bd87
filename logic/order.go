package logic

import "github.com/google/uuid"

// LineItem is one priced order row.
type LineItem struct {
	Product   string
	Quantity  int
	LineTotal int
}

// Order is the immutable checkout snapshot. Line order matches the cart
// snapshot order, so finalizing identical carts yields identical orders.
type Order struct {
	ID         string
	Lines      []LineItem
	GrandTotal int
}

// Finalize snapshots the cart into a priced order. An entry whose product
// is absent from the catalog is an internal consistency failure:
// HandleAddItem rejects such names, so this path should be unreachable.
func (l *DefaultShopLogic) Finalize(state *CartState) (*Order, error) {
	order := &Order{ID: uuid.NewString()}
	for _, line := range state.Snapshot() {
		p, ok := l.catalog.Lookup(line.Product)
		if !ok {
			return nil, NewUnknownProduct(line.Product)
		}
		lineTotal := line.Quantity * p.UnitPrice
		order.Lines = append(order.Lines, LineItem{
			Product:   p.Name,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
		order.GrandTotal += lineTotal
	}
	return order, nil
}
