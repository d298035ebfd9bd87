package logic

// CartLine is one cart entry. Quantity is always >= 1; a line that would
// drop to zero is deleted instead.
type CartLine struct {
	Product  string
	Quantity int
}

// CartState is the only mutable domain state: product name -> quantity,
// plus the conversational pending-quantity slot. One CartState per session;
// the session owner is responsible for serializing access.
type CartState struct {
	lines map[string]*CartLine
	order []string // first-insertion order, kept for deterministic snapshots

	// PendingProduct holds the product named in a bare mention that is
	// waiting for the shopper to supply a quantity.
	PendingProduct string
}

// EmptyState returns a fresh cart.
func EmptyState() *CartState {
	return &CartState{
		lines: make(map[string]*CartLine),
	}
}

// Quantity returns the current quantity for a product, zero if absent.
func (s *CartState) Quantity(product string) int {
	if line, ok := s.lines[product]; ok {
		return line.Quantity
	}
	return 0
}

// Len returns the number of distinct products in the cart.
func (s *CartState) Len() int {
	return len(s.lines)
}

// IsEmpty reports whether the cart holds no lines.
func (s *CartState) IsEmpty() bool {
	return len(s.lines) == 0
}

// Snapshot returns the cart lines in first-insertion order.
func (s *CartState) Snapshot() []CartLine {
	out := make([]CartLine, 0, len(s.order))
	for _, name := range s.order {
		if line, ok := s.lines[name]; ok {
			out = append(out, *line)
		}
	}
	return out
}

// Subtotal sums quantity * unit price over the snapshot.
func (s *CartState) Subtotal(catalog *Catalog) int {
	var total int
	for _, line := range s.Snapshot() {
		if p, ok := catalog.Lookup(line.Product); ok {
			total += line.Quantity * p.UnitPrice
		}
	}
	return total
}

// Clear empties the cart. Called only after the order document has been
// durably produced.
func (s *CartState) Clear() {
	s.lines = make(map[string]*CartLine)
	s.order = s.order[:0]
}

func (s *CartState) add(product string, qty int) int {
	line, ok := s.lines[product]
	if !ok {
		line = &CartLine{Product: product}
		s.lines[product] = line
		s.order = append(s.order, product)
	}
	line.Quantity += qty
	return line.Quantity
}

// remove decrements or deletes a line. Returns the removed and remaining
// quantities. A request for the full quantity or more deletes the line.
func (s *CartState) remove(product string, qty int, all bool) (removed, remaining int) {
	line, ok := s.lines[product]
	if !ok {
		return 0, 0
	}
	if all || qty >= line.Quantity {
		removed = line.Quantity
		delete(s.lines, product)
		for i, name := range s.order {
			if name == product {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return removed, 0
	}
	line.Quantity -= qty
	return qty, line.Quantity
}
