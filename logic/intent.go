package logic

import (
	"strconv"
	"strings"
)

// IntentKind tags the variant of a resolved intent.
type IntentKind int

const (
	IntentGreet IntentKind = iota
	IntentAddItem
	IntentNeedsQuantity
	IntentShowCart
	IntentListCatalog
	IntentRemoveItem
	IntentCheckout
	IntentSuggest
	IntentUnrecognized
)

func (k IntentKind) String() string {
	switch k {
	case IntentGreet:
		return "GREET"
	case IntentAddItem:
		return "ADD_ITEM"
	case IntentNeedsQuantity:
		return "NEEDS_QUANTITY"
	case IntentShowCart:
		return "SHOW_CART"
	case IntentListCatalog:
		return "LIST_CATALOG"
	case IntentRemoveItem:
		return "REMOVE_ITEM"
	case IntentCheckout:
		return "CHECKOUT"
	case IntentSuggest:
		return "SUGGEST"
	case IntentUnrecognized:
		return "UNRECOGNIZED"
	default:
		return "UNKNOWN"
	}
}

// Intent is derived purely from the message text; it carries no state.
type Intent struct {
	Kind     IntentKind
	Product  string // canonical catalog name, when the intent names one
	Quantity int    // parsed quantity, when the intent carries one
	All      bool   // RemoveItem: delete the whole line
}

// Resolution is the resolver's output for one message: the classified
// intent, the reply to display, and on a completed checkout the order plus
// its rendered document.
type Resolution struct {
	Intent   Intent
	Reply    string
	Order    *Order
	Document []byte
}

// parseQuantity scans whitespace-split tokens for the first token made of
// ASCII digits 0-9. Absence implies quantity 1. This heuristic can pick up
// unrelated digits (for instance a price mentioned elsewhere in the
// sentence); that behavior is intentional and documented. Tokens that do
// not parse to a positive int, such as ones that would overflow, are
// skipped rather than misread.
func parseQuantity(message string) (int, bool) {
	for _, tok := range strings.Fields(message) {
		if !isAllDigits(tok) {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n <= 0 {
			continue
		}
		return n, true
	}
	return 1, false
}

func isAllDigits(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
