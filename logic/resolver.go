package logic

import (
	"context"
	"errors"
	"strings"
)

// suggestPrompt is the fixed prompt sent to the Suggester when the shopper
// says they need a new phone.
const suggestPrompt = "I'm looking for a new phone because my current one is damaged. What should I say?"

type ruleFunc func(ctx context.Context, state *CartState, msg string) (*Resolution, error)

// rule pairs a text predicate with its handler. Rules are evaluated in
// registration order and the first match wins; overlap between predicates
// is resolved by that ordering alone.
type rule struct {
	name   string
	match  func(state *CartState, msg string) bool
	handle ruleFunc
}

func (l *DefaultShopLogic) on(name string, match func(*CartState, string) bool, handle ruleFunc) {
	l.rules = append(l.rules, rule{name: name, match: match, handle: handle})
}

// registerRules installs the keyword chain. The ordering is a design
// contract: a removal message that names a product must reach the removal
// rule, not the add rule, and a checkout message must never add items.
func (l *DefaultShopLogic) registerRules() {
	l.on("pending-quantity", l.matchPendingQuantity, l.handlePendingQuantity)
	l.on("greeting", matchAny("hi", "hello"), l.handleGreeting)
	l.on("phone-advice", matchAny("looking for new phone", "my mobile is damaged"), l.handlePhoneAdvice)
	l.on("add-to-cart", l.matchAddToCart, l.handleAddToCart)
	l.on("catalog-listing", messageRule(isListingMessage), l.handleListing)
	l.on("show-cart", messageRule(isShowCartMessage), l.handleShowCart)
	l.on("remove-from-cart", l.matchRemove, l.handleRemove)
	l.on("checkout", messageRule(isCheckoutMessage), l.handleCheckoutMessage)
}

// Respond resolves one chat message: it classifies the intent, applies the
// cart mutation, and produces the reply. Every unmatched or recoverable
// path terminates in a reply; the returned error is non-nil only for
// document generation failures (and the unreachable catalog inconsistency).
func (l *DefaultShopLogic) Respond(ctx context.Context, state *CartState, message string) (*Resolution, error) {
	msg := strings.ToLower(strings.TrimSpace(message))

	for _, r := range l.rules {
		if r.match(state, msg) {
			return r.handle(ctx, state, msg)
		}
	}

	// A pending quantity that the shopper did not answer is abandoned.
	state.PendingProduct = ""

	return &Resolution{
		Intent: Intent{Kind: IntentUnrecognized},
		Reply:  ReplyFallback,
	}, nil
}

func matchAny(keywords ...string) func(*CartState, string) bool {
	return func(_ *CartState, msg string) bool {
		for _, kw := range keywords {
			if strings.Contains(msg, kw) {
				return true
			}
		}
		return false
	}
}

func messageRule(match func(string) bool) func(*CartState, string) bool {
	return func(_ *CartState, msg string) bool {
		return match(msg)
	}
}

func isRemovalMessage(msg string) bool {
	return strings.Contains(msg, "remove") || strings.Contains(msg, "delete")
}

func isCheckoutMessage(msg string) bool {
	return strings.Contains(msg, "proceed") || strings.Contains(msg, "order")
}

func isListingMessage(msg string) bool {
	return strings.Contains(msg, "recommend") || strings.Contains(msg, "products")
}

func isShowCartMessage(msg string) bool {
	return strings.Contains(msg, "show") && strings.Contains(msg, "cart")
}

// matchPendingQuantity accepts the follow-up to a NeedsQuantity reply: a
// quantity is pending and the message carries a digit token without naming
// another product or switching to a different request. Messages that read
// as removal, checkout, listing, or show-cart fall through to those rules
// even when they contain a digit.
func (l *DefaultShopLogic) matchPendingQuantity(state *CartState, msg string) bool {
	if state.PendingProduct == "" {
		return false
	}
	if _, explicit := parseQuantity(msg); !explicit {
		return false
	}
	if _, mentionsProduct := l.catalog.Match(msg); mentionsProduct {
		return false
	}
	if isListingMessage(msg) || isShowCartMessage(msg) {
		return false
	}
	return !isRemovalMessage(msg) && !isCheckoutMessage(msg)
}

func (l *DefaultShopLogic) handlePendingQuantity(_ context.Context, state *CartState, msg string) (*Resolution, error) {
	product := state.PendingProduct
	state.PendingProduct = ""

	qty, _ := parseQuantity(msg)
	added, err := l.HandleAddItem(state, product, qty)
	if err != nil {
		return nil, err
	}

	return &Resolution{
		Intent: Intent{Kind: IntentAddItem, Product: added.Product, Quantity: added.Quantity},
		Reply:  addedReply(added),
	}, nil
}

func (l *DefaultShopLogic) handleGreeting(_ context.Context, state *CartState, _ string) (*Resolution, error) {
	state.PendingProduct = ""
	return &Resolution{
		Intent: Intent{Kind: IntentGreet},
		Reply:  ReplyGreeting,
	}, nil
}

// handlePhoneAdvice asks the Suggester for upgrade advice. The Suggester is
// a collaborator, not core logic: when it is absent or fails, the shopper
// still gets the catalog options.
func (l *DefaultShopLogic) handlePhoneAdvice(ctx context.Context, state *CartState, _ string) (*Resolution, error) {
	state.PendingProduct = ""

	options := optionsReply(l.catalog)
	if l.suggester != nil {
		if text, err := l.suggester.Suggest(ctx, suggestPrompt); err == nil && text != "" {
			return &Resolution{
				Intent: Intent{Kind: IntentSuggest},
				Reply:  strings.TrimSpace(text) + "\n\n" + options,
			}, nil
		}
	}

	return &Resolution{
		Intent: Intent{Kind: IntentSuggest},
		Reply:  options,
	}, nil
}

func (l *DefaultShopLogic) matchAddToCart(_ *CartState, msg string) bool {
	if isRemovalMessage(msg) || isCheckoutMessage(msg) {
		return false
	}
	_, ok := l.catalog.Match(msg)
	return ok
}

// handleAddToCart adds the mentioned product when the message carries an
// explicit quantity or an add/buy verb. A bare mention answers with
// NeedsQuantity and parks the product until the shopper supplies a number;
// the presentation layer performs the second round trip as a plain message.
func (l *DefaultShopLogic) handleAddToCart(_ context.Context, state *CartState, msg string) (*Resolution, error) {
	product, _ := l.catalog.Match(msg)
	qty, explicit := parseQuantity(msg)
	hasVerb := strings.Contains(msg, "add") || strings.Contains(msg, "buy")

	if !explicit && !hasVerb {
		state.PendingProduct = product.Name
		return &Resolution{
			Intent: Intent{Kind: IntentNeedsQuantity, Product: product.Name},
			Reply:  needsQuantityReply(product.Name),
		}, nil
	}

	state.PendingProduct = ""
	added, err := l.HandleAddItem(state, product.Name, qty)
	if err != nil {
		return nil, err
	}

	return &Resolution{
		Intent: Intent{Kind: IntentAddItem, Product: added.Product, Quantity: added.Quantity},
		Reply:  addedReply(added),
	}, nil
}

func (l *DefaultShopLogic) handleListing(_ context.Context, state *CartState, _ string) (*Resolution, error) {
	state.PendingProduct = ""
	return &Resolution{
		Intent: Intent{Kind: IntentListCatalog},
		Reply:  listingReply(l.catalog),
	}, nil
}

func (l *DefaultShopLogic) handleShowCart(_ context.Context, state *CartState, _ string) (*Resolution, error) {
	state.PendingProduct = ""
	return &Resolution{
		Intent: Intent{Kind: IntentShowCart},
		Reply:  cartReply(state, l.catalog),
	}, nil
}

func (l *DefaultShopLogic) matchRemove(_ *CartState, msg string) bool {
	if !strings.Contains(msg, "remove") {
		return false
	}
	_, ok := l.catalog.Match(msg)
	return ok
}

// handleRemove deletes the whole line, unless the message also says
// "quantity", which requests a partial decrement by the parsed amount
// (still a full delete when the amount covers the line).
func (l *DefaultShopLogic) handleRemove(_ context.Context, state *CartState, msg string) (*Resolution, error) {
	state.PendingProduct = ""
	product, _ := l.catalog.Match(msg)

	partial := strings.Contains(msg, "quantity")
	qty := 0
	if partial {
		qty, _ = parseQuantity(msg)
	}

	removed, err := l.HandleRemoveItem(state, product.Name, qty, !partial)
	if err != nil {
		var shopErr *ShopError
		if errors.As(err, &shopErr) && shopErr.Code == StatusNotInCart {
			return &Resolution{
				Intent: Intent{Kind: IntentRemoveItem, Product: product.Name, All: !partial},
				Reply:  notInCartReply(product.Name),
			}, nil
		}
		return nil, err
	}

	return &Resolution{
		Intent: Intent{Kind: IntentRemoveItem, Product: product.Name, Quantity: removed.Removed, All: removed.All},
		Reply:  removedReply(removed, partial),
	}, nil
}

func (l *DefaultShopLogic) handleCheckoutMessage(_ context.Context, state *CartState, _ string) (*Resolution, error) {
	state.PendingProduct = ""

	result, err := l.HandleCheckout(state)
	if err != nil {
		var shopErr *ShopError
		if errors.As(err, &shopErr) && shopErr.Code == StatusEmptyCart {
			return &Resolution{
				Intent: Intent{Kind: IntentCheckout},
				Reply:  ReplyCheckoutEmpty,
			}, nil
		}
		return nil, err
	}

	return &Resolution{
		Intent:   Intent{Kind: IntentCheckout},
		Reply:    checkoutReply(result.Order),
		Order:    result.Order,
		Document: result.Document,
	}, nil
}
