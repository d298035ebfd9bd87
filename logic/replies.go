package logic

import (
	"fmt"
	"strings"
)

// Fixed reply texts. The chat surface is part of the contract: tests and
// the presentation adapter key off these strings.
const (
	ReplyGreeting = "Hello! I'm here to help you with your shopping. " +
		"You can ask me about our available products or request recommendations."
	ReplyCartEmpty     = "Your cart is empty."
	ReplyCheckoutEmpty = "Your cart is empty. Please add items to your cart before proceeding."
	ReplyFallback      = "I'm not sure how to respond to that. Can you ask something else?"
)

func needsQuantityReply(product string) string {
	return fmt.Sprintf("How many units of %s do you want to buy?", product)
}

func addedReply(added *ItemAdded) string {
	return fmt.Sprintf(
		"Added %d unit(s) of %s to your cart. Total price for %s: $%d. "+
			"Are you looking for something else or do you want to proceed with your order?",
		added.Quantity, added.Product, added.Product, added.RunningTotal)
}

func listingReply(catalog *Catalog) string {
	var b strings.Builder
	b.WriteString("Here are some available products:")
	for _, p := range catalog.All() {
		fmt.Fprintf(&b, "\n- %s: $%d", p.Name, p.UnitPrice)
	}
	return b.String()
}

func optionsReply(catalog *Catalog) string {
	var b strings.Builder
	b.WriteString("Here are some options you might consider:")
	for _, p := range catalog.All() {
		fmt.Fprintf(&b, "\n- %s for $%d", p.Name, p.UnitPrice)
	}
	return b.String()
}

func cartReply(state *CartState, catalog *Catalog) string {
	if state.IsEmpty() {
		return ReplyCartEmpty
	}
	var b strings.Builder
	b.WriteString("Your cart contains:")
	for _, line := range state.Snapshot() {
		fmt.Fprintf(&b, "\n- %s: %d unit(s)", line.Product, line.Quantity)
	}
	fmt.Fprintf(&b, "\nTotal Price: $%d", state.Subtotal(catalog))
	return b.String()
}

func removedReply(removed *ItemRemoved, partialRequest bool) string {
	switch {
	case !partialRequest:
		return fmt.Sprintf("%s has been removed from your cart.", removed.Product)
	case removed.All:
		return fmt.Sprintf("Removed all units of %s from your cart.", removed.Product)
	default:
		return fmt.Sprintf("Removed %d unit(s) of %s from your cart.", removed.Removed, removed.Product)
	}
}

func notInCartReply(product string) string {
	return fmt.Sprintf("%s is not in your cart.", product)
}

func checkoutReply(order *Order) string {
	return fmt.Sprintf("Thank you for your order! Your total is: $%d. "+
		"You can download your order summary below.", order.GrandTotal)
}
