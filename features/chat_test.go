package features

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"shopbot/logic"
)

type chatTestContext struct {
	logic *logic.DefaultShopLogic
	state *logic.CartState
	res   *logic.Resolution
	err   error
}

type fixedRenderer struct{}

func (fixedRenderer) Render(_ *logic.Order) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

func (c *chatTestContext) reset() {
	c.logic = logic.NewShopLogic(logic.DefaultCatalog(), fixedRenderer{}, nil)
	c.state = logic.EmptyState()
	c.res = nil
	c.err = nil
}

func (c *chatTestContext) anEmptyCart() error {
	c.state = logic.EmptyState()
	return nil
}

func (c *chatTestContext) aCartContainingUnitsOf(qty int, product string) error {
	_, err := c.logic.HandleAddItem(c.state, product, qty)
	return err
}

func (c *chatTestContext) iSendTheMessage(message string) error {
	c.res, c.err = c.logic.Respond(context.Background(), c.state, message)
	return nil
}

func (c *chatTestContext) theIntentIs(kind string) error {
	if c.err != nil {
		return fmt.Errorf("expected resolution but got error: %v", c.err)
	}
	if c.res.Intent.Kind.String() != kind {
		return fmt.Errorf("expected intent %s, got %s", kind, c.res.Intent.Kind)
	}
	return nil
}

func (c *chatTestContext) theReplyContains(substring string) error {
	if c.err != nil {
		return fmt.Errorf("expected resolution but got error: %v", c.err)
	}
	if !strings.Contains(c.res.Reply, substring) {
		return fmt.Errorf("expected reply to contain %q, got %q", substring, c.res.Reply)
	}
	return nil
}

func (c *chatTestContext) theCartIsEmpty() error {
	if !c.state.IsEmpty() {
		return fmt.Errorf("expected empty cart, got %d lines", c.state.Len())
	}
	return nil
}

func (c *chatTestContext) theCartContainsUnitsOf(qty int, product string) error {
	if got := c.state.Quantity(product); got != qty {
		return fmt.Errorf("expected %d units of %s, got %d", qty, product, got)
	}
	return nil
}

func (c *chatTestContext) noOrderIsProduced() error {
	if c.res != nil && c.res.Order != nil {
		return errors.New("expected no order")
	}
	return nil
}

func (c *chatTestContext) anOrderIsProducedWithTotal(total int) error {
	if c.err != nil {
		return fmt.Errorf("expected order but got error: %v", c.err)
	}
	if c.res.Order == nil {
		return errors.New("expected an order")
	}
	if c.res.Order.GrandTotal != total {
		return fmt.Errorf("expected grand total %d, got %d", total, c.res.Order.GrandTotal)
	}
	if len(c.res.Document) == 0 {
		return errors.New("expected a rendered order document")
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &chatTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^a cart containing (\d+) units? of "([^"]*)"$`, tc.aCartContainingUnitsOf)

	// When steps
	ctx.Step(`^I send the message "([^"]*)"$`, tc.iSendTheMessage)

	// Then steps
	ctx.Step(`^the intent is "([^"]*)"$`, tc.theIntentIs)
	ctx.Step(`^the reply contains "([^"]*)"$`, tc.theReplyContains)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the cart contains (\d+) units? of "([^"]*)"$`, tc.theCartContainsUnitsOf)
	ctx.Step(`^no order is produced$`, tc.noOrderIsProduced)
	ctx.Step(`^an order is produced with total (\d+)$`, tc.anOrderIsProducedWithTotal)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"chat.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
