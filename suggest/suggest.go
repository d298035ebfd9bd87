// Package suggest provides Suggester implementations for the optional
// chat enrichment: a Gemini-backed client and a static stub for tests.
package suggest

import (
	"context"

	"shopbot/logic"
)

// Static returns the same suggestion for every prompt. Useful in tests and
// as a no-network fallback.
type Static struct {
	Text string
	Err  error
}

func (s *Static) Suggest(_ context.Context, _ string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Text, nil
}

var _ logic.Suggester = (*Static)(nil)
