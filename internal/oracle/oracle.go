// Package oracle wraps the external text-generation service behind a
// text-in/text-out contract. The rest of the pipeline depends only on
// this interface; nothing downstream may assume structure in the output.
package oracle

import "context"

// Oracle is the opaque generation service. Implementations convert
// every transport or timeout failure into apperr.ErrOracleUnavailable —
// callers never see a raw SDK error.
type Oracle interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
