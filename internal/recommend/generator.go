package recommend

import "context"

// Generator produces free-form remediation text from a prompt. It is a billed
// external call: callers must treat it as non-idempotent and cache results.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
