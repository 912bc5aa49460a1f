package llm

import "context"

type ctxKey int

const purposeCtxKey ctxKey = iota

// WithPurpose labels everything generated under ctx with a purpose such as
// "remediation-gen". The logging decorator stamps it onto LLM events.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey, purpose)
}

// PurposeFrom returns the purpose label on ctx, or "unknown" for unlabeled
// requests.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeCtxKey).(string); ok {
		return p
	}
	return "unknown"
}
