package llm

import "context"

// purposeKey is the context key for the request purpose label. An
// unexported struct type keeps it collision-free.
type purposeKey struct{}

// WithPurpose tags the context with what the request is for ("chat",
// "explain", "study-plan", ...). The logging decorator records the tag
// so usage can be broken down per feature.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose tag, or "unknown" when the request
// was issued without one.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return "unknown"
}
