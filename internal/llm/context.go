package llm

import "context"

type purposeKey struct{}

// Purposes used by the tutor.
const (
	PurposeHint    = "exercise-hint"
	PurposeUnknown = "unknown"
)

// WithPurpose labels the requests made with ctx for the journal.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return PurposeUnknown
}
