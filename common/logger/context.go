package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. Fields flow through context enrichment, so the action handlers
// set them once and every log statement below (gateway, document edits) is
// tagged without touching call sites.
type LogFields struct {
	OperationID *int64  // Assistant operation ID (one per triggered action)
	Action      *string // Action name ("polish", "chat", "test_connection", "settings")
	DocumentLen *int    // Editor buffer length at the start of the operation
	Component   string  // Component name (e.g. "assistant.extension", "assistant.gateway")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking
// precedence. Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, updates LogFields) LogFields {
	result := existing

	if updates.OperationID != nil {
		result.OperationID = updates.OperationID
	}
	if updates.Action != nil {
		result.Action = updates.Action
	}
	if updates.DocumentLen != nil {
		result.DocumentLen = updates.DocumentLen
	}
	if updates.Component != "" {
		result.Component = updates.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{OperationID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen characters, appending "..." if
// truncated. Useful for logging potentially long strings like document
// text or LLM responses.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
