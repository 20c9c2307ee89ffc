package llm

import (
	"errors"
	"fmt"

	"github.com/wha4up/flymd-ai-assistant/common/logger"
)

// ErrNotConfigured is returned before any network I/O when the endpoint
// or API key is empty.
var ErrNotConfigured = errors.New("llm endpoint and API key are not configured")

// ErrNoChoices is returned when a 2xx response carries no choices.
var ErrNoChoices = errors.New("llm response contained no choices")

// HTTPError is a non-2xx response from the configured endpoint.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("llm endpoint returned status %d: %s", e.Status, logger.Truncate(e.Body, 512))
}
