package pipeline

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/dgallion1/pdfoutline/internal/oracle"
)

// MaxRetries bounds attempts per oracle call.
const MaxRetries = 3

// IsRetryable checks if an oracle error is worth retrying. Transport and
// schema failures are not: a cancelled context won't recover and a model
// that replied garbage once tends to reply garbage again.
func IsRetryable(err error) bool {
	var retryErr *oracle.RetryableError
	return errors.As(err, &retryErr)
}

// Backoff returns a duration for attempt n (0-indexed) with jitter.
func Backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * time.Second
	if base > 30*time.Second {
		base = 30 * time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(base) / 2))
	return base + jitter
}
