package anthropic

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/spetersoncode/scribe"
)

// wrapError categorizes an Anthropic SDK error by status code and
// carries the Retry-After delay when the server supplies one.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	code := apiErr.StatusCode
	msg := err.Error()

	if retryAfter := parseRetryAfter(apiErr.Response); retryAfter > 0 {
		return scribe.NewTransientErrorWithRetry(msg, code, retryAfter, err)
	}

	switch categorizeStatusCode(code) {
	case scribe.ErrorTransient:
		return scribe.NewTransientError(msg, code, err)
	case scribe.ErrorUserInput:
		return scribe.NewUserInputError(msg, code, err)
	default:
		return scribe.NewPermanentError(msg, code, err)
	}
}

func categorizeStatusCode(code int) scribe.ErrorCategory {
	switch {
	case code == 429:
		return scribe.ErrorTransient
	case code == 529:
		return scribe.ErrorTransient
	case code >= 500 && code < 600:
		return scribe.ErrorTransient
	case code == 400 || code == 404 || code == 422:
		return scribe.ErrorUserInput
	default:
		return scribe.ErrorPermanent
	}
}

func parseRetryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}

	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(header); err == nil {
		if delay := time.Until(t); delay > 0 {
			return delay
		}
	}

	return 0
}
