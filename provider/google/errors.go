package google

import (
	"errors"

	"github.com/spetersoncode/scribe"
	"google.golang.org/genai"
)

// wrapError categorizes a Google GenAI error by status code so callers
// can decide whether to retry. The SDK does not expose response
// headers, so Retry-After is never available here.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	code := apiErr.Code
	msg := err.Error()

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
	case code >= 500 && code < 600:
		return scribe.ErrorTransient
	case code == 400 || code == 404 || code == 422:
		return scribe.ErrorUserInput
	default:
		return scribe.ErrorPermanent
	}
}
