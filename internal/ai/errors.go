package ai

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/thomas-vilte/diffscribe/internal/errors"
)

// ClassifyError maps a failure reported by a provider SDK to a domain error.
// status is the HTTP status of the failed call, or 0 when none is known.
// Context cancellation is returned as is.
func ClassifyError(provider string, status int, err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return err
	}

	wrap := func(base *errors.AppError) error {
		return base.WithError(err).WithContext("provider", provider)
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return wrap(errors.ErrAPIKeyInvalid)
	case http.StatusTooManyRequests:
		return wrap(errors.ErrQuotaExceeded)
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "quota"),
		strings.Contains(errMsg, "rate limit"),
		strings.Contains(errMsg, "resource exhausted"),
		strings.Contains(errMsg, "resource_exhausted"):
		return wrap(errors.ErrQuotaExceeded)
	case strings.Contains(errMsg, "unauthorized"),
		strings.Contains(errMsg, "api key"),
		strings.Contains(errMsg, "authentication"):
		return wrap(errors.ErrAPIKeyInvalid)
	case strings.Contains(errMsg, "connection refused"),
		strings.Contains(errMsg, "no such host"):
		return wrap(errors.ErrProviderUnreachable)
	}

	return wrap(errors.ErrAIGeneration)
}

// EmptyCompletion is the error returned when a provider answers with no text.
func EmptyCompletion(provider, model string) error {
	return errors.ErrEmptyCompletion.
		WithContext("provider", provider).
		WithContext("model", model)
}
