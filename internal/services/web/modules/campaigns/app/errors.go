package app

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/crowdfund/internal/services/web/platform/errors"
)

// APIError is a non-2xx response from the campaign API.
// Message is the API's own user-facing text and may be empty.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "campaign api status " + strconv.Itoa(e.Status)
	}
	return "campaign api status " + strconv.Itoa(e.Status) + ": " + e.Message
}

// KindForStatus maps an API status to the web error kind.
func KindForStatus(status int) apperrors.Kind {
	switch {
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return apperrors.KindInvalidInput
	case status == http.StatusNotFound:
		return apperrors.KindNotFound
	case status == http.StatusConflict:
		return apperrors.KindConflict
	case status >= http.StatusInternalServerError:
		return apperrors.KindUnavailable
	default:
		return apperrors.KindUnknown
	}
}

// NewAPIError wraps an API response as a typed web error.
func NewAPIError(status int, message string) error {
	apiErr := &APIError{Status: status, Message: strings.TrimSpace(message)}
	return apperrors.Wrap(KindForStatus(status), apiErr.Message, apiErr)
}

// APIMessage returns the user-facing text the API sent with err, if any.
func APIMessage(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return ""
	}
	return apiErr.Message
}
