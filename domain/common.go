package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest  = "failed to process request body"
	MessageFailedUserContext  = "failed to resolve user context"
	MessageFailedQueryRequest = "failed to process query parameters"

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrMissingUserID = errors.New("missing or malformed X-User-ID header")
)
