package payment

import "errors"

var (
	ErrRequestNotFound         = errors.New("payment request not found")
	ErrRequestAlreadyProcessed = errors.New("payment request already processed")
	ErrDuplicatePending        = errors.New("a pending payment request already exists for this period")
	ErrMissingFields           = errors.New("missing required payment request fields")
)

// DefaultRejectionReason is stored when the admin rejects without a reason.
const DefaultRejectionReason = "Sin motivo especificado"
