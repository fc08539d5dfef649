package types

import "errors"

var (
	ErrHelpRequestNotFound   = errors.New("help request not found")
	ErrLostFoundNotFound     = errors.New("lost and found item not found")
	ErrMarketingHelpNotFound = errors.New("marketing help request not found")

	// ErrPaymentStatusFinal is returned when a status update targets a
	// request whose payment already reached Completed or Failed.
	ErrPaymentStatusFinal = errors.New("payment status is final")
)

// ValidationError marks a missing or malformed request field.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// UploadError marks a rejected file part (disallowed type, too large, or
// too many files).
type UploadError string

func (e UploadError) Error() string { return string(e) }
