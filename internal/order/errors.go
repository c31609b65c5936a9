package order

import (
	"errors"
	"fmt"

	"github.com/joseph-ayodele/groupbuy/internal/common"
)

// Validation codes, checked in this order.
const (
	CodeMissingName     = "MISSING_NAME"
	CodeMissingEmail    = "MISSING_EMAIL"
	CodeEmailNotAllowed = "EMAIL_NOT_ALLOWED"
)

var (
	ErrMissingName     = common.NewAppError(CodeMissingName, "Please enter your name.", common.ErrValidation)
	ErrMissingEmail    = common.NewAppError(CodeMissingEmail, "Please enter your email.", common.ErrValidation)
	ErrEmailNotAllowed = errors.New("email not on the allow-list")

	// ErrSubmissionRejected marks an application-level refusal by the endpoint.
	ErrSubmissionRejected = errors.New("submission rejected")
)

// EmailNotAllowedError names the single address currently accepted.
type EmailNotAllowedError struct {
	Allowed string
}

func (e *EmailNotAllowedError) Error() string {
	return fmt.Sprintf("TEST MODE: Only %s is allowed right now.", e.Allowed)
}

func (e *EmailNotAllowedError) Is(target error) bool {
	return target == ErrEmailNotAllowed || target == common.ErrValidation
}

// RejectedError carries the endpoint's message verbatim.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string { return "Error: " + e.Message }

func (e *RejectedError) Unwrap() error { return ErrSubmissionRejected }
