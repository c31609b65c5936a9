package order

import (
	"fmt"

	"github.com/joseph-ayodele/groupbuy/internal/common"
	"github.com/joseph-ayodele/groupbuy/internal/submit"
)

// OutcomeKind classifies the result of a submit action.
//
// OutcomeInvalid covers identity validation only (missing name or email, or
// an email outside the allow-list). OutcomeBusy means another submission was
// still pending, so this one was never attempted.
type OutcomeKind string

const (
	OutcomeSubmitted        OutcomeKind = "SUBMITTED"
	OutcomeInvalid          OutcomeKind = "INVALID"
	OutcomeRejected         OutcomeKind = "REJECTED"
	OutcomeTransportFailure OutcomeKind = "TRANSPORT_FAILURE"
	OutcomeBusy             OutcomeKind = "BUSY"
)

// TransportFailureMessage is shown when no structured reply is available.
const TransportFailureMessage = "Submit failed - check script permissions."

// Outcome is what the user sees after a submit action.
type Outcome struct {
	Kind      OutcomeKind
	RowsAdded int
	Message   string
	Err       error
}

// Invalid wraps a validation failure from Build.
func Invalid(err error) Outcome {
	return Outcome{Kind: OutcomeInvalid, Message: common.UserMessage(err, err.Error()), Err: err}
}

// Busy reports a submit action refused because another is in flight.
func Busy(err error) Outcome {
	return Outcome{Kind: OutcomeBusy, Message: common.UserMessage(err, err.Error()), Err: err}
}

// Interpret maps the collaborator's reply to an outcome.
func Interpret(resp *submit.Response, err error) Outcome {
	if err != nil || resp == nil {
		if err == nil {
			err = submit.ErrTransport
		}
		return Outcome{Kind: OutcomeTransportFailure, Message: TransportFailureMessage, Err: err}
	}
	if !resp.OK {
		rej := &RejectedError{Message: resp.Error}
		return Outcome{Kind: OutcomeRejected, Message: rej.Error(), Err: rej}
	}
	return Outcome{
		Kind:      OutcomeSubmitted,
		RowsAdded: resp.RowsAdded,
		Message:   fmt.Sprintf("Submitted! Rows added: %d", resp.RowsAdded),
	}
}
