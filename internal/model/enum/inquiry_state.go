package enum

import "github.com/yanun0323/errors"

// InquiryState tracks the lifecycle of a customer inquiry.
//
// Received -> Quoted -> Done is the success path. Rejected and
// CustomerRejected are terminal and never fan out downstream.
type InquiryState uint8

const (
	InquiryStateUnknown InquiryState = iota
	InquiryReceived
	InquiryQuoted
	InquiryDone
	InquiryRejected
	InquiryCustomerRejected
)

func (s InquiryState) String() string {
	switch s {
	case InquiryReceived:
		return "RECEIVED"
	case InquiryQuoted:
		return "QUOTED"
	case InquiryDone:
		return "DONE"
	case InquiryRejected:
		return "REJECTED"
	case InquiryCustomerRejected:
		return "CUSTOMER_REJECTED"
	default:
		return "UNKNOWN"
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s InquiryState) IsTerminal() bool {
	switch s {
	case InquiryDone, InquiryRejected, InquiryCustomerRejected:
		return true
	default:
		return false
	}
}

// ParseInquiryState maps the feed spelling to an InquiryState.
func ParseInquiryState(s string) (InquiryState, error) {
	switch s {
	case "RECEIVED":
		return InquiryReceived, nil
	case "QUOTED":
		return InquiryQuoted, nil
	case "DONE":
		return InquiryDone, nil
	case "REJECTED":
		return InquiryRejected, nil
	case "CUSTOMER_REJECTED":
		return InquiryCustomerRejected, nil
	default:
		return 0, errors.Wrap(ErrUnknownEnum, "inquiry state "+s)
	}
}
