package webhook

// Status is the closed set of payment outcomes this service reacts to.
// Anything the provider reports outside the three known values maps to
// StatusUnhandled, keeping the dispatch switch exhaustive.
type Status int

const (
	StatusApproved Status = iota
	StatusPending
	StatusRejected
	StatusUnhandled
)

func ParseStatus(raw string) Status {
	switch raw {
	case "approved":
		return StatusApproved
	case "pending":
		return StatusPending
	case "rejected":
		return StatusRejected
	default:
		return StatusUnhandled
	}
}

func (s Status) String() string {
	switch s {
	case StatusApproved:
		return "approved"
	case StatusPending:
		return "pending"
	case StatusRejected:
		return "rejected"
	default:
		return "unhandled"
	}
}
