package moderation

// StatusPresentation is what the console renders for a request's lifecycle
type StatusPresentation struct {
	Label    string `json:"label"`
	Category string `json:"category"`
}

// Visual categories understood by the console theme
const (
	VisualPending  = "warning"
	VisualApproved = "success"
	VisualRejected = "danger"
)

// Classify maps a request status to its presentation. A missing or unknown
// status takes the pending presentation through an explicit default case, so
// a malformed record stays visible instead of rendering blank.
func Classify(status RequestStatus) StatusPresentation {
	switch status {
	case RequestStatusApproved:
		return StatusPresentation{Label: "Approved", Category: VisualApproved}
	case RequestStatusRejected:
		return StatusPresentation{Label: "Rejected", Category: VisualRejected}
	default:
		return StatusPresentation{Label: "Pending Review", Category: VisualPending}
	}
}
