package admission

import "fmt"

type Reason string

const (
	ReasonEmpty          Reason = "empty"
	ReasonTooLong        Reason = "too-long"
	ReasonDuplicate      Reason = "duplicate"
	ReasonTooFrequent    Reason = "too-frequent"
	ReasonWindowExceeded Reason = "window-exceeded"
)

// Verdict is the outcome of Check. Reason is empty when Accepted is true.
type Verdict struct {
	Accepted bool
	Reason   Reason
}

func reject(reason Reason) Verdict {
	return Verdict{Accepted: false, Reason: reason}
}

// Message returns text suitable for showing to the user.
func (v Verdict) Message(c Config) string {
	switch v.Reason {
	case "":
		return ""
	case ReasonEmpty:
		return "Empty message"
	case ReasonTooLong:
		return fmt.Sprintf("Maximum %d characters", c.MaxLength)
	case ReasonDuplicate:
		return "Duplicate message"
	case ReasonTooFrequent:
		return "Too frequent. Please wait a moment."
	case ReasonWindowExceeded:
		return "Message limit exceeded. Slow down."
	default:
		return string(v.Reason)
	}
}
