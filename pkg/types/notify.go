package types

// Severity classifies a user-visible notification.
type Severity int

// Notification severities.
const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Notification is one user-visible message.
type Notification struct {
	Title    string   `json:"title" yaml:"title"`
	Message  string   `json:"message" yaml:"message"`
	Severity Severity `json:"severity" yaml:"severity"`
}

// Notifier delivers fire-and-forget notifications to the viewer.
type Notifier interface {
	Notify(title, message string, severity Severity)
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
