package events

// EventType names a domain event.
type EventType string

const (
	EventOrderCreated    EventType = "order.created"
	EventResetCodeIssued EventType = "auth.reset_code_issued"
)

// Event is a domain event published after a core state change has already
// succeeded. Handlers perform best-effort side effects only.
type Event struct {
	Type    EventType
	Email   string
	Payload map[string]any
}
