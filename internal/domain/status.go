package domain

// Status represents the lifecycle state of a task. The stored values are the
// Portuguese labels the team has always used on the wire; they are part of
// the persisted data and of every callback selector, so they stay as-is.
type Status string

const (
	StatusPending    Status = "pendente"
	StatusInProgress Status = "em_andamento"
	StatusDone       Status = "concluido"
)

// AllStatuses returns all valid status values in display order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusDone}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the status.
// Unknown values fall through to the raw string rather than failing.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pendente"
	case StatusInProgress:
		return "Em Andamento"
	case StatusDone:
		return "Concluído"
	default:
		return string(s)
	}
}

// Priority represents the urgency of a task. Stored values follow the same
// convention as Status.
type Priority string

const (
	PriorityHigh   Priority = "alta"
	PriorityMedium Priority = "media"
	PriorityLow    Priority = "baixa"
)

// AllPriorities returns all valid priority values, most urgent first.
func AllPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the priority.
func (p Priority) Display() string {
	switch p {
	case PriorityHigh:
		return "Alta"
	case PriorityMedium:
		return "Média"
	case PriorityLow:
		return "Baixa"
	default:
		return string(p)
	}
}
