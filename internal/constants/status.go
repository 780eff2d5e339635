package constants

type TaskStatus string

const (
	TaskOpen       TaskStatus = "open"
	TaskAssigned   TaskStatus = "assigned"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskAccepted   TaskStatus = "accepted"
	TaskRejected   TaskStatus = "rejected"
)

// HasProvider reports whether a task in this status must carry an assigned provider.
func (s TaskStatus) HasProvider() bool {
	switch s {
	case TaskAssigned, TaskInProgress, TaskCompleted, TaskAccepted, TaskRejected:
		return true
	}
	return false
}

func (s TaskStatus) IsTerminal() bool {
	return s == TaskAccepted || s == TaskRejected
}

type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
)

// Decision is the status a task owner may set on an offer or on a completed task.
type Decision string

const (
	DecisionAccepted Decision = "accepted"
	DecisionRejected Decision = "rejected"
)
