package events

// TaskCreatedPayload is published to the audit event topic after a task is
// stored. Consumers only observe creations; nothing dispatches tasks for
// execution.
type TaskCreatedPayload struct {
	TaskID    string `json:"task_id"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
