package domain

// TaskStatus is the lifecycle state of a field task.
type TaskStatus string

// Task lifecycle states. A task is created Assigned; Verified and Rejected
// are both reopenable back to Assigned, so there is no terminal state.
const (
	TaskAssigned  TaskStatus = "Assigned"
	TaskCompleted TaskStatus = "Completed"
	TaskVerified  TaskStatus = "Verified"
	TaskRejected  TaskStatus = "Rejected"
)

// taskTransitions is the authoritative transition table.
var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskAssigned:  {TaskCompleted},
	TaskCompleted: {TaskVerified, TaskRejected, TaskAssigned},
	TaskVerified:  {TaskAssigned},
	TaskRejected:  {TaskAssigned},
}

// KnownTaskStatus reports whether s is one of the lifecycle states.
func KnownTaskStatus(s TaskStatus) bool {
	_, ok := taskTransitions[s]
	return ok
}

// CanTransition reports whether the state machine permits moving a task
// from one status to another.
func CanTransition(from, to TaskStatus) bool {
	for _, next := range taskTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
