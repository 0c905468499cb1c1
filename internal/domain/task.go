package domain

import "time"

// Task belongs to a project. Only time-based tasks carry hours, a rate and
// an optional link to an expense line; milestones never do.
type Task struct {
	ID             string
	ProjectID      string
	Title          string
	TaskType       TaskType
	EstimatedHours float64
	HourlyRate     float64
	WorkType       WorkType
	BudgetItemID   *string
	CreatedAt      time.Time
}

// LinkedBudgetItem returns the expense line this task is billed against.
func (t *Task) LinkedBudgetItem() (string, bool) {
	if t.BudgetItemID == nil || *t.BudgetItemID == "" {
		return "", false
	}
	return *t.BudgetItemID, true
}

// Activity is a time log against a task.
type Activity struct {
	ID       string
	TaskID   string
	MemberID string
	Hours    float64
	Status   ActivityStatus
	Date     time.Time
}

// DirectExpense is a realized, non-time-based cost. It always counts as actual.
type DirectExpense struct {
	ID           string
	ProjectID    string
	BudgetItemID *string
	Description  string
	Amount       float64
	Date         time.Time
}
