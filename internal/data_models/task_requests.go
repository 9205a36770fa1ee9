package dto

import "time"

type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TimeType    string     `json:"time_type"`
	TimeValue   float64    `json:"time_value"`
	Category    string     `json:"category"`
	ProjectID   *string    `json:"project_id"`
	AssigneeIDs []string   `json:"assignee_ids"`
	Priority    string     `json:"priority"`
	StartAt     *time.Time `json:"start_at"`
	DueAt       *time.Time `json:"due_at"`
}

type UpdateTaskRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	TimeType     *string    `json:"time_type"`
	TimeValue    *float64   `json:"time_value"`
	Category     *string    `json:"category"`
	Status       *string    `json:"status"`
	Priority     *string    `json:"priority"`
	StartAt      *time.Time `json:"start_at"`
	DueAt        *time.Time `json:"due_at"`
	SubmittedAt  *time.Time `json:"submitted_at"`
	ReviewedAt   *time.Time `json:"reviewed_at"`
	DayOrder     *int       `json:"day_order"`
	ProjectOrder *int       `json:"project_order"`
}

// TaskDraft is the batch-creation shape. The AI breakdown collaborator
// returns drafts in exactly this form; manually entered batches use it too.
type TaskDraft struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	TimeType    string  `json:"time_type"`
	TimeValue   float64 `json:"time_value"`
	Category    string  `json:"category"`
}

type BatchCreateTasksRequest struct {
	ProjectID *string     `json:"project_id"`
	Tasks     []TaskDraft `json:"tasks"`
}
