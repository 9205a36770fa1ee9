package dto

type AssignUsersRequest struct {
	AssigneeIDs []string `json:"assignee_ids"`
}

type UpdateAssignmentRequest struct {
	Status string `json:"status"`
}
