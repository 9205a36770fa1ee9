package dto

type CreateFeatureRequestRequest struct {
	Problem     string `json:"problem"`
	Suggestion  string `json:"suggestion"`
	PageContext string `json:"page_context"`
	Impact      string `json:"impact"`
}

type UpdateFeatureRequestStatusRequest struct {
	Status string `json:"status"`
}
