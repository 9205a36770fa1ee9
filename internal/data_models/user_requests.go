package dto

type CreateUserRequest struct {
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Department   string  `json:"department"`
	WorkDayStart string  `json:"work_day_start"`
	WorkDayEnd   string  `json:"work_day_end"`
	DailyHours   float64 `json:"daily_hours"`
	HoursPerDay  float64 `json:"hours_per_day"`
}

type UpdateUserRequest struct {
	Name         *string  `json:"name"`
	Role         *string  `json:"role"`
	Department   *string  `json:"department"`
	WorkDayStart *string  `json:"work_day_start"`
	WorkDayEnd   *string  `json:"work_day_end"`
	DailyHours   *float64 `json:"daily_hours"`
	HoursPerDay  *float64 `json:"hours_per_day"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}
