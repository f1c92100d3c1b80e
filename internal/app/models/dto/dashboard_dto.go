package dto

// DashboardStatsResponse aggregates entity counts for the admin dashboard
type DashboardStatsResponse struct {
	Institutes   int64 `json:"institutes"`
	Events       int64 `json:"events"`
	Participants int64 `json:"participants"`
	Winners      int64 `json:"winners"`
}
